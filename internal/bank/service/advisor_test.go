package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aussiebroadwan/seeka/internal/bank/domain"
	"github.com/aussiebroadwan/seeka/pkg/genx"
	"github.com/stretchr/testify/require"
)

// stubGenerator records the prompts it receives and returns a fixed
// response or error.
type stubGenerator struct {
	prompts []string
	text    string
	err     error
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func TestAdvisorExplainLoan(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	profile := domain.Mirror{
		Income:      75000,
		LoanAmount:  20000,
		CreditScore: 720,
		Age:         35,
		JobType:     domain.JobSalaried,
	}

	t.Run("returns the generated text", func(t *testing.T) {
		gen := &stubGenerator{text: "Approved because the credit score is strong."}
		advisor := &AdvisorService{Generator: gen}

		explanation, err := advisor.ExplainLoan(ctx, profile)
		require.NoError(t, err)
		require.Equal(t, "Approved because the credit score is strong.", explanation)

		require.Len(t, gen.prompts, 1)
		require.Contains(t, gen.prompts[0], "Credit Score: 720")
		require.Contains(t, gen.prompts[0], "Job Type: salaried")
	})

	t.Run("wraps generator failures", func(t *testing.T) {
		gen := &stubGenerator{err: errors.New("quota exceeded")}
		advisor := &AdvisorService{Generator: gen}

		_, err := advisor.ExplainLoan(ctx, profile)
		require.ErrorIs(t, err, ErrGenerationFailed)
	})

	t.Run("unconfigured generator fails the same way", func(t *testing.T) {
		advisor := &AdvisorService{Generator: genx.Unavailable{}}

		_, err := advisor.ExplainLoan(ctx, profile)
		require.ErrorIs(t, err, ErrGenerationFailed)
	})
}

func TestAdvisorUpdateMirror(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("applies the patch after confirmation", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.registerUser(t, "alice@example.com", "pw", domain.RoleCustomer)

		gen := &stubGenerator{text: "Values updated."}
		advisor := &AdvisorService{Generator: gen, Mirrors: env.Mirrors}

		outcome, err := advisor.UpdateMirror(ctx, user.ID, domain.MirrorPatch{
			Income:  floatPtr(90000),
			JobType: jobPtr(domain.JobBusiness),
		})
		require.NoError(t, err)
		require.True(t, outcome.Success)
		require.NotEmpty(t, outcome.Message)
		require.InDelta(t, 90000, outcome.Mirror.Income, 1e-9)

		stored, err := env.Mirrors.Get(ctx, user.ID)
		require.NoError(t, err)
		require.InDelta(t, 90000, stored.Income, 1e-9)
		require.Equal(t, domain.JobBusiness, stored.JobType)

		// The prompt describes the merged values, not just the patch.
		require.Len(t, gen.prompts, 1)
		require.True(t, strings.Contains(gen.prompts[0], "Income: 90000.00"))
	})

	t.Run("failed confirmation leaves the mirror and trail untouched", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.registerUser(t, "bob@example.com", "pw", domain.RoleCustomer)
		before := env.auditCount(t)

		gen := &stubGenerator{err: errors.New("model unavailable")}
		advisor := &AdvisorService{Generator: gen, Mirrors: env.Mirrors}

		outcome, err := advisor.UpdateMirror(ctx, user.ID, domain.MirrorPatch{
			Income: floatPtr(90000),
		})
		require.NoError(t, err)
		require.False(t, outcome.Success)
		require.NotEmpty(t, outcome.Message)

		stored, err := env.Mirrors.Get(ctx, user.ID)
		require.NoError(t, err)
		require.Zero(t, stored.Income)
		require.Equal(t, before, env.auditCount(t))
	})
}
