package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/seeka/internal/bank/domain"
	"github.com/stretchr/testify/require"
)

func TestDecisionRecord(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)

	first, err := env.Decisions.Record(ctx, domain.DecisionInput{
		UserID:      "user-1",
		Income:      60000,
		LoanAmount:  15000,
		CreditScore: 700,
		Age:         30,
		JobType:     domain.JobSalaried,
		Approved:    true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)
	require.False(t, first.Timestamp.IsZero())

	second, err := env.Decisions.Record(ctx, domain.DecisionInput{
		UserID:   "user-2",
		JobType:  domain.JobFreelance,
		Approved: false,
	})
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	t.Run("lists newest first", func(t *testing.T) {
		decisions, err := env.Decisions.List(ctx)
		require.NoError(t, err)
		require.Len(t, decisions, 2)
		require.Equal(t, second.ID, decisions[0].ID)
		require.Equal(t, first.ID, decisions[1].ID)
	})

	t.Run("referenced user need not exist", func(t *testing.T) {
		_, err := env.Users.GetByID(ctx, "user-1")
		require.Error(t, err)
	})

	t.Run("audits each decision", func(t *testing.T) {
		count, err := env.Decisions.Count(ctx)
		require.NoError(t, err)
		require.Equal(t, 2, count)
		require.Equal(t, 2, env.auditCount(t))

		entry := env.latestAudit(t)
		require.Equal(t, domain.ActionDecisionCreated, entry.Action)
		require.Equal(t, false, entry.Details["approved"])
	})
}
