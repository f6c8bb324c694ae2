package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/seeka/internal/bank/domain"
	"github.com/aussiebroadwan/seeka/pkg/genx"
	"github.com/aussiebroadwan/seeka/pkg/slogx"
)

// ErrGenerationFailed reports that the text-generation collaborator failed
// or timed out. Always recovered at the call site and surfaced as a
// structured failure; it never leaves the record store partially updated.
var ErrGenerationFailed = errors.New("text generation failed")

const loanExplanationPrompt = `You are an AI assistant that provides explanations for loan decisions based on applicant's financial information.

Given the following information about a loan applicant, generate a concise and human-readable explanation of the factors influencing the loan decision.

Income: %.2f
Loan Amount: %.2f
Credit Score: %d
Age: %d
Job Type: %s
`

const mirrorUpdatePrompt = `You are a banking AI assistant. The user has updated their AI mirror information. Confirm that the values are updated successfully.

New AI Mirror Data:
Income: %.2f
Loan Amount: %.2f
Credit Score: %d
Age: %d
Job Type: %s
`

// AdvisorService invokes the external text-generation collaborator with
// the two fixed prompt templates. The returned text is opaque: it is
// checked for presence, never parsed. No store mutation happens until a
// generation call has succeeded.
type AdvisorService struct {
	Generator genx.Generator
	Mirrors   *MirrorService
}

// MirrorUpdateOutcome is the structured result of an AI-confirmed mirror
// update.
type MirrorUpdateOutcome struct {
	Success bool
	Message string
	Mirror  domain.Mirror
}

// ExplainLoan asks the collaborator for a human-readable explanation of a
// loan decision for the given profile. Read-only.
func (s *AdvisorService) ExplainLoan(ctx context.Context, profile domain.Mirror) (string, error) {
	prompt := fmt.Sprintf(loanExplanationPrompt,
		profile.Income, profile.LoanAmount, profile.CreditScore, profile.Age, profile.JobType)

	text, err := s.Generator.Generate(ctx, prompt)
	if err != nil {
		slogx.FromContext(ctx).Warn("loan explanation generation failed", slog.Any("error", err))
		return "", fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	return text, nil
}

// UpdateMirror runs the AI-confirmed mirror update: it describes the
// prospective values to the collaborator first and only applies the patch
// once the confirmation call has succeeded. A failed or abandoned
// generation call leaves the mirror and the audit trail untouched.
func (s *AdvisorService) UpdateMirror(ctx context.Context, userID string, patch domain.MirrorPatch) (MirrorUpdateOutcome, error) {
	preview, err := s.Mirrors.Preview(ctx, userID, patch)
	if err != nil {
		return MirrorUpdateOutcome{}, err
	}

	prompt := fmt.Sprintf(mirrorUpdatePrompt,
		preview.Income, preview.LoanAmount, preview.CreditScore, preview.Age, preview.JobType)

	if _, err := s.Generator.Generate(ctx, prompt); err != nil {
		slogx.FromContext(ctx).Warn("mirror update confirmation failed", slog.Any("error", err))
		return MirrorUpdateOutcome{
			Success: false,
			Message: "Failed to update AI Mirror. Please try again.",
		}, nil
	}

	merged, err := s.Mirrors.Update(ctx, userID, patch)
	if err != nil {
		return MirrorUpdateOutcome{}, err
	}

	return MirrorUpdateOutcome{
		Success: true,
		Message: "AI Mirror updated successfully.",
		Mirror:  merged,
	}, nil
}
