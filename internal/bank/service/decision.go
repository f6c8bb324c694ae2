package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/seeka/internal/bank/domain"
	"github.com/aussiebroadwan/seeka/internal/bank/store"
	"github.com/aussiebroadwan/seeka/pkg/idx"
	"github.com/aussiebroadwan/seeka/pkg/slogx"
)

// DecisionService owns the append-only Decision collection. Decisions are
// immutable once recorded; the referenced user id is not required to
// exist.
type DecisionService struct {
	Store store.Store
	Audit *AuditService
	Gate  *Gate
}

// Record assigns a fresh id and timestamp to the input, appends it so the
// newest decision reads first, and audits the event with the approval flag
// and amount.
func (s *DecisionService) Record(ctx context.Context, in domain.DecisionInput) (domain.Decision, error) {
	decision := domain.Decision{
		ID:          idx.New().String(),
		UserID:      in.UserID,
		Income:      in.Income,
		LoanAmount:  in.LoanAmount,
		CreditScore: in.CreditScore,
		Age:         in.Age,
		JobType:     in.JobType,
		Approved:    in.Approved,
		Timestamp:   time.Now().UTC(),
	}

	err := s.Gate.Do(func() error {
		if err := s.Store.Decisions().CreateDecision(ctx, decision); err != nil {
			return err
		}

		_, err := s.Audit.Append(ctx, domain.ActionDecisionCreated, map[string]any{
			"approved": decision.Approved,
			"amount":   decision.LoanAmount,
		})
		return err
	})
	if err != nil {
		return domain.Decision{}, err
	}

	slogx.FromContext(ctx).Info("decision recorded",
		slog.String("decision_id", decision.ID),
		slog.Bool("approved", decision.Approved),
	)
	return decision, nil
}

// List returns all decisions newest-first.
func (s *DecisionService) List(ctx context.Context) ([]domain.Decision, error) {
	return s.Store.Decisions().ListDecisions(ctx)
}

// Count returns the number of recorded decisions.
func (s *DecisionService) Count(ctx context.Context) (int, error) {
	return s.Store.Decisions().CountDecisions(ctx)
}
