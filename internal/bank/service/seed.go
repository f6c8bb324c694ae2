package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/seeka/internal/bank/domain"
	"github.com/aussiebroadwan/seeka/internal/bank/store"
	"github.com/aussiebroadwan/seeka/pkg/idx"
	"github.com/aussiebroadwan/seeka/pkg/slogx"
)

// SeedService provisions the demo accounts on first start. Seeding writes
// to the store directly and emits no audit entries: it establishes the
// initial state the audit trail begins from. A store that already holds
// users is left untouched.
type SeedService struct {
	Store store.Store
}

// Run seeds the demo users when the store is empty.
func (s *SeedService) Run(ctx context.Context) error {
	count, err := s.Store.Users().CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()

	demo := []domain.User{
		{ID: idx.New().String(), Email: "customer@seeka.com", Password: "password", Role: domain.RoleCustomer, CreatedAt: now},
		{ID: idx.New().String(), Email: "regulator@seeka.com", Password: "password", Role: domain.RoleRegulator, CreatedAt: now},
		{ID: idx.New().String(), Email: "admin@seeka.com", Password: "password", Role: domain.RoleAdmin, CreatedAt: now},
	}

	for _, u := range demo {
		if err := s.Store.Users().CreateUser(ctx, u); err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
	}

	// The demo customer carries a populated consent and mirror so the
	// dashboard has data on first login. The other accounts fall back to
	// the defaults on lookup.
	customer := demo[0]
	consent := domain.Consent{
		FraudDetection:  true,
		Marketing:       false,
		CreditScoring:   true,
		Personalization: true,
	}
	if err := s.Store.Consents().PutConsent(ctx, customer.ID, consent); err != nil {
		return fmt.Errorf("seed consent: %w", err)
	}

	mirror := domain.Mirror{
		Income:      75000,
		LoanAmount:  20000,
		CreditScore: 720,
		Age:         35,
		JobType:     domain.JobSalaried,
	}
	if err := s.Store.Mirrors().PutMirror(ctx, customer.ID, mirror); err != nil {
		return fmt.Errorf("seed mirror: %w", err)
	}

	slogx.FromContext(ctx).Info("seeded demo users", slog.Int("count", len(demo)))
	return nil
}
