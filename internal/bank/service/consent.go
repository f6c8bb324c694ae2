package service

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/seeka/internal/bank/domain"
	"github.com/aussiebroadwan/seeka/internal/bank/store"
)

// ConsentService is the typed accessor over consent rows. Lookups for ids
// with no row resolve to the all-false default, never an error.
type ConsentService struct {
	Store store.Store
	Audit *AuditService
	Gate  *Gate
}

// Get returns the consent for a user id, falling back to the default when
// no row exists.
func (s *ConsentService) Get(ctx context.Context, userID string) (domain.Consent, error) {
	c, err := s.Store.Consents().GetConsent(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.DefaultConsent(), nil
	}
	return c, err
}

// Update applies a partial consent update: fields absent from the patch
// keep their prior value, and a row is created from the default base when
// none exists yet. The update is audited with only the fields that were
// present.
func (s *ConsentService) Update(ctx context.Context, userID string, patch domain.ConsentPatch) (domain.Consent, error) {
	var merged domain.Consent
	err := s.Gate.Do(func() error {
		base, err := s.Store.Consents().GetConsent(ctx, userID)
		if errors.Is(err, store.ErrNotFound) {
			base = domain.DefaultConsent()
		} else if err != nil {
			return err
		}

		merged = base.Apply(patch)
		if err := s.Store.Consents().PutConsent(ctx, userID, merged); err != nil {
			return err
		}

		_, err = s.Audit.Append(ctx, domain.ActionConsentUpdate, map[string]any{
			"updated": patch.Fields(),
		})
		return err
	})
	return merged, err
}
