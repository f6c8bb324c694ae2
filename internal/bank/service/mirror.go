package service

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/seeka/internal/bank/domain"
	"github.com/aussiebroadwan/seeka/internal/bank/store"
)

// MirrorService is the typed accessor over AI mirror rows. Same default
// and merge discipline as consents, with the zeroed/unemployed base.
type MirrorService struct {
	Store store.Store
	Audit *AuditService
	Gate  *Gate
}

// Get returns the mirror for a user id, falling back to the zeroed
// default when no row exists.
func (s *MirrorService) Get(ctx context.Context, userID string) (domain.Mirror, error) {
	m, err := s.Store.Mirrors().GetMirror(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.DefaultMirror(), nil
	}
	return m, err
}

// Update applies a partial mirror update with the same merge/audit
// discipline as consent updates.
func (s *MirrorService) Update(ctx context.Context, userID string, patch domain.MirrorPatch) (domain.Mirror, error) {
	var merged domain.Mirror
	err := s.Gate.Do(func() error {
		base, err := s.Store.Mirrors().GetMirror(ctx, userID)
		if errors.Is(err, store.ErrNotFound) {
			base = domain.DefaultMirror()
		} else if err != nil {
			return err
		}

		merged = base.Apply(patch)
		if err := s.Store.Mirrors().PutMirror(ctx, userID, merged); err != nil {
			return err
		}

		_, err = s.Audit.Append(ctx, domain.ActionMirrorUpdate, map[string]any{
			"updated": patch.Fields(),
		})
		return err
	})
	return merged, err
}

// Preview returns what the mirror would look like after applying the
// patch, without writing or auditing anything. The AI-confirmed update
// path uses this to describe the prospective values to the collaborator
// before committing them.
func (s *MirrorService) Preview(ctx context.Context, userID string, patch domain.MirrorPatch) (domain.Mirror, error) {
	base, err := s.Get(ctx, userID)
	if err != nil {
		return domain.Mirror{}, err
	}
	return base.Apply(patch), nil
}
