package memory

import (
	"context"

	"github.com/aussiebroadwan/seeka/internal/bank/domain"
	"github.com/aussiebroadwan/seeka/internal/bank/store"
)

type consentsRepo struct {
	s *Store
}

func (r *consentsRepo) GetConsent(ctx context.Context, userID string) (domain.Consent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.consents[userID]
	if !ok {
		return domain.Consent{}, store.ErrNotFound
	}
	return c, nil
}

func (r *consentsRepo) PutConsent(ctx context.Context, userID string, c domain.Consent) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.consents[userID] = c
	return nil
}

type mirrorsRepo struct {
	s *Store
}

func (r *mirrorsRepo) GetMirror(ctx context.Context, userID string) (domain.Mirror, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	m, ok := r.s.mirrors[userID]
	if !ok {
		return domain.Mirror{}, store.ErrNotFound
	}
	return m, nil
}

func (r *mirrorsRepo) PutMirror(ctx context.Context, userID string, m domain.Mirror) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.mirrors[userID] = m
	return nil
}
