package memory

import (
	"context"
	"sync"

	"github.com/aussiebroadwan/seeka/internal/bank/domain"
	"github.com/aussiebroadwan/seeka/internal/bank/store"
)

// Store is the default driver: plain in-process collections guarded by a
// single RWMutex. Rows live for the lifetime of the process and are
// discarded on restart; there is no persistence and no deletion.
type Store struct {
	mu sync.RWMutex

	users        []domain.User
	usersByID    map[string]int
	usersByEmail map[string]int

	consents map[string]domain.Consent
	mirrors  map[string]domain.Mirror

	// Newest-first, matching how the display layer iterates them.
	decisions []domain.Decision
	logs      []domain.AuditLog
}

func NewStore() *Store {
	return &Store{
		usersByID:    make(map[string]int),
		usersByEmail: make(map[string]int),
		consents:     make(map[string]domain.Consent),
		mirrors:      make(map[string]domain.Mirror),
	}
}

func (s *Store) Users() store.Users         { return &usersRepo{s: s} }
func (s *Store) Consents() store.Consents   { return &consentsRepo{s: s} }
func (s *Store) Mirrors() store.Mirrors     { return &mirrorsRepo{s: s} }
func (s *Store) Decisions() store.Decisions { return &decisionsRepo{s: s} }
func (s *Store) AuditLogs() store.AuditLogs { return &auditLogsRepo{s: s} }

// ApplyMigrations is a no-op; the memory driver has no schema.
func (s *Store) ApplyMigrations() error { return nil }

func (s *Store) Close() error { return nil }

func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

// cloneDetails copies an audit details map so held entries cannot be
// mutated through aliased maps after append or read.
func cloneDetails(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
