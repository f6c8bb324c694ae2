package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/seeka/internal/bank/domain"
	"github.com/aussiebroadwan/seeka/internal/bank/store/drivers/memory"
	"github.com/stretchr/testify/require"
)

// testEnv wires the full service graph over a fresh in-memory store, the
// same way the application does.
type testEnv struct {
	Store     *memory.Store
	Gate      *Gate
	Audit     *AuditService
	Users     *UserService
	Sessions  *SessionService
	Consents  *ConsentService
	Mirrors   *MirrorService
	Decisions *DecisionService
	Fairness  *FairnessService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st := memory.NewStore()
	gate := &Gate{}

	audit := &AuditService{Store: st, Gate: gate}
	users := &UserService{Store: st, Audit: audit, Gate: gate}
	sessions := &SessionService{Store: st, Users: users, Audit: audit, Gate: gate}
	audit.Actor = sessions.Current

	return &testEnv{
		Store:     st,
		Gate:      gate,
		Audit:     audit,
		Users:     users,
		Sessions:  sessions,
		Consents:  &ConsentService{Store: st, Audit: audit, Gate: gate},
		Mirrors:   &MirrorService{Store: st, Audit: audit, Gate: gate},
		Decisions: &DecisionService{Store: st, Audit: audit, Gate: gate},
		Fairness:  &FairnessService{Store: st, Audit: audit, Gate: gate},
	}
}

// registerUser creates a user and returns it.
func (env *testEnv) registerUser(t *testing.T, email, password string, role domain.Role) domain.User {
	t.Helper()

	user, err := env.Users.Register(context.Background(), email, password, role)
	require.NoError(t, err)
	return user
}

// auditCount returns the current size of the audit trail.
func (env *testEnv) auditCount(t *testing.T) int {
	t.Helper()

	count, err := env.Audit.Count(context.Background())
	require.NoError(t, err)
	return count
}

// latestAudit returns the newest audit entry.
func (env *testEnv) latestAudit(t *testing.T) domain.AuditLog {
	t.Helper()

	entries, err := env.Audit.List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	return entries[0]
}
