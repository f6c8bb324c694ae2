package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/seeka/internal/bank/domain"
	"github.com/stretchr/testify/require"
)

func TestAuditLog(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)

	t.Run("anonymous entries attribute the system actor", func(t *testing.T) {
		entry, err := env.Audit.Log(ctx, "Manual Note", map[string]any{"reason": "test"})
		require.NoError(t, err)
		require.Equal(t, "system", entry.UserID)
		require.Equal(t, "System", entry.UserEmail)
		require.Equal(t, "Manual Note", entry.Action)
		require.Equal(t, "test", entry.Details["reason"])
		require.NotEmpty(t, entry.ID)
		require.False(t, entry.Timestamp.IsZero())
	})

	t.Run("entries attribute the session identity when present", func(t *testing.T) {
		user := env.registerUser(t, "alice@example.com", "pw", domain.RoleCustomer)
		_, err := env.Sessions.Login(ctx, "alice@example.com", "pw")
		require.NoError(t, err)

		entry, err := env.Audit.Log(ctx, "Manual Note", nil)
		require.NoError(t, err)
		require.Equal(t, user.ID, entry.UserID)
		require.Equal(t, "alice@example.com", entry.UserEmail)
		require.Equal(t, domain.RoleCustomer, entry.UserRole)
	})

	t.Run("trail reads newest first", func(t *testing.T) {
		entries, err := env.Audit.List(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(entries), 3)

		// The last Log call above is the head of the trail.
		require.Equal(t, "Manual Note", entries[0].Action)
		for i := 1; i < len(entries); i++ {
			require.False(t, entries[i].Timestamp.After(entries[i-1].Timestamp))
		}
	})
}
