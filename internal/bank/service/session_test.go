package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/seeka/internal/bank/domain"
	"github.com/stretchr/testify/require"
)

func TestSessionLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)

	user := env.registerUser(t, "alice@example.com", "secret", domain.RoleCustomer)
	baseline := env.auditCount(t)

	t.Run("starts anonymous", func(t *testing.T) {
		require.Nil(t, env.Sessions.Current())
	})

	t.Run("wrong password leaves session and trail untouched", func(t *testing.T) {
		_, err := env.Sessions.Login(ctx, "alice@example.com", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		require.Nil(t, env.Sessions.Current())
		require.Equal(t, baseline, env.auditCount(t))
	})

	t.Run("unknown email leaves session and trail untouched", func(t *testing.T) {
		_, err := env.Sessions.Login(ctx, "nobody@example.com", "secret")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		require.Nil(t, env.Sessions.Current())
		require.Equal(t, baseline, env.auditCount(t))
	})

	t.Run("email comparison is case sensitive", func(t *testing.T) {
		_, err := env.Sessions.Login(ctx, "Alice@example.com", "secret")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("success switches identity and audits", func(t *testing.T) {
		got, err := env.Sessions.Login(ctx, "alice@example.com", "secret")
		require.NoError(t, err)
		require.Equal(t, user.ID, got.ID)

		current := env.Sessions.Current()
		require.NotNil(t, current)
		require.Equal(t, user.ID, current.ID)

		require.Equal(t, baseline+1, env.auditCount(t))
		entry := env.latestAudit(t)
		require.Equal(t, domain.ActionUserLogin, entry.Action)
		require.Equal(t, user.ID, entry.UserID)
		require.Equal(t, "alice@example.com", entry.UserEmail)
	})

	t.Run("login replaces an authenticated identity silently", func(t *testing.T) {
		bob := env.registerUser(t, "bob@example.com", "secret", domain.RoleRegulator)
		before := env.auditCount(t)

		_, err := env.Sessions.Login(ctx, "bob@example.com", "secret")
		require.NoError(t, err)

		current := env.Sessions.Current()
		require.NotNil(t, current)
		require.Equal(t, bob.ID, current.ID)

		// One login entry, no logout entry for the replaced identity.
		require.Equal(t, before+1, env.auditCount(t))
		require.Equal(t, domain.ActionUserLogin, env.latestAudit(t).Action)
	})
}

func TestSessionLoginAsGuest(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)

	first, err := env.Sessions.LoginAsGuest(ctx)
	require.NoError(t, err)
	require.True(t, first.IsGuest())
	require.NotEmpty(t, first.ID)

	current := env.Sessions.Current()
	require.NotNil(t, current)
	require.Equal(t, first.ID, current.ID)

	entry := env.latestAudit(t)
	require.Equal(t, domain.ActionGuestLogin, entry.Action)
	require.Equal(t, first.ID, entry.UserID)

	t.Run("guest gets default consent and mirror", func(t *testing.T) {
		consent, err := env.Consents.Get(ctx, first.ID)
		require.NoError(t, err)
		require.Equal(t, domain.SignupConsent(), consent)

		mirror, err := env.Mirrors.Get(ctx, first.ID)
		require.NoError(t, err)
		require.Equal(t, domain.GuestMirror(), mirror)
	})

	t.Run("each guest login mints a fresh identity", func(t *testing.T) {
		second, err := env.Sessions.LoginAsGuest(ctx)
		require.NoError(t, err)
		require.NotEqual(t, first.ID, second.ID)
	})

	t.Run("guests are never stored as users", func(t *testing.T) {
		users, err := env.Users.List(ctx)
		require.NoError(t, err)
		require.Empty(t, users)
	})
}

func TestSessionLogout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)

	t.Run("anonymous logout is a silent no-op", func(t *testing.T) {
		require.NoError(t, env.Sessions.Logout(ctx))
		require.Equal(t, 0, env.auditCount(t))
	})

	t.Run("logout clears the identity and audits it", func(t *testing.T) {
		user := env.registerUser(t, "carol@example.com", "secret", domain.RoleAdmin)
		_, err := env.Sessions.Login(ctx, "carol@example.com", "secret")
		require.NoError(t, err)

		before := env.auditCount(t)
		require.NoError(t, env.Sessions.Logout(ctx))
		require.Nil(t, env.Sessions.Current())

		require.Equal(t, before+1, env.auditCount(t))
		entry := env.latestAudit(t)
		require.Equal(t, domain.ActionUserLogout, entry.Action)
		// Attributed to the identity that was cleared, not the system actor.
		require.Equal(t, user.ID, entry.UserID)
	})
}

func TestSessionRegisterDoesNotAuthenticate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.Sessions.Register(ctx, "dave@example.com", "secret", domain.RoleCustomer)
	require.NoError(t, err)
	require.Nil(t, env.Sessions.Current())
}
