package bank_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/aussiebroadwan/seeka/pkg/banksdk"
	"github.com/stretchr/testify/require"
)

// TestLogin covers the seeded credential flow and its failure modes.
func TestLogin(t *testing.T) {
	client := setupBankServer(t)

	t.Run("seeded customer can log in", func(t *testing.T) {
		user := loginSeedCustomer(t, client)
		require.Equal(t, seedCustomerEmail, user.Email)
		require.Equal(t, "customer", user.Role)
		require.NotEmpty(t, user.ID)
		require.False(t, user.CreatedAt.IsZero())
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, err := client.Login(t.Context(), seedCustomerEmail, "wrong")
		assertAPIError(t, err, http.StatusUnauthorized, banksdk.ErrorCodeInvalidCredentials)
	})

	t.Run("unknown email looks identical to wrong password", func(t *testing.T) {
		_, err := client.Login(t.Context(), "nobody@seeka.com", seedPassword)
		assertAPIError(t, err, http.StatusUnauthorized, banksdk.ErrorCodeInvalidCredentials)
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		_, err := client.Login(t.Context(), "", "")
		assertAPIError(t, err, http.StatusBadRequest, banksdk.ErrorCodeInvalidRequest)
	})
}

// TestSessionLifecycle walks the single shared session through its states.
func TestSessionLifecycle(t *testing.T) {
	client := setupBankServer(t)

	t.Run("starts anonymous", func(t *testing.T) {
		user, err := client.Session(t.Context())
		require.NoError(t, err)
		require.Nil(t, user)
	})

	t.Run("login establishes the session", func(t *testing.T) {
		loginSeedCustomer(t, client)

		user, err := client.Session(t.Context())
		require.NoError(t, err)
		require.NotNil(t, user)
		require.Equal(t, seedCustomerEmail, user.Email)
	})

	t.Run("a second login replaces the session silently", func(t *testing.T) {
		_, err := client.Login(t.Context(), seedRegulatorEmail, seedPassword)
		require.NoError(t, err)

		user, err := client.Session(t.Context())
		require.NoError(t, err)
		require.NotNil(t, user)
		require.Equal(t, seedRegulatorEmail, user.Email)
	})

	t.Run("logout clears the session", func(t *testing.T) {
		require.NoError(t, client.Logout(t.Context()))

		user, err := client.Session(t.Context())
		require.NoError(t, err)
		require.Nil(t, user)
	})

	t.Run("logout while anonymous is a no-op", func(t *testing.T) {
		require.NoError(t, client.Logout(t.Context()))
	})
}

// TestGuestLogin verifies guests get fresh throwaway identities that never
// appear in the user directory.
func TestGuestLogin(t *testing.T) {
	client := setupBankServer(t)

	first, err := client.LoginAsGuest(t.Context())
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(first.ID, "guest-"))
	require.Equal(t, "guest", first.Role)

	second, err := client.LoginAsGuest(t.Context())
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	users, err := client.ListUsers(t.Context())
	require.NoError(t, err)
	for _, u := range users {
		require.NotEqual(t, first.ID, u.ID)
		require.NotEqual(t, second.ID, u.ID)
	}
}

// TestRegister covers signup and its rejection paths.
func TestRegister(t *testing.T) {
	client := setupBankServer(t)

	t.Run("creates a new account", func(t *testing.T) {
		user, err := client.Register(t.Context(), banksdk.RegisterRequest{
			Email:    "alice@example.com",
			Password: "s3cret",
			Role:     "customer",
		})
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", user.Email)
		require.Equal(t, "customer", user.Role)
	})

	t.Run("does not authenticate", func(t *testing.T) {
		session, err := client.Session(t.Context())
		require.NoError(t, err)
		require.Nil(t, session)

		_, err = client.Login(t.Context(), "alice@example.com", "s3cret")
		require.NoError(t, err)
		require.NoError(t, client.Logout(t.Context()))
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		_, err := client.Register(t.Context(), banksdk.RegisterRequest{
			Email:    "alice@example.com",
			Password: "other",
			Role:     "customer",
		})
		assertAPIError(t, err, http.StatusConflict, banksdk.ErrorCodeDuplicateEmail)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		_, err := client.Register(t.Context(), banksdk.RegisterRequest{
			Email:    "bob@example.com",
			Password: "s3cret",
			Role:     "superuser",
		})
		assertAPIError(t, err, http.StatusBadRequest, banksdk.ErrorCodeInvalidRequest)
	})

	t.Run("guest role cannot be registered", func(t *testing.T) {
		_, err := client.Register(t.Context(), banksdk.RegisterRequest{
			Email:    "bob@example.com",
			Password: "s3cret",
			Role:     "guest",
		})
		assertAPIError(t, err, http.StatusBadRequest, banksdk.ErrorCodeInvalidRequest)
	})
}

// TestListUsers verifies the seeded directory is visible.
func TestListUsers(t *testing.T) {
	client := setupBankServer(t)

	users, err := client.ListUsers(t.Context())
	require.NoError(t, err)
	require.Len(t, users, 3)
	require.Equal(t, seedCustomerEmail, users[0].Email)
	require.Equal(t, seedRegulatorEmail, users[1].Email)
	require.Equal(t, seedAdminEmail, users[2].Email)
}
