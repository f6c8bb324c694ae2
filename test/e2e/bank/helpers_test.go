package bank_test

import (
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/aussiebroadwan/seeka/internal/bank/app"
	"github.com/aussiebroadwan/seeka/pkg/banksdk"
	"github.com/aussiebroadwan/seeka/pkg/httpx"
	"github.com/stretchr/testify/require"
)

/*
 * Common constants and helper functions for bank service end-to-end tests.
 * Tests run against an in-process server wired exactly like production,
 * exercised through the public SDK client.
 */

const (
	seedCustomerEmail  = "customer@seeka.com"
	seedRegulatorEmail = "regulator@seeka.com"
	seedAdminEmail     = "admin@seeka.com"
	seedPassword       = "password"
)

// Production rate limit profiles, saved before TestMain relaxes them.
// TestRateLimiting restores these for the one suite that needs them.
var (
	defaultStrictLimit   httpx.RateLimitConfig
	defaultModerateLimit httpx.RateLimitConfig
)

// TestMain relaxes the rate limit profiles before any routes are built.
// Tests make many rapid requests which would otherwise hit the strict
// production limits.
func TestMain(m *testing.M) {
	defaultStrictLimit = httpx.StrictLimit
	defaultModerateLimit = httpx.ModerateLimit

	relaxed := httpx.RateLimitConfig{RequestsPerWindow: 1000, Window: time.Minute, Burst: 1000}
	httpx.StrictLimit = relaxed
	httpx.ModerateLimit = relaxed
	httpx.LenientLimit = relaxed

	os.Exit(m.Run())
}

func testConfig() app.Config {
	return app.Config{
		StoreDriver:         "memory",
		Seed:                true,
		Env:                 "test",
		LogLevel:            "error",
		LogFormat:           "json",
		Port:                0,
		ShutdownGracePeriod: 5 * time.Second,
	}
}

// setupBankServer starts the seeded bank service in-process and returns an
// SDK client pointed at it. The server is torn down when the test ends.
func setupBankServer(t *testing.T) *banksdk.Client {
	t.Helper()
	return setupBankServerWithConfig(t, testConfig())
}

// setupBankServerNoSeed starts the bank service with an empty store.
func setupBankServerNoSeed(t *testing.T) *banksdk.Client {
	t.Helper()
	cfg := testConfig()
	cfg.Seed = false
	return setupBankServerWithConfig(t, cfg)
}

func setupBankServerWithConfig(t *testing.T, cfg app.Config) *banksdk.Client {
	t.Helper()

	application, err := app.New(cfg)
	require.NoError(t, err)

	server := httptest.NewServer(application.Handler())
	t.Cleanup(func() {
		server.Close()
		_ = application.Shutdown()
	})

	return banksdk.NewClient(server.URL)
}

// loginSeedCustomer authenticates the demo customer and returns their record.
func loginSeedCustomer(t *testing.T, client *banksdk.Client) *banksdk.UserInfo {
	t.Helper()

	user, err := client.Login(t.Context(), seedCustomerEmail, seedPassword)
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}

// assertAPIError verifies an SDK error carries the expected status and code.
func assertAPIError(t *testing.T, err error, statusCode int, code string) {
	t.Helper()

	require.Error(t, err)
	apiErr := &banksdk.APIError{}
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, statusCode, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *banksdk.HealthResponse, err error) {
	t.Helper()

	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
