package bank_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/seeka/pkg/banksdk"
	"github.com/aussiebroadwan/seeka/pkg/httpx"
)

// TestRateLimiting verifies the strict profile protects the login endpoint.
// The production limits are restored only while this server's routes are
// built; other tests keep the relaxed limits from TestMain.
func TestRateLimiting(t *testing.T) {
	relaxedStrict, relaxedModerate := httpx.StrictLimit, httpx.ModerateLimit
	httpx.StrictLimit = defaultStrictLimit
	httpx.ModerateLimit = defaultModerateLimit

	client := setupBankServer(t)

	httpx.StrictLimit = relaxedStrict
	httpx.ModerateLimit = relaxedModerate

	// Burn through the strict burst with failed logins.
	for i := 0; i < defaultStrictLimit.Burst; i++ {
		_, err := client.Login(t.Context(), seedCustomerEmail, "wrong")
		assertAPIError(t, err, http.StatusUnauthorized, banksdk.ErrorCodeInvalidCredentials)
	}

	_, err := client.Login(t.Context(), seedCustomerEmail, seedPassword)
	assertAPIError(t, err, http.StatusTooManyRequests, banksdk.ErrorCodeRateLimitExceeded)
}
