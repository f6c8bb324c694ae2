package bank_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/seeka/pkg/banksdk"
	"github.com/stretchr/testify/require"
)

// TestAuditTrail covers attribution and ordering of the audit log.
func TestAuditTrail(t *testing.T) {
	client := setupBankServer(t)

	t.Run("anonymous actions attribute to the system actor", func(t *testing.T) {
		entry, err := client.AddAuditLog(t.Context(), banksdk.LogRequest{
			Action:  "Nightly Review",
			Details: map[string]any{"source": "scheduler"},
		})
		require.NoError(t, err)
		require.Equal(t, "system", entry.UserID)
		require.Equal(t, "System", entry.UserEmail)
		require.Equal(t, "scheduler", entry.Details["source"])
	})

	t.Run("authenticated actions attribute to the session user", func(t *testing.T) {
		customer := loginSeedCustomer(t, client)

		entry, err := client.AddAuditLog(t.Context(), banksdk.LogRequest{
			Action: "Statement Export",
		})
		require.NoError(t, err)
		require.Equal(t, customer.ID, entry.UserID)
		require.Equal(t, seedCustomerEmail, entry.UserEmail)
		require.Equal(t, "customer", entry.UserRole)
	})

	t.Run("missing action is rejected", func(t *testing.T) {
		_, err := client.AddAuditLog(t.Context(), banksdk.LogRequest{})
		assertAPIError(t, err, http.StatusBadRequest, banksdk.ErrorCodeInvalidRequest)
	})

	t.Run("trail lists newest first and includes auth events", func(t *testing.T) {
		logs, err := client.ListAuditLogs(t.Context())
		require.NoError(t, err)
		require.Len(t, logs, 3)

		require.Equal(t, "Statement Export", logs[0].Action)
		require.Equal(t, "User Login", logs[1].Action)
		require.Equal(t, "Nightly Review", logs[2].Action)

		for i := 1; i < len(logs); i++ {
			require.False(t, logs[i-1].Timestamp.Before(logs[i].Timestamp))
		}
	})
}
