package memory

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/seeka/internal/bank/domain"
	"github.com/aussiebroadwan/seeka/internal/bank/store"
	"github.com/aussiebroadwan/seeka/pkg/idx"
	"github.com/stretchr/testify/require"
)

func testUser(email string) domain.User {
	return domain.User{
		ID:        idx.New().String(),
		Email:     email,
		Password:  "pw",
		Role:      domain.RoleCustomer,
		CreatedAt: time.Now().UTC(),
	}
}

func TestUsersRepo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := NewStore()

	alice := testUser("alice@example.com")
	require.NoError(t, st.Users().CreateUser(ctx, alice))

	t.Run("duplicate email is rejected", func(t *testing.T) {
		err := st.Users().CreateUser(ctx, testUser("alice@example.com"))
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("lookup by id and email", func(t *testing.T) {
		got, err := st.Users().GetUserByID(ctx, alice.ID)
		require.NoError(t, err)
		require.Equal(t, alice, got)

		got, err = st.Users().GetUserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, alice.ID, got.ID)
	})

	t.Run("missing user yields ErrNotFound", func(t *testing.T) {
		_, err := st.Users().GetUserByID(ctx, "missing")
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = st.Users().GetUserByEmail(ctx, "missing@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("list preserves insertion order", func(t *testing.T) {
		bob := testUser("bob@example.com")
		require.NoError(t, st.Users().CreateUser(ctx, bob))

		users, err := st.Users().ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		require.Equal(t, alice.ID, users[0].ID)
		require.Equal(t, bob.ID, users[1].ID)

		count, err := st.Users().CountUsers(ctx)
		require.NoError(t, err)
		require.Equal(t, 2, count)
	})
}

func TestConsentsRepo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := NewStore()

	t.Run("absent row yields ErrNotFound", func(t *testing.T) {
		_, err := st.Consents().GetConsent(ctx, "user-1")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("put then get round-trips", func(t *testing.T) {
		want := domain.Consent{FraudDetection: true, CreditScoring: true}
		require.NoError(t, st.Consents().PutConsent(ctx, "user-1", want))

		got, err := st.Consents().GetConsent(ctx, "user-1")
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("put replaces the whole row", func(t *testing.T) {
		require.NoError(t, st.Consents().PutConsent(ctx, "user-1", domain.Consent{Marketing: true}))

		got, err := st.Consents().GetConsent(ctx, "user-1")
		require.NoError(t, err)
		require.True(t, got.Marketing)
		require.False(t, got.FraudDetection)
	})
}

func TestMirrorsRepo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := NewStore()

	_, err := st.Mirrors().GetMirror(ctx, "user-1")
	require.ErrorIs(t, err, store.ErrNotFound)

	want := domain.Mirror{Income: 75000, LoanAmount: 20000, CreditScore: 720, Age: 35, JobType: domain.JobSalaried}
	require.NoError(t, st.Mirrors().PutMirror(ctx, "user-1", want))

	got, err := st.Mirrors().GetMirror(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestDecisionsRepo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := NewStore()

	var ids []string
	for i := 0; i < 3; i++ {
		d := domain.Decision{
			ID:        idx.New().String(),
			UserID:    "user-1",
			JobType:   domain.JobSalaried,
			Approved:  i%2 == 0,
			Timestamp: time.Now().UTC(),
		}
		require.NoError(t, st.Decisions().CreateDecision(ctx, d))
		ids = append(ids, d.ID)
	}

	decisions, err := st.Decisions().ListDecisions(ctx)
	require.NoError(t, err)
	require.Len(t, decisions, 3)

	// Newest first: reverse of insertion order.
	require.Equal(t, ids[2], decisions[0].ID)
	require.Equal(t, ids[1], decisions[1].ID)
	require.Equal(t, ids[0], decisions[2].ID)

	count, err := st.Decisions().CountDecisions(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, count)
}

func TestAuditLogsRepo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := NewStore()

	details := map[string]any{"email": "alice@example.com", "approved": true}
	entry := domain.AuditLog{
		ID:        idx.New().String(),
		Timestamp: time.Now().UTC(),
		UserID:    "user-1",
		UserEmail: "alice@example.com",
		UserRole:  domain.RoleCustomer,
		Action:    "User Login",
		Details:   details,
	}
	require.NoError(t, st.AuditLogs().AppendAuditLog(ctx, entry))

	t.Run("held entries are isolated from caller maps", func(t *testing.T) {
		details["email"] = "mutated"

		logs, err := st.AuditLogs().ListAuditLogs(ctx)
		require.NoError(t, err)
		require.Len(t, logs, 1)
		require.Equal(t, "alice@example.com", logs[0].Details["email"])
	})

	t.Run("newest entry reads first", func(t *testing.T) {
		second := domain.AuditLog{
			ID:        idx.New().String(),
			Timestamp: time.Now().UTC(),
			UserID:    "system",
			UserEmail: "System",
			UserRole:  domain.RoleGuest,
			Action:    "Bias Scan Executed",
		}
		require.NoError(t, st.AuditLogs().AppendAuditLog(ctx, second))

		logs, err := st.AuditLogs().ListAuditLogs(ctx)
		require.NoError(t, err)
		require.Len(t, logs, 2)
		require.Equal(t, second.ID, logs[0].ID)

		count, err := st.AuditLogs().CountAuditLogs(ctx)
		require.NoError(t, err)
		require.Equal(t, 2, count)
	})
}
