package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/seeka/internal/bank/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface over the five record
// collections. Concrete drivers (memory, sqlite) implement it. It exposes
// sub-repositories to keep concerns tidy and testable.
//
// Drivers only hold rows; the invariants around auditing, defaults and
// merge semantics live in the service layer, which also serializes every
// mutation behind a single write gate. No repository ever deletes a row.
type Store interface {
	Users() Users
	Consents() Consents
	Mirrors() Mirrors
	Decisions() Decisions
	AuditLogs() AuditLogs

	// ApplyMigrations prepares the driver's schema. A no-op for drivers
	// without one.
	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the backing collections are still reachable.
	Ping(ctx context.Context) error
}

type Users interface {
	// CreateUser inserts a new user (id provided by the caller via ULID).
	// Returns ErrAlreadyExists when the email is already taken; emails are
	// compared exactly, case-sensitively.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during the credential check.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// ListUsers returns all users in insertion order.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// CountUsers returns the number of registered users.
	CountUsers(ctx context.Context) (int, error)
}

type Consents interface {
	// GetConsent returns the consent row for a user id, or ErrNotFound
	// when none has been provisioned yet. The service layer maps absence
	// to the documented default.
	GetConsent(ctx context.Context, userID string) (domain.Consent, error)

	// PutConsent creates or fully replaces the consent row for a user id.
	// Field-wise merging happens above the store.
	PutConsent(ctx context.Context, userID string, c domain.Consent) error
}

type Mirrors interface {
	// GetMirror returns the AI mirror row for a user id, or ErrNotFound
	// when none has been provisioned yet.
	GetMirror(ctx context.Context, userID string) (domain.Mirror, error)

	// PutMirror creates or fully replaces the mirror row for a user id.
	PutMirror(ctx context.Context, userID string, m domain.Mirror) error
}

type Decisions interface {
	// CreateDecision appends a decision (id and timestamp already set).
	CreateDecision(ctx context.Context, d domain.Decision) error

	// ListDecisions returns all decisions newest-first.
	ListDecisions(ctx context.Context) ([]domain.Decision, error)

	// CountDecisions returns the number of recorded decisions.
	CountDecisions(ctx context.Context) (int, error)
}

type AuditLogs interface {
	// AppendAuditLog appends an immutable audit entry.
	AppendAuditLog(ctx context.Context, e domain.AuditLog) error

	// ListAuditLogs returns all entries newest-first. Iteration order
	// never reorders relative to insertion.
	ListAuditLogs(ctx context.Context) ([]domain.AuditLog, error)

	// CountAuditLogs returns the number of audit entries.
	CountAuditLogs(ctx context.Context) (int, error)
}
