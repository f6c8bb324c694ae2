package domain

import "time"

// Audit action labels. Every mutating operation writes exactly one entry
// with one of these labels (or a caller-supplied label via the generic log
// endpoint).
const (
	ActionUserRegistration = "User Registration"
	ActionUserLogin        = "User Login"
	ActionGuestLogin       = "Guest Login"
	ActionUserLogout       = "User Logout"
	ActionConsentUpdate    = "Consent Update"
	ActionMirrorUpdate     = "AI Mirror Update"
	ActionDecisionCreated  = "Decision Simulated/Created"
	ActionBiasScan         = "Bias Scan Executed"
)

// SystemActor is the attribution used when no session is active.
var SystemActor = User{ID: "system", Email: "System", Role: RoleGuest}

// AuditLog is one immutable entry in the append-only audit trail. The
// actor's identity is captured at append time; entries are held
// newest-first and are never reordered relative to insertion.
type AuditLog struct {
	ID        string
	Timestamp time.Time
	UserID    string
	UserEmail string
	UserRole  Role
	Action    string
	Details   map[string]any
}
