package banksdk

import "time"

// ============================================================================
// Error Response Type (used for JSON unmarshaling)
// ============================================================================

// ErrorResponse is the wire form of an API error. Client code should use
// the APIError type from errors.go instead.
type ErrorResponse struct {
	// Error is the stable error code (e.g., "invalid_credentials")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ============================================================================
// Auth Types
// ============================================================================

// LoginRequest carries the credentials for POST /v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries the payload for POST /v1/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`

	// Role is one of "customer", "regulator" or "admin".
	Role string `json:"role"`
}

// UserInfo describes a stored identity. Password never crosses the wire
// in responses.
type UserInfo struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// ============================================================================
// Consent and Mirror Types
// ============================================================================

// ConsentInfo is the full consent record for a user. Absent records read
// back with every flag false.
type ConsentInfo struct {
	FraudDetection  bool `json:"fraudDetection"`
	Marketing       bool `json:"marketing"`
	CreditScoring   bool `json:"creditScoring"`
	Personalization bool `json:"personalization"`
}

// ConsentPatch is a partial consent update. Nil fields keep their prior
// values.
type ConsentPatch struct {
	FraudDetection  *bool `json:"fraudDetection,omitempty"`
	Marketing       *bool `json:"marketing,omitempty"`
	CreditScoring   *bool `json:"creditScoring,omitempty"`
	Personalization *bool `json:"personalization,omitempty"`
}

// MirrorInfo is the AI mirror financial profile for a user.
type MirrorInfo struct {
	Income      float64 `json:"income"`
	LoanAmount  float64 `json:"loanAmount"`
	CreditScore int     `json:"creditScore"`
	Age         int     `json:"age"`
	JobType     string  `json:"jobType"`
}

// MirrorPatch is a partial mirror update. Nil fields keep their prior
// values.
type MirrorPatch struct {
	Income      *float64 `json:"income,omitempty"`
	LoanAmount  *float64 `json:"loanAmount,omitempty"`
	CreditScore *int     `json:"creditScore,omitempty"`
	Age         *int     `json:"age,omitempty"`
	JobType     *string  `json:"jobType,omitempty"`
}

// ============================================================================
// Decision Types
// ============================================================================

// DecisionRequest is the payload for POST /v1/decisions.
type DecisionRequest struct {
	UserID      string  `json:"userId"`
	Income      float64 `json:"income"`
	LoanAmount  float64 `json:"loanAmount"`
	CreditScore int     `json:"creditScore"`
	Age         int     `json:"age"`
	JobType     string  `json:"jobType"`
	Approved    bool    `json:"approved"`
}

// DecisionInfo is a stored loan decision.
type DecisionInfo struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Income      float64   `json:"income"`
	LoanAmount  float64   `json:"loanAmount"`
	CreditScore int       `json:"creditScore"`
	Age         int       `json:"age"`
	JobType     string    `json:"jobType"`
	Approved    bool      `json:"approved"`
	Timestamp   time.Time `json:"timestamp"`
}

// ============================================================================
// Audit Types
// ============================================================================

// LogRequest is the payload for POST /v1/audit-logs.
type LogRequest struct {
	Action  string         `json:"action"`
	Details map[string]any `json:"details,omitempty"`
}

// AuditLogInfo is one immutable audit trail entry.
type AuditLogInfo struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	UserID    string         `json:"userId"`
	UserEmail string         `json:"userEmail"`
	UserRole  string         `json:"userRole"`
	Action    string         `json:"action"`
	Details   map[string]any `json:"details,omitempty"`
}

// ============================================================================
// Fairness Types
// ============================================================================

// GroupRate is the approval statistics for one job type group.
type GroupRate struct {
	JobType  string  `json:"jobType"`
	Rate     float64 `json:"rate"`
	Total    int     `json:"total"`
	Approved int     `json:"approved"`
}

// FairnessMetrics is the computed fairness report over all stored
// decisions. DemographicParity is null when the privileged group's
// approval rate is zero.
type FairnessMetrics struct {
	DemographicParity *float64    `json:"demographicParity"`
	Privileged        GroupRate   `json:"privileged"`
	Unprivileged      GroupRate   `json:"unprivileged"`
	Groups            []GroupRate `json:"groups"`
}

// ScanResponse reports the bias scan counter.
type ScanResponse struct {
	ScanCount int `json:"scanCount"`
}

// ============================================================================
// AI Collaborator Types
// ============================================================================

// ExplanationRequest is the applicant profile for POST /v1/ai/explanations.
type ExplanationRequest struct {
	Income      float64 `json:"income"`
	LoanAmount  float64 `json:"loanAmount"`
	CreditScore int     `json:"creditScore"`
	Age         int     `json:"age"`
	JobType     string  `json:"jobType"`
}

// ExplanationResponse carries the generated loan explanation text.
type ExplanationResponse struct {
	Explanation string `json:"explanation"`
}

// MirrorAIUpdateResponse is the structured result of an AI-confirmed
// mirror update. On failure Success is false and Mirror is absent; the
// stored mirror is untouched.
type MirrorAIUpdateResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Mirror  *MirrorInfo `json:"mirror,omitempty"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is returned from the /livez and /readyz probes.
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks map[string]string `json:"checks,omitempty"`
}
