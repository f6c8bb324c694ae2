package banksdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/seeka/pkg/httpx"
)

// ============================================================================
// API Error Codes
// ============================================================================

const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeDuplicateEmail     = "duplicate_email"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeGenerationFailed   = "generation_failed"
	ErrorCodeRateLimitExceeded  = "rate_limit_exceeded"
	ErrorCodeServerError        = "server_error"
)

// ============================================================================
// APIError
// ============================================================================

// APIError is the service's standard error shape. It implements the error
// interface and is used both by the server handlers (to write HTTP error
// responses) and by the SDK client (to represent parsed errors).
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the stable error code (e.g., "invalid_credentials")
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

// ============================================================================
// Predefined API Errors
// ============================================================================

var (
	// ErrInvalidRequest is returned when the request body is malformed or
	// a parameter fails validation.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrInvalidCredentials is returned when a login attempt does not
	// match a stored identity.
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredentials,
		Description: "invalid email or password",
	}

	// ErrDuplicateEmail is returned when registering with an email that is
	// already taken.
	ErrDuplicateEmail = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeDuplicateEmail,
		Description: "a user with this email already exists",
	}

	// ErrNotFound is returned when the referenced record does not exist.
	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "record not found",
	}

	// ErrGenerationFailed is returned when the text-generation collaborator
	// failed or is not configured.
	ErrGenerationFailed = &APIError{
		StatusCode:  http.StatusBadGateway,
		Code:        ErrorCodeGenerationFailed,
		Description: "text generation failed",
	}

	// ErrServerError is returned when the service encountered an
	// unexpected condition that prevented it from fulfilling the request.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// NewAPIError creates an APIError with a custom description while keeping
// the stable code taxonomy.
func NewAPIError(statusCode int, code, description string) *APIError {
	return &APIError{
		StatusCode:  statusCode,
		Code:        code,
		Description: description,
	}
}

// ============================================================================
// Error Parsing Helpers
// ============================================================================

// parseErrorResponse turns an HTTP error response body into a typed
// *APIError. Returns nil for 2xx responses.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	// Fallback: create generic error from status code
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
