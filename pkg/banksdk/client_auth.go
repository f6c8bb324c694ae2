package banksdk

import (
	"context"
	"net/http"
)

// Login authenticates the process-wide session with email and password.
// Returns *APIError with code "invalid_credentials" on a failed match.
func (c *Client) Login(ctx context.Context, email, password string) (*UserInfo, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/login", LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var user UserInfo
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}

	return &user, nil
}

// LoginAsGuest switches the session to a freshly minted guest identity.
func (c *Client) LoginAsGuest(ctx context.Context) (*UserInfo, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/guest", nil)
	if err != nil {
		return nil, err
	}

	var user UserInfo
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}

	return &user, nil
}

// Logout clears the session identity. Logging out an anonymous session is
// a no-op.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/logout", nil)
	if err != nil {
		return err
	}

	return checkStatus(resp, http.StatusNoContent)
}

// Register creates a new user. Returns *APIError with code
// "duplicate_email" when the email is already taken. Registration does
// not change the session identity.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*UserInfo, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/register", req)
	if err != nil {
		return nil, err
	}

	var user UserInfo
	if err := decodeJSON(resp, &user, http.StatusCreated); err != nil {
		return nil, err
	}

	return &user, nil
}

// Session returns the current session identity, or nil when the session
// is anonymous.
func (c *Client) Session(ctx context.Context) (*UserInfo, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/v1/auth/session", nil)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNoContent {
		resp.Body.Close()
		return nil, nil
	}

	var user UserInfo
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}

	return &user, nil
}
