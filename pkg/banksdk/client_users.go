package banksdk

import (
	"context"
	"fmt"
	"net/http"
)

// ListUsers returns every stored user in insertion order.
func (c *Client) ListUsers(ctx context.Context) ([]UserInfo, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/v1/users", nil)
	if err != nil {
		return nil, err
	}

	var users []UserInfo
	if err := decodeJSON(resp, &users, http.StatusOK); err != nil {
		return nil, err
	}

	return users, nil
}

// GetConsents returns the consent record for a user. Users without a
// stored record read back with every flag false.
func (c *Client) GetConsents(ctx context.Context, userID string) (*ConsentInfo, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/v1/users/%s/consents", userID), nil)
	if err != nil {
		return nil, err
	}

	var consent ConsentInfo
	if err := decodeJSON(resp, &consent, http.StatusOK); err != nil {
		return nil, err
	}

	return &consent, nil
}

// UpdateConsents applies a partial consent update and returns the merged
// record. Nil patch fields keep their prior values.
func (c *Client) UpdateConsents(ctx context.Context, userID string, patch ConsentPatch) (*ConsentInfo, error) {
	resp, err := c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/v1/users/%s/consents", userID), patch)
	if err != nil {
		return nil, err
	}

	var consent ConsentInfo
	if err := decodeJSON(resp, &consent, http.StatusOK); err != nil {
		return nil, err
	}

	return &consent, nil
}

// GetMirror returns the AI mirror profile for a user. Users without a
// stored profile read back with zeroed numbers and job type "unemployed".
func (c *Client) GetMirror(ctx context.Context, userID string) (*MirrorInfo, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/v1/users/%s/mirror", userID), nil)
	if err != nil {
		return nil, err
	}

	var mirror MirrorInfo
	if err := decodeJSON(resp, &mirror, http.StatusOK); err != nil {
		return nil, err
	}

	return &mirror, nil
}

// UpdateMirror applies a partial mirror update and returns the merged
// profile.
func (c *Client) UpdateMirror(ctx context.Context, userID string, patch MirrorPatch) (*MirrorInfo, error) {
	resp, err := c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/v1/users/%s/mirror", userID), patch)
	if err != nil {
		return nil, err
	}

	var mirror MirrorInfo
	if err := decodeJSON(resp, &mirror, http.StatusOK); err != nil {
		return nil, err
	}

	return &mirror, nil
}
