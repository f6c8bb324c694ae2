package banksdk

import (
	"context"
	"fmt"
	"net/http"
)

// ExplainLoan asks the AI collaborator for a human-readable explanation
// of a loan decision for the given applicant profile. Returns *APIError
// with code "generation_failed" when the collaborator is unavailable.
func (c *Client) ExplainLoan(ctx context.Context, req ExplanationRequest) (*ExplanationResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/ai/explanations", req)
	if err != nil {
		return nil, err
	}

	var explanation ExplanationResponse
	if err := decodeJSON(resp, &explanation, http.StatusOK); err != nil {
		return nil, err
	}

	return &explanation, nil
}

// UpdateMirrorWithAI runs the AI-confirmed mirror update. The patch is
// applied only after the collaborator confirms; a failed confirmation
// comes back with Success false and an untouched stored mirror.
func (c *Client) UpdateMirrorWithAI(ctx context.Context, userID string, patch MirrorPatch) (*MirrorAIUpdateResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/v1/users/%s/mirror/ai-update", userID), patch)
	if err != nil {
		return nil, err
	}

	var outcome MirrorAIUpdateResponse
	if err := decodeJSON(resp, &outcome, http.StatusOK); err != nil {
		return nil, err
	}

	return &outcome, nil
}
