package banksdk

import (
	"context"
	"net/http"
)

// ListDecisions returns every stored loan decision, newest first.
func (c *Client) ListDecisions(ctx context.Context) ([]DecisionInfo, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/v1/decisions", nil)
	if err != nil {
		return nil, err
	}

	var decisions []DecisionInfo
	if err := decodeJSON(resp, &decisions, http.StatusOK); err != nil {
		return nil, err
	}

	return decisions, nil
}

// AddDecision records a loan decision and returns the stored record with
// its assigned id and timestamp.
func (c *Client) AddDecision(ctx context.Context, req DecisionRequest) (*DecisionInfo, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/decisions", req)
	if err != nil {
		return nil, err
	}

	var decision DecisionInfo
	if err := decodeJSON(resp, &decision, http.StatusCreated); err != nil {
		return nil, err
	}

	return &decision, nil
}
