package banksdk

import (
	"context"
	"net/http"
)

// GetFairnessMetrics returns the fairness report computed over all stored
// decisions, or nil when no decisions exist.
func (c *Client) GetFairnessMetrics(ctx context.Context) (*FairnessMetrics, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/v1/fairness/metrics", nil)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNoContent {
		resp.Body.Close()
		return nil, nil
	}

	var metrics FairnessMetrics
	if err := decodeJSON(resp, &metrics, http.StatusOK); err != nil {
		return nil, err
	}

	return &metrics, nil
}

// RunBiasScan executes a bias scan and returns the updated scan counter.
func (c *Client) RunBiasScan(ctx context.Context) (*ScanResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/fairness/scans", nil)
	if err != nil {
		return nil, err
	}

	var scan ScanResponse
	if err := decodeJSON(resp, &scan, http.StatusOK); err != nil {
		return nil, err
	}

	return &scan, nil
}

// GetBiasScanCount returns the number of bias scans run this process.
func (c *Client) GetBiasScanCount(ctx context.Context) (*ScanResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/v1/fairness/scans", nil)
	if err != nil {
		return nil, err
	}

	var scan ScanResponse
	if err := decodeJSON(resp, &scan, http.StatusOK); err != nil {
		return nil, err
	}

	return &scan, nil
}
