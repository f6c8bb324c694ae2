package banksdk

import (
	"context"
	"net/http"
)

// ListAuditLogs returns the audit trail, newest first.
func (c *Client) ListAuditLogs(ctx context.Context) ([]AuditLogInfo, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/v1/audit-logs", nil)
	if err != nil {
		return nil, err
	}

	var logs []AuditLogInfo
	if err := decodeJSON(resp, &logs, http.StatusOK); err != nil {
		return nil, err
	}

	return logs, nil
}

// AddAuditLog appends an audit entry attributed to the current session
// identity, or to the system actor when the session is anonymous.
func (c *Client) AddAuditLog(ctx context.Context, req LogRequest) (*AuditLogInfo, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/audit-logs", req)
	if err != nil {
		return nil, err
	}

	var entry AuditLogInfo
	if err := decodeJSON(resp, &entry, http.StatusCreated); err != nil {
		return nil, err
	}

	return &entry, nil
}
