package http

import (
	"net/http"

	"github.com/aussiebroadwan/seeka/internal/bank/service"
	"github.com/aussiebroadwan/seeka/pkg/banksdk"
	"github.com/aussiebroadwan/seeka/pkg/httpx"
	"github.com/aussiebroadwan/seeka/pkg/slogx"
)

// AuditLogsHandler lists the immutable audit trail and appends free-form
// entries. Appends are attributed to the current session identity, or to
// the system actor when the session is anonymous.
type AuditLogsHandler struct {
	Audit *service.AuditService
}

func (h *AuditLogsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	entries, err := h.Audit.List(ctx)
	if err != nil {
		log.Error("failed to list audit logs", "err", err)
		banksdk.ErrServerError.WriteError(w)
		return
	}

	response := make([]banksdk.AuditLogInfo, 0, len(entries))
	for _, e := range entries {
		response = append(response, toAuditLogInfo(e))
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}

func (h *AuditLogsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req banksdk.LogRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Action == "" {
		banksdk.NewAPIError(http.StatusBadRequest,
			banksdk.ErrorCodeInvalidRequest, "action is required").WriteError(w)
		return
	}

	entry, err := h.Audit.Log(ctx, req.Action, req.Details)
	if err != nil {
		log.Error("failed to append audit log", "err", err)
		banksdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toAuditLogInfo(entry))
}
