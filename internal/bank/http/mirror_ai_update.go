package http

import (
	"net/http"

	"github.com/aussiebroadwan/seeka/internal/bank/service"
	"github.com/aussiebroadwan/seeka/pkg/banksdk"
	"github.com/aussiebroadwan/seeka/pkg/httpx"
	"github.com/aussiebroadwan/seeka/pkg/slogx"
)

// MirrorAIUpdateHandler runs the AI-confirmed mirror update. The stored
// mirror changes only after the collaborator confirms; a failed
// generation comes back 200 with success=false and nothing written.
type MirrorAIUpdateHandler struct {
	Advisor *service.AdvisorService
}

func (h *MirrorAIUpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := r.PathValue("id")

	var req banksdk.MirrorPatch
	if !decodeBody(w, r, &req) {
		return
	}

	patch, err := toMirrorPatch(req)
	if err != nil {
		banksdk.NewAPIError(http.StatusBadRequest,
			banksdk.ErrorCodeInvalidRequest, "jobType must be one of salaried, business, freelance, student, unemployed").WriteError(w)
		return
	}
	if patch.IsZero() {
		banksdk.NewAPIError(http.StatusBadRequest,
			banksdk.ErrorCodeInvalidRequest, "at least one mirror field is required").WriteError(w)
		return
	}

	outcome, err := h.Advisor.UpdateMirror(ctx, userID, patch)
	if err != nil {
		log.Error("ai mirror update failed", "user_id", userID, "err", err)
		banksdk.ErrServerError.WriteError(w)
		return
	}

	response := banksdk.MirrorAIUpdateResponse{
		Success: outcome.Success,
		Message: outcome.Message,
	}
	if outcome.Success {
		mirror := toMirrorInfo(outcome.Mirror)
		response.Mirror = &mirror
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}
