package http

import (
	"net/http"

	"github.com/aussiebroadwan/seeka/internal/bank/service"
	"github.com/aussiebroadwan/seeka/pkg/banksdk"
	"github.com/aussiebroadwan/seeka/pkg/httpx"
	"github.com/aussiebroadwan/seeka/pkg/slogx"
)

// ConsentsHandler reads and patches a user's consent record. Reads fall
// back to the all-false default for users without a stored record, so no
// 404 exists on the read path.
type ConsentsHandler struct {
	Consents *service.ConsentService
}

func (h *ConsentsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := r.PathValue("id")

	consent, err := h.Consents.Get(ctx, userID)
	if err != nil {
		log.Error("failed to load consents", "user_id", userID, "err", err)
		banksdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toConsentInfo(consent))
}

func (h *ConsentsHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := r.PathValue("id")

	var req banksdk.ConsentPatch
	if !decodeBody(w, r, &req) {
		return
	}

	patch := toConsentPatch(req)
	if patch.IsZero() {
		banksdk.NewAPIError(http.StatusBadRequest,
			banksdk.ErrorCodeInvalidRequest, "at least one consent field is required").WriteError(w)
		return
	}

	merged, err := h.Consents.Update(ctx, userID, patch)
	if err != nil {
		log.Error("failed to update consents", "user_id", userID, "err", err)
		banksdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toConsentInfo(merged))
}
