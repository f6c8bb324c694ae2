package http

import (
	"net/http"

	"github.com/aussiebroadwan/seeka/internal/bank/service"
	"github.com/aussiebroadwan/seeka/pkg/banksdk"
	"github.com/aussiebroadwan/seeka/pkg/httpx"
	"github.com/aussiebroadwan/seeka/pkg/slogx"
)

// MirrorsHandler reads and patches a user's AI mirror profile. Reads fall
// back to the zeroed default for users without a stored profile.
type MirrorsHandler struct {
	Mirrors *service.MirrorService
}

func (h *MirrorsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := r.PathValue("id")

	mirror, err := h.Mirrors.Get(ctx, userID)
	if err != nil {
		log.Error("failed to load mirror", "user_id", userID, "err", err)
		banksdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toMirrorInfo(mirror))
}

func (h *MirrorsHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
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

	merged, err := h.Mirrors.Update(ctx, userID, patch)
	if err != nil {
		log.Error("failed to update mirror", "user_id", userID, "err", err)
		banksdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toMirrorInfo(merged))
}
