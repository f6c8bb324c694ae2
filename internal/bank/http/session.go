package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/seeka/internal/bank/service"
	"github.com/aussiebroadwan/seeka/pkg/banksdk"
	"github.com/aussiebroadwan/seeka/pkg/httpx"
	"github.com/aussiebroadwan/seeka/pkg/slogx"
)

// SessionHandler exposes the process-wide session: login, guest login,
// logout and the current-identity probe.
type SessionHandler struct {
	Sessions *service.SessionService
}

// HandleLogin authenticates against the stored users and switches the
// session identity on success. Failed attempts return 401 and leave both
// the session and the audit trail untouched.
func (h *SessionHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req banksdk.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Email == "" {
		banksdk.NewAPIError(http.StatusBadRequest,
			banksdk.ErrorCodeInvalidRequest, "email is required").WriteError(w)
		return
	}
	if req.Password == "" {
		banksdk.NewAPIError(http.StatusBadRequest,
			banksdk.ErrorCodeInvalidRequest, "password is required").WriteError(w)
		return
	}

	user, err := h.Sessions.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			banksdk.ErrInvalidCredentials.WriteError(w)
			return
		}
		log.Error("login failed", "err", err)
		banksdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toUserInfo(user))
}

// HandleGuest switches the session to a freshly minted guest identity.
func (h *SessionHandler) HandleGuest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, err := h.Sessions.LoginAsGuest(ctx)
	if err != nil {
		log.Error("guest login failed", "err", err)
		banksdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toUserInfo(user))
}

// HandleLogout clears the session identity. Idempotent: an anonymous
// session logs nothing and still gets 204.
func (h *SessionHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.Sessions.Logout(ctx); err != nil {
		log.Error("logout failed", "err", err)
		banksdk.ErrServerError.WriteError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleCurrent reports the session identity, 204 when anonymous.
func (h *SessionHandler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	current := h.Sessions.Current()

	httpx.NoCache(w)
	if current == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserInfo(*current))
}
