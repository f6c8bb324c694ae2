package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/seeka/internal/bank/domain"
	"github.com/aussiebroadwan/seeka/internal/bank/service"
	"github.com/aussiebroadwan/seeka/pkg/banksdk"
	"github.com/aussiebroadwan/seeka/pkg/httpx"
	"github.com/aussiebroadwan/seeka/pkg/slogx"
)

// RegisterHandler creates new user accounts. Registration never changes
// the session identity; the caller logs in separately.
type RegisterHandler struct {
	Sessions *service.SessionService
}

func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req banksdk.RegisterRequest
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

	role, err := domain.ParseRole(req.Role)
	if err != nil || role == domain.RoleGuest {
		banksdk.NewAPIError(http.StatusBadRequest,
			banksdk.ErrorCodeInvalidRequest, "role must be one of customer, regulator, admin").WriteError(w)
		return
	}

	user, err := h.Sessions.Register(ctx, req.Email, req.Password, role)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateEmail) {
			banksdk.ErrDuplicateEmail.WriteError(w)
			return
		}
		log.Error("registration failed", "err", err)
		banksdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toUserInfo(user))
}
