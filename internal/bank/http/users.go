package http

import (
	"net/http"

	"github.com/aussiebroadwan/seeka/internal/bank/service"
	"github.com/aussiebroadwan/seeka/pkg/banksdk"
	"github.com/aussiebroadwan/seeka/pkg/httpx"
	"github.com/aussiebroadwan/seeka/pkg/slogx"
)

// UsersHandler exposes the read-only user collection.
type UsersHandler struct {
	Users *service.UserService
}

func (h *UsersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	users, err := h.Users.List(ctx)
	if err != nil {
		log.Error("failed to list users", "err", err)
		banksdk.ErrServerError.WriteError(w)
		return
	}

	response := make([]banksdk.UserInfo, 0, len(users))
	for _, u := range users {
		response = append(response, toUserInfo(u))
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}
