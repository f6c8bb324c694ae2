package http

import (
	"encoding/json"
	"net/http"

	"github.com/aussiebroadwan/seeka/pkg/banksdk"
)

// decodeBody decodes a JSON request body into target. On failure it
// writes an invalid_request error and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		banksdk.NewAPIError(http.StatusBadRequest,
			banksdk.ErrorCodeInvalidRequest, "invalid JSON body").WriteError(w)
		return false
	}
	return true
}
