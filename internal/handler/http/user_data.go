package http

import (
	"net/http"

	"github.com/MKhiriev/go-member-gate/internal/utils"
)

// userData reports the identity behind the request's session.
//
// Anonymous callers (no cookie, unknown token, expired session) receive
// 200 with an empty object. The endpoint never errors and never exposes
// anything beyond the identity-safe projection.
func (h *Handler) userData(w http.ResponseWriter, r *http.Request) {
	sessionUser, ok := utils.GetSessionUserFromContext(r.Context())
	if !ok {
		utils.WriteJSON(w, struct{}{}, http.StatusOK)
		return
	}

	utils.WriteJSON(w, sessionUser, http.StatusOK)
}
