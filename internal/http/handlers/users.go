package handlers

import (
	"net/http"

	"github.com/clinicbase/medrec-be/internal/http/respond"
	"github.com/clinicbase/medrec-be/internal/middleware"
)

// UsersHandler exposes the current-user profile.
type UsersHandler struct{}

// NewUsersHandler constructs the handler.
func NewUsersHandler() *UsersHandler {
	return &UsersHandler{}
}

// Register attaches user routes to the mux.
func (h *UsersHandler) Register(mux *http.ServeMux, authn *middleware.Authenticator) {
	mux.HandleFunc("GET /users/me", authn.RequireUser(h.handleMe))
}

func (h *UsersHandler) handleMe(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, middleware.UserFrom(r.Context()))
}
