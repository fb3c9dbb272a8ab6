package handlers

import (
	"net/http"

	"campus-backend/internal/middleware"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Me returns the authenticated caller's record. The password hash is
// excluded by serialization.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	writeJSON(w, http.StatusOK, user)
}
