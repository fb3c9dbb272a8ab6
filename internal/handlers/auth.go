package handlers

import (
	"net/http"

	"campus-backend/internal/models"
	"campus-backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if verr := decodeAndValidate(r, &req); verr != nil {
		handleServiceError(w, r, verr)
		return
	}

	resp, err := h.authService.Register(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if verr := decodeAndValidate(r, &req); verr != nil {
		handleServiceError(w, r, verr)
		return
	}

	resp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
