package handlers

import (
	"net/http"

	"campus-backend/internal/middleware"
	"campus-backend/internal/models"
	"campus-backend/internal/services"
	"campus-backend/internal/store"
)

const historyLimit = 50

type ChatHandler struct {
	assistant *services.Assistant
	store     store.Store
}

func NewChatHandler(assistant *services.Assistant, st store.Store) *ChatHandler {
	return &ChatHandler{assistant: assistant, store: st}
}

// Chat never fails on assistant errors: the adapter degrades to its
// deterministic fallback internally.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if verr := decodeAndValidate(r, &req); verr != nil {
		handleServiceError(w, r, verr)
		return
	}

	user := middleware.GetUser(r.Context())
	resp := h.assistant.Chat(r.Context(), user, req.Message, req.SessionID)
	writeJSON(w, http.StatusOK, resp)
}

// History returns the caller's newest 50 exchanges, newest first. Empty
// on the in-memory backend, which never persists exchanges.
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	history, err := h.store.ListChatHistory(r.Context(), user.ID, historyLimit)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}
