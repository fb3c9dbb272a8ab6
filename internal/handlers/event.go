package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"campus-backend/internal/middleware"
	"campus-backend/internal/models"
	"campus-backend/internal/services"
	"campus-backend/internal/store"
)

// Events are a document-store-only surface: the in-memory backend keeps
// the list endpoint empty and rejects writes with 503. Deliberate,
// preserved behavior of the platform.
type EventHandler struct {
	store store.Store
}

func NewEventHandler(st store.Store) *EventHandler {
	return &EventHandler{store: st}
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.store.ListActiveEvents(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !h.store.Durable() {
		handleServiceError(w, r, &services.ServiceUnavailableError{Message: "Events store not configured"})
		return
	}

	var req models.EventCreateRequest
	if verr := decodeAndValidate(r, &req); verr != nil {
		handleServiceError(w, r, verr)
		return
	}

	user := middleware.GetUser(r.Context())

	event := &models.Event{
		ID:              uuid.NewString(),
		Title:           req.Title,
		Description:     req.Description,
		OrganizerID:     user.ID,
		Date:            req.Date,
		Location:        req.Location,
		Category:        req.Category,
		MaxParticipants: req.MaxParticipants,
		RegisteredUsers: []string{},
		IsActive:        true,
		ImageURL:        req.ImageURL,
		CreatedAt:       time.Now().UTC(),
	}

	if err := h.store.InsertEvent(r.Context(), event); err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, event)
}

// Register appends the caller to the event's participant set. The check
// and the append are separate store calls, so two racing registrations
// can both pass; accepted best-effort.
func (h *EventHandler) Register(w http.ResponseWriter, r *http.Request) {
	if !h.store.Durable() {
		handleServiceError(w, r, &services.ServiceUnavailableError{Message: "Events store not configured"})
		return
	}

	eventID := chi.URLParam(r, "id")
	user := middleware.GetUser(r.Context())

	event, err := h.store.FindEventByID(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			handleServiceError(w, r, &services.NotFoundError{Message: "Event not found"})
			return
		}
		handleServiceError(w, r, err)
		return
	}

	if event.IsRegistered(user.ID) {
		handleServiceError(w, r, &services.ConflictError{Message: "Already registered for this event"})
		return
	}
	if event.IsFull() {
		handleServiceError(w, r, &services.ConflictError{Message: "Event is full"})
		return
	}

	if err := h.store.AppendEventRegistration(r.Context(), eventID, user.ID); err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Successfully registered for event"})
}
