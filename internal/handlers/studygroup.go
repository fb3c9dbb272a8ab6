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

// Study groups mirror the events surface: document-store only, with the
// creator automatically holding the first membership slot.
type StudyGroupHandler struct {
	store store.Store
}

func NewStudyGroupHandler(st store.Store) *StudyGroupHandler {
	return &StudyGroupHandler{store: st}
}

func (h *StudyGroupHandler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.store.ListActiveStudyGroups(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

func (h *StudyGroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !h.store.Durable() {
		handleServiceError(w, r, &services.ServiceUnavailableError{Message: "Study groups store not configured"})
		return
	}

	var req models.StudyGroupCreateRequest
	if verr := decodeAndValidate(r, &req); verr != nil {
		handleServiceError(w, r, verr)
		return
	}

	user := middleware.GetUser(r.Context())

	maxMembers := req.MaxMembers
	if maxMembers == 0 {
		maxMembers = 10
	}

	group := &models.StudyGroup{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		CreatorID:   user.ID,
		CourseID:    req.CourseID,
		Members:     []string{user.ID},
		MaxMembers:  maxMembers,
		IsActive:    true,
		MeetingLink: req.MeetingLink,
		Schedule:    req.Schedule,
		CreatedAt:   time.Now().UTC(),
	}

	if err := h.store.InsertStudyGroup(r.Context(), group); err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, group)
}

func (h *StudyGroupHandler) Join(w http.ResponseWriter, r *http.Request) {
	if !h.store.Durable() {
		handleServiceError(w, r, &services.ServiceUnavailableError{Message: "Study groups store not configured"})
		return
	}

	groupID := chi.URLParam(r, "id")
	user := middleware.GetUser(r.Context())

	group, err := h.store.FindStudyGroupByID(r.Context(), groupID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			handleServiceError(w, r, &services.NotFoundError{Message: "Study group not found"})
			return
		}
		handleServiceError(w, r, err)
		return
	}

	if group.HasMember(user.ID) {
		handleServiceError(w, r, &services.ConflictError{Message: "Already a member of this group"})
		return
	}
	if group.IsFull() {
		handleServiceError(w, r, &services.ConflictError{Message: "Study group is full"})
		return
	}

	if err := h.store.AppendGroupMember(r.Context(), groupID, user.ID); err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Successfully joined study group"})
}
