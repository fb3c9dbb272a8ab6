package handlers

import (
	"net/http"

	"campus-backend/internal/middleware"
	"campus-backend/internal/models"
	"campus-backend/internal/store"
)

type DashboardHandler struct {
	store store.Store
}

func NewDashboardHandler(st store.Store) *DashboardHandler {
	return &DashboardHandler{store: st}
}

// Stats aggregates per-caller counts through the store's counting
// primitives rather than loading collections.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	ctx := r.Context()

	attendance, err := h.store.CountAttendanceByUser(ctx, user.ID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	events, err := h.store.CountEventsRegisteredBy(ctx, user.ID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	groups, err := h.store.CountGroupsWithMember(ctx, user.ID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	courses, err := h.store.CountCourses(ctx)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.DashboardStats{
		AttendanceRecords: attendance,
		RegisteredEvents:  events,
		StudyGroups:       groups,
		TotalCourses:      courses,
	})
}
