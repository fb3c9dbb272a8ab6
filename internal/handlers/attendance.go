package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"campus-backend/internal/middleware"
	"campus-backend/internal/models"
	"campus-backend/internal/services"
	"campus-backend/internal/store"
)

type AttendanceHandler struct {
	store store.Store
}

func NewAttendanceHandler(st store.Store) *AttendanceHandler {
	return &AttendanceHandler{store: st}
}

// Mark records attendance for the caller. At most one record per
// (caller, class) per UTC calendar day.
func (h *AttendanceHandler) Mark(w http.ResponseWriter, r *http.Request) {
	var req models.AttendanceCreateRequest
	if verr := decodeAndValidate(r, &req); verr != nil {
		handleServiceError(w, r, verr)
		return
	}

	user := middleware.GetUser(r.Context())
	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	_, err := h.store.FindAttendanceInWindow(r.Context(), user.ID, req.ClassID, dayStart, dayEnd)
	if err == nil {
		handleServiceError(w, r, &services.ConflictError{Message: "Attendance already marked for today"})
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		handleServiceError(w, r, err)
		return
	}

	checkIn := now
	rec := &models.AttendanceRecord{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		ClassID:     req.ClassID,
		Method:      req.Method,
		CheckInTime: &checkIn,
		Location:    req.Location,
		Status:      models.StatusPresent,
		CreatedAt:   now,
	}

	if err := h.store.InsertAttendance(r.Context(), rec); err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

func (h *AttendanceHandler) My(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	records, err := h.store.ListAttendanceByUser(r.Context(), user.ID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}
