package handlers

import (
	"encoding/json"
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

type CourseHandler struct {
	store store.Store
}

func NewCourseHandler(st store.Store) *CourseHandler {
	return &CourseHandler{store: st}
}

func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	courses, err := h.store.ListCourses(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, courses)
}

func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CourseCreateRequest
	if verr := decodeAndValidate(r, &req); verr != nil {
		handleServiceError(w, r, verr)
		return
	}

	user := middleware.GetUser(r.Context())

	schedule := req.Schedule
	if schedule == nil {
		schedule = []models.ScheduleSlot{}
	}

	course := &models.Course{
		ID:               uuid.NewString(),
		Name:             req.Name,
		Code:             req.Code,
		InstructorID:     user.ID,
		Department:       req.Department,
		Credits:          req.Credits,
		Description:      req.Description,
		Schedule:         schedule,
		EnrolledStudents: []string{},
		CreatedAt:        time.Now().UTC(),
	}

	if err := h.store.InsertCourse(r.Context(), course); err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, course)
}

// QR returns the payload encoded into a course attendance QR code: the
// course id plus an issue timestamp so scanners can reject stale codes.
func (h *CourseHandler) QR(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "id")

	course, err := h.store.FindCourseByID(r.Context(), courseID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			handleServiceError(w, r, &services.NotFoundError{Message: "Course not found"})
			return
		}
		handleServiceError(w, r, err)
		return
	}

	qr := models.CourseQR{
		CourseID:   course.ID,
		CourseCode: course.Code,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	encoded, err := json.Marshal(qr)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.CourseQRResponse{QRData: qr, QRString: string(encoded)})
}
