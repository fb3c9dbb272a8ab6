package models

import "time"

// ScheduleSlot is one meeting of a course, e.g. {"Monday", "09:00-10:30", "A101"}.
type ScheduleSlot struct {
	Day  string `json:"day" bson:"day" validate:"required"`
	Time string `json:"time" bson:"time" validate:"required"`
	Room string `json:"room" bson:"room"`
}

type Course struct {
	ID               string         `json:"id" bson:"id"`
	Name             string         `json:"name" bson:"name"`
	Code             string         `json:"code" bson:"code"`
	InstructorID     string         `json:"instructor_id" bson:"instructor_id"`
	Department       string         `json:"department" bson:"department"`
	Credits          int            `json:"credits" bson:"credits"`
	Description      *string        `json:"description,omitempty" bson:"description,omitempty"`
	Schedule         []ScheduleSlot `json:"schedule" bson:"schedule"`
	EnrolledStudents []string       `json:"enrolled_students" bson:"enrolled_students"`
	CreatedAt        time.Time      `json:"created_at" bson:"-"`
}

type CourseCreateRequest struct {
	Name        string         `json:"name" validate:"required"`
	Code        string         `json:"code" validate:"required"`
	Department  string         `json:"department" validate:"required"`
	Credits     int            `json:"credits" validate:"required,min=1"`
	Description *string        `json:"description"`
	Schedule    []ScheduleSlot `json:"schedule" validate:"dive"`
}

// CourseQR is the payload encoded into a course attendance QR code.
type CourseQR struct {
	CourseID   string `json:"course_id"`
	CourseCode string `json:"course_code"`
	Timestamp  string `json:"timestamp"`
}

type CourseQRResponse struct {
	QRData   CourseQR `json:"qr_data"`
	QRString string   `json:"qr_string"`
}
