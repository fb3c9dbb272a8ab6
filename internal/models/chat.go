package models

import "time"

// ChatMessage is one stored assistant exchange.
type ChatMessage struct {
	ID        string    `json:"id" bson:"id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	SessionID string    `json:"session_id" bson:"session_id"`
	Message   string    `json:"message" bson:"message"`
	Response  string    `json:"response" bson:"response"`
	Timestamp time.Time `json:"timestamp" bson:"-"`
}

type ChatRequest struct {
	Message   string `json:"message" validate:"required"`
	SessionID string `json:"session_id"`
}

type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

// DashboardStats are the per-user aggregate counts.
type DashboardStats struct {
	AttendanceRecords int64 `json:"attendance_records"`
	RegisteredEvents  int64 `json:"registered_events"`
	StudyGroups       int64 `json:"study_groups"`
	TotalCourses      int64 `json:"total_courses"`
}

// ErrorResponse is the envelope every failed request returns.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

type APIError struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}
