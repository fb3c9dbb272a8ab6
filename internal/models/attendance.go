package models

import "time"

// Attendance methods.
const (
	MethodQRCode      = "qr_code"
	MethodFacial      = "facial_recognition"
	MethodManual      = "manual"
	MethodGeolocation = "geolocation"
)

// Attendance statuses.
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
)

type GeoPoint struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

type AttendanceRecord struct {
	ID           string     `json:"id" bson:"id"`
	UserID       string     `json:"user_id" bson:"user_id"`
	ClassID      string     `json:"class_id" bson:"class_id"`
	Method       string     `json:"method" bson:"method"`
	CheckInTime  *time.Time `json:"check_in_time" bson:"-"`
	CheckOutTime *time.Time `json:"check_out_time,omitempty" bson:"-"`
	Location     *GeoPoint  `json:"location,omitempty" bson:"location,omitempty"`
	Status       string     `json:"status" bson:"status"`
	CreatedAt    time.Time  `json:"created_at" bson:"-"`
}

type AttendanceCreateRequest struct {
	ClassID  string    `json:"class_id" validate:"required"`
	Method   string    `json:"method" validate:"required,oneof=qr_code facial_recognition manual geolocation"`
	Location *GeoPoint `json:"location"`
}
