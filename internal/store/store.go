package store

import (
	"context"
	"errors"
	"time"

	"campus-backend/internal/models"
)

// ErrNotFound is returned by every Find* method when no record matches.
var ErrNotFound = errors.New("store: record not found")

// Store is the uniform persistence surface. Two implementations exist:
// Memory (process-lifetime, development fallback) and Mongo (durable).
// The backend is chosen once at startup; handlers never branch on it
// beyond the Durable flag.
//
// Duplicate guards built on top of this interface (attendance once per
// day, no duplicate event registration or group membership) are
// read-then-write: two concurrent requests for the same subject can both
// pass the read. That race is an accepted best-effort limitation.
type Store interface {
	// Durable reports whether records survive a restart. The memory
	// backend returns false, which gates the document-store-only
	// surfaces (events, study groups, chat history).
	Durable() bool

	InsertUser(ctx context.Context, user *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id string) (*models.User, error)

	InsertCourse(ctx context.Context, course *models.Course) error
	ListCourses(ctx context.Context) ([]models.Course, error)
	FindCourseByID(ctx context.Context, id string) (*models.Course, error)
	CountCourses(ctx context.Context) (int64, error)

	InsertAttendance(ctx context.Context, rec *models.AttendanceRecord) error
	// FindAttendanceInWindow returns the record for (userID, classID)
	// created within [from, to), or ErrNotFound.
	FindAttendanceInWindow(ctx context.Context, userID, classID string, from, to time.Time) (*models.AttendanceRecord, error)
	ListAttendanceByUser(ctx context.Context, userID string) ([]models.AttendanceRecord, error)
	CountAttendanceByUser(ctx context.Context, userID string) (int64, error)

	InsertEvent(ctx context.Context, event *models.Event) error
	ListActiveEvents(ctx context.Context) ([]models.Event, error)
	FindEventByID(ctx context.Context, id string) (*models.Event, error)
	AppendEventRegistration(ctx context.Context, eventID, userID string) error
	CountEventsRegisteredBy(ctx context.Context, userID string) (int64, error)

	InsertStudyGroup(ctx context.Context, group *models.StudyGroup) error
	ListActiveStudyGroups(ctx context.Context) ([]models.StudyGroup, error)
	FindStudyGroupByID(ctx context.Context, id string) (*models.StudyGroup, error)
	AppendGroupMember(ctx context.Context, groupID, userID string) error
	CountGroupsWithMember(ctx context.Context, userID string) (int64, error)

	InsertChatMessage(ctx context.Context, msg *models.ChatMessage) error
	// ListChatHistory returns the user's most recent exchanges,
	// newest first, at most limit records.
	ListChatHistory(ctx context.Context, userID string, limit int64) ([]models.ChatMessage, error)
}
