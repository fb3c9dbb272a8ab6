package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"campus-backend/internal/models"
)

// Memory is the in-process fallback backend. Collections are plain slices
// behind one mutex; lookups are linear scans. Everything is lost on
// restart, so events, study groups and chat history (the durable-only
// surfaces) stay gated off at the HTTP layer when this backend is active.
type Memory struct {
	mu          sync.Mutex
	users       []models.User
	courses     []models.Course
	attendance  []models.AttendanceRecord
	events      []models.Event
	studyGroups []models.StudyGroup
	chat        []models.ChatMessage
}

func NewMemory() *Memory {
	s := &Memory{}
	s.seedCourses()
	return s
}

func (s *Memory) Durable() bool { return false }

// seedCourses loads a small sample catalog so development installs have
// something to browse and mark attendance against.
func (s *Memory) seedCourses() {
	samples := []struct {
		name, code, dept, desc string
		credits                int
		schedule               []models.ScheduleSlot
	}{
		{
			"Introduction to Computer Science", "CS101", "Computer Science",
			"Fundamental concepts of computer science including programming, algorithms, and data structures.", 3,
			[]models.ScheduleSlot{{Day: "Monday", Time: "09:00-10:30", Room: "A101"}, {Day: "Wednesday", Time: "09:00-10:30", Room: "A101"}},
		},
		{
			"Data Structures and Algorithms", "CS201", "Computer Science",
			"Advanced data structures, algorithm design, and complexity analysis.", 4,
			[]models.ScheduleSlot{{Day: "Tuesday", Time: "11:00-12:30", Room: "B205"}, {Day: "Thursday", Time: "11:00-12:30", Room: "B205"}},
		},
		{
			"Database Management Systems", "CS301", "Computer Science",
			"Design and implementation of database systems, SQL, and data modeling.", 3,
			[]models.ScheduleSlot{{Day: "Monday", Time: "14:00-15:30", Room: "C301"}, {Day: "Wednesday", Time: "14:00-15:30", Room: "C301"}},
		},
		{
			"Web Development", "CS401", "Computer Science",
			"Modern web development using React, Node.js, and full-stack frameworks.", 3,
			[]models.ScheduleSlot{{Day: "Tuesday", Time: "14:00-16:00", Room: "D401"}, {Day: "Friday", Time: "14:00-16:00", Room: "D401"}},
		},
	}

	for _, c := range samples {
		desc := c.desc
		s.courses = append(s.courses, models.Course{
			ID:               uuid.NewString(),
			Name:             c.name,
			Code:             c.code,
			InstructorID:     "system",
			Department:       c.dept,
			Credits:          c.credits,
			Description:      &desc,
			Schedule:         c.schedule,
			EnrolledStudents: []string{},
			CreatedAt:        time.Now().UTC(),
		})
	}
}

// ─── Users ───

func (s *Memory) InsertUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, *user)
	return nil
}

func (s *Memory) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	email = strings.ToLower(email)
	for i := range s.users {
		if s.users[i].Email == email {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) FindUserByID(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// ─── Courses ───

func (s *Memory) InsertCourse(_ context.Context, course *models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses = append(s.courses, *course)
	return nil
}

func (s *Memory) ListCourses(_ context.Context) ([]models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Course, len(s.courses))
	copy(out, s.courses)
	return out, nil
}

func (s *Memory) FindCourseByID(_ context.Context, id string) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.courses {
		if s.courses[i].ID == id {
			c := s.courses[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) CountCourses(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.courses)), nil
}

// ─── Attendance ───

func (s *Memory) InsertAttendance(_ context.Context, rec *models.AttendanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attendance = append(s.attendance, *rec)
	return nil
}

func (s *Memory) FindAttendanceInWindow(_ context.Context, userID, classID string, from, to time.Time) (*models.AttendanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.attendance {
		a := s.attendance[i]
		if a.UserID != userID || a.ClassID != classID {
			continue
		}
		if !a.CreatedAt.Before(from) && a.CreatedAt.Before(to) {
			return &a, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) ListAttendanceByUser(_ context.Context, userID string) ([]models.AttendanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.AttendanceRecord, 0)
	for i := range s.attendance {
		if s.attendance[i].UserID == userID {
			out = append(out, s.attendance[i])
		}
	}
	return out, nil
}

func (s *Memory) CountAttendanceByUser(_ context.Context, userID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for i := range s.attendance {
		if s.attendance[i].UserID == userID {
			n++
		}
	}
	return n, nil
}

// ─── Events ───

func (s *Memory) InsertEvent(_ context.Context, event *models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, *event)
	return nil
}

func (s *Memory) ListActiveEvents(_ context.Context) ([]models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Event, 0)
	for i := range s.events {
		if s.events[i].IsActive {
			out = append(out, s.events[i])
		}
	}
	return out, nil
}

func (s *Memory) FindEventByID(_ context.Context, id string) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.events {
		if s.events[i].ID == id {
			e := s.events[i]
			return &e, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) AppendEventRegistration(_ context.Context, eventID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.events {
		if s.events[i].ID == eventID {
			s.events[i].RegisteredUsers = append(s.events[i].RegisteredUsers, userID)
			return nil
		}
	}
	return ErrNotFound
}

func (s *Memory) CountEventsRegisteredBy(_ context.Context, userID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for i := range s.events {
		if s.events[i].IsRegistered(userID) {
			n++
		}
	}
	return n, nil
}

// ─── Study groups ───

func (s *Memory) InsertStudyGroup(_ context.Context, group *models.StudyGroup) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.studyGroups = append(s.studyGroups, *group)
	return nil
}

func (s *Memory) ListActiveStudyGroups(_ context.Context) ([]models.StudyGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.StudyGroup, 0)
	for i := range s.studyGroups {
		if s.studyGroups[i].IsActive {
			out = append(out, s.studyGroups[i])
		}
	}
	return out, nil
}

func (s *Memory) FindStudyGroupByID(_ context.Context, id string) (*models.StudyGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.studyGroups {
		if s.studyGroups[i].ID == id {
			g := s.studyGroups[i]
			return &g, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) AppendGroupMember(_ context.Context, groupID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.studyGroups {
		if s.studyGroups[i].ID == groupID {
			s.studyGroups[i].Members = append(s.studyGroups[i].Members, userID)
			return nil
		}
	}
	return ErrNotFound
}

func (s *Memory) CountGroupsWithMember(_ context.Context, userID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for i := range s.studyGroups {
		if s.studyGroups[i].HasMember(userID) {
			n++
		}
	}
	return n, nil
}

// ─── Chat ───

func (s *Memory) InsertChatMessage(_ context.Context, msg *models.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chat = append(s.chat, *msg)
	return nil
}

func (s *Memory) ListChatHistory(_ context.Context, userID string, limit int64) ([]models.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, 0)
	for i := len(s.chat) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		if s.chat[i].UserID == userID {
			out = append(out, s.chat[i])
		}
	}
	return out, nil
}
