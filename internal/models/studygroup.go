package models

import "time"

// GroupSchedule is a weekly meeting slot, e.g. {"Monday", "14:00"}.
type GroupSchedule struct {
	Day  string `json:"day" bson:"day"`
	Time string `json:"time" bson:"time"`
}

type StudyGroup struct {
	ID          string         `json:"id" bson:"id"`
	Name        string         `json:"name" bson:"name"`
	Description string         `json:"description" bson:"description"`
	CreatorID   string         `json:"creator_id" bson:"creator_id"`
	CourseID    *string        `json:"course_id,omitempty" bson:"course_id,omitempty"`
	Members     []string       `json:"members" bson:"members"`
	MaxMembers  int            `json:"max_members" bson:"max_members"`
	IsActive    bool           `json:"is_active" bson:"is_active"`
	MeetingLink *string        `json:"meeting_link,omitempty" bson:"meeting_link,omitempty"`
	Schedule    *GroupSchedule `json:"schedule,omitempty" bson:"schedule,omitempty"`
	CreatedAt   time.Time      `json:"created_at" bson:"-"`
}

type StudyGroupCreateRequest struct {
	Name        string         `json:"name" validate:"required"`
	Description string         `json:"description" validate:"required"`
	CourseID    *string        `json:"course_id"`
	MaxMembers  int            `json:"max_members" validate:"omitempty,min=1"`
	MeetingLink *string        `json:"meeting_link"`
	Schedule    *GroupSchedule `json:"schedule"`
}

// HasMember reports whether userID is already in the group.
func (g *StudyGroup) HasMember(userID string) bool {
	for _, id := range g.Members {
		if id == userID {
			return true
		}
	}
	return false
}

// IsFull reports whether membership has reached max_members.
func (g *StudyGroup) IsFull() bool {
	return len(g.Members) >= g.MaxMembers
}
