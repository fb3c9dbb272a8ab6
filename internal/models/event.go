package models

import "time"

type Event struct {
	ID              string    `json:"id" bson:"id"`
	Title           string    `json:"title" bson:"title"`
	Description     string    `json:"description" bson:"description"`
	OrganizerID     string    `json:"organizer_id" bson:"organizer_id"`
	Date            time.Time `json:"date" bson:"-"`
	Location        string    `json:"location" bson:"location"`
	Category        string    `json:"category" bson:"category"`
	MaxParticipants *int      `json:"max_participants,omitempty" bson:"max_participants,omitempty"`
	RegisteredUsers []string  `json:"registered_users" bson:"registered_users"`
	IsActive        bool      `json:"is_active" bson:"is_active"`
	ImageURL        *string   `json:"image_url,omitempty" bson:"image_url,omitempty"`
	CreatedAt       time.Time `json:"created_at" bson:"-"`
}

type EventCreateRequest struct {
	Title           string    `json:"title" validate:"required"`
	Description     string    `json:"description" validate:"required"`
	Date            time.Time `json:"date" validate:"required"`
	Location        string    `json:"location" validate:"required"`
	Category        string    `json:"category" validate:"required,oneof=academic cultural sports workshop"`
	MaxParticipants *int      `json:"max_participants" validate:"omitempty,min=1"`
	ImageURL        *string   `json:"image_url"`
}

// IsRegistered reports whether userID already holds a slot.
func (e *Event) IsRegistered(userID string) bool {
	for _, id := range e.RegisteredUsers {
		if id == userID {
			return true
		}
	}
	return false
}

// IsFull reports whether the participant cap, if any, has been reached.
func (e *Event) IsFull() bool {
	return e.MaxParticipants != nil && len(e.RegisteredUsers) >= *e.MaxParticipants
}
