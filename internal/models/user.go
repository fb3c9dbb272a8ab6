package models

import "time"

// User roles.
const (
	RoleStudent = "student"
	RoleFaculty = "faculty"
	RoleAdmin   = "admin"
)

type User struct {
	ID           string    `json:"id" bson:"id"`
	Email        string    `json:"email" bson:"email"`
	StudentID    *string   `json:"student_id,omitempty" bson:"student_id,omitempty"`
	FullName     string    `json:"full_name" bson:"full_name"`
	Role         string    `json:"role" bson:"role"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	IsActive     bool      `json:"is_active" bson:"is_active"`
	ProfileImage *string   `json:"profile_image,omitempty" bson:"profile_image,omitempty"`
	Department   *string   `json:"department,omitempty" bson:"department,omitempty"`
	Year         *int      `json:"year,omitempty" bson:"year,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"-"`
}

type RegisterRequest struct {
	Email      string  `json:"email" validate:"required,email"`
	Password   string  `json:"password" validate:"required"`
	FullName   string  `json:"full_name" validate:"required"`
	Role       string  `json:"role" validate:"omitempty,oneof=student faculty admin"`
	StudentID  *string `json:"student_id"`
	Department *string `json:"department"`
	Year       *int    `json:"year"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserSummary is the trimmed user payload returned with auth tokens.
type UserSummary struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Email: u.Email, FullName: u.FullName, Role: u.Role}
}

type AuthResponse struct {
	Message     string      `json:"message,omitempty"`
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        UserSummary `json:"user"`
}
