package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"campus-backend/internal/middleware"
	"campus-backend/internal/models"
	"campus-backend/internal/store"
)

type AuthService struct {
	store store.Store
	jwt   *middleware.JWTAuth
}

func NewAuthService(st store.Store, jwt *middleware.JWTAuth) *AuthService {
	return &AuthService{store: st, jwt: jwt}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(req.Email)

	// Check uniqueness
	_, err := s.store.FindUserByEmail(ctx, email)
	if err == nil {
		return nil, &ConflictError{Message: "Email already registered"}
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	// Hash password (bcrypt cost 12)
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleStudent
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		StudentID:    req.StudentID,
		FullName:     req.FullName,
		Role:         role,
		PasswordHash: string(hash),
		IsActive:     true,
		Department:   req.Department,
		Year:         req.Year,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.store.InsertUser(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &models.AuthResponse{
		Message:     "User registered successfully",
		AccessToken: token,
		TokenType:   "bearer",
		User:        user.Summary(),
	}, nil
}

// Login verifies credentials. Unknown email and wrong password produce
// the same message so callers cannot tell which half failed.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(req.Email)

	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &UnauthorizedError{Message: "Invalid credentials"}
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, &UnauthorizedError{Message: "Invalid credentials"}
	}

	token, err := s.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &models.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user.Summary(),
	}, nil
}

// Custom errors
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "Validation error" }

type ConflictError struct{ Message string }

func (e *ConflictError) Error() string { return e.Message }

type NotFoundError struct{ Message string }

func (e *NotFoundError) Error() string { return e.Message }

type UnauthorizedError struct{ Message string }

func (e *UnauthorizedError) Error() string { return e.Message }

type ServiceUnavailableError struct{ Message string }

func (e *ServiceUnavailableError) Error() string { return e.Message }
