package services

import (
	"context"
	"testing"

	"campus-backend/internal/middleware"
	"campus-backend/internal/models"
	"campus-backend/internal/store"
)

func newAuthService() *AuthService {
	st := store.NewMemory()
	return NewAuthService(st, middleware.NewJWTAuth("test-secret", st))
}

func TestRegister_Success(t *testing.T) {
	svc := newAuthService()

	resp, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:    "Ana@Campus.EDU",
		Password: "secret123",
		FullName: "Ana",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if resp.AccessToken == "" {
		t.Error("Expected access token")
	}
	if resp.TokenType != "bearer" {
		t.Errorf("Expected token_type bearer, got %q", resp.TokenType)
	}
	if resp.User.Email != "ana@campus.edu" {
		t.Errorf("Expected lowercased email, got %q", resp.User.Email)
	}
	if resp.User.Role != models.RoleStudent {
		t.Errorf("Expected default role student, got %q", resp.User.Role)
	}
}

func TestRegister_DuplicateEmailCaseInsensitive(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, models.RegisterRequest{Email: "ana@campus.edu", Password: "secret123", FullName: "Ana"}); err != nil {
		t.Fatalf("First register: %v", err)
	}

	_, err := svc.Register(ctx, models.RegisterRequest{Email: "ANA@CAMPUS.EDU", Password: "other456", FullName: "Imposter"})
	if err == nil {
		t.Fatal("Expected conflict on duplicate email")
	}
	ce, ok := err.(*ConflictError)
	if !ok {
		t.Fatalf("Expected *ConflictError, got %T", err)
	}
	if ce.Message != "Email already registered" {
		t.Errorf("Unexpected message: %q", ce.Message)
	}
}

func TestLogin(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, models.RegisterRequest{Email: "ana@campus.edu", Password: "secret123", FullName: "Ana"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{"correct credentials", "ana@campus.edu", "secret123", false},
		{"case-folded email", "ANA@campus.edu", "secret123", false},
		{"wrong password", "ana@campus.edu", "secret124", true},
		{"unknown email", "bob@campus.edu", "secret123", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := svc.Login(ctx, models.LoginRequest{Email: tc.email, Password: tc.password})
			if tc.wantErr {
				if err == nil {
					t.Fatal("Expected login failure")
				}
				ue, ok := err.(*UnauthorizedError)
				if !ok {
					t.Fatalf("Expected *UnauthorizedError, got %T", err)
				}
				// Same message for both failure causes
				if ue.Message != "Invalid credentials" {
					t.Errorf("Unexpected message: %q", ue.Message)
				}
				return
			}
			if err != nil {
				t.Fatalf("Login: %v", err)
			}
			if resp.AccessToken == "" {
				t.Error("Expected access token")
			}
		})
	}
}

func TestRegister_PasswordNeverStoredPlaintext(t *testing.T) {
	st := store.NewMemory()
	svc := NewAuthService(st, middleware.NewJWTAuth("test-secret", st))
	ctx := context.Background()

	if _, err := svc.Register(ctx, models.RegisterRequest{Email: "ana@campus.edu", Password: "secret123", FullName: "Ana"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, err := st.FindUserByEmail(ctx, "ana@campus.edu")
	if err != nil {
		t.Fatalf("FindUserByEmail: %v", err)
	}
	if user.PasswordHash == "secret123" || user.PasswordHash == "" {
		t.Error("Password stored in plaintext or missing hash")
	}
}
