package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"campus-backend/internal/models"
	"campus-backend/internal/store"
)

func newTestAuth(t *testing.T) (*JWTAuth, *models.User) {
	t.Helper()
	st := store.NewMemory()
	user := &models.User{ID: "u1", Email: "ana@campus.edu", FullName: "Ana", Role: "student", IsActive: true}
	if err := st.InsertUser(context.Background(), user); err != nil {
		t.Fatalf("InsertUser: %v", err)
	}
	return NewJWTAuth("test-secret", st), user
}

func TestTokenRoundTrip(t *testing.T) {
	auth, user := newTestAuth(t)

	token, err := auth.GenerateAccessToken(user.ID)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	sub, err := auth.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if sub != user.ID {
		t.Errorf("Expected subject %q, got %q", user.ID, sub)
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	auth, user := newTestAuth(t)

	other := NewJWTAuth("different-secret", auth.Store)
	token, _ := other.GenerateAccessToken(user.ID)

	if _, err := auth.VerifyToken(token); err == nil {
		t.Error("Expected verification failure for foreign signature")
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	auth, user := newTestAuth(t)

	claims := jwt.MapClaims{
		"sub": user.ID,
		"exp": time.Now().Add(-time.Minute).Unix(),
		"iat": time.Now().Add(-25 * time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(auth.Secret)
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}

	_, err = auth.VerifyToken(expired)
	if err == nil {
		t.Fatal("Expected expired token to be rejected")
	}
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("Expected jwt.ErrTokenExpired in chain, got %v", err)
	}
}

func TestMiddleware_ExpiredTokenCode(t *testing.T) {
	auth, user := newTestAuth(t)

	claims := jwt.MapClaims{
		"sub": user.ID,
		"exp": time.Now().Add(-time.Minute).Unix(),
		"iat": time.Now().Add(-25 * time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(auth.Secret)
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}

	handler := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "TOKEN_EXPIRED") {
		t.Errorf("Expected TOKEN_EXPIRED code, got %q", rr.Body.String())
	}
}

func TestMiddleware_InjectsUser(t *testing.T) {
	auth, user := newTestAuth(t)
	token, _ := auth.GenerateAccessToken(user.ID)

	var got *models.User
	handler := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetUser(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	if got == nil || got.ID != user.ID {
		t.Errorf("Expected user %q in context, got %+v", user.ID, got)
	}
}

func TestMiddleware_Rejections(t *testing.T) {
	auth, _ := newTestAuth(t)

	// Token for a user that no longer exists
	orphan, _ := auth.GenerateAccessToken("deleted-user")

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"malformed token", "Bearer not.a.jwt"},
		{"unknown subject", "Bearer " + orphan},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("Handler should not be reached")
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != http.StatusUnauthorized {
				t.Errorf("Expected 401, got %d", rr.Code)
			}
		})
	}
}
