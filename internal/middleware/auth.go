package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"campus-backend/internal/models"
	"campus-backend/internal/store"
)

type contextKey string

const UserKey contextKey = "user"

const tokenTTL = 24 * time.Hour

// JWTAuth issues and verifies bearer tokens and resolves them to stored
// user records on protected routes.
type JWTAuth struct {
	Secret []byte
	Store  store.Store
}

func NewJWTAuth(secret string, st store.Store) *JWTAuth {
	return &JWTAuth{Secret: []byte(secret), Store: st}
}

// GenerateAccessToken creates a JWT carrying the user id, valid for 24 hours.
func (j *JWTAuth) GenerateAccessToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(tokenTTL).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

// VerifyToken checks signature and expiry and returns the subject user id.
func (j *JWTAuth) VerifyToken(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return j.Secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", jwt.ErrTokenInvalidSubject
	}
	return sub, nil
}

// Middleware validates the bearer token, loads the user behind it and
// attaches the record to the request context. A token whose user no
// longer exists is rejected the same way as an invalid one.
func (j *JWTAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing authorization header", r)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid authorization format", r)
			return
		}

		userID, err := j.VerifyToken(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				writeError(w, http.StatusUnauthorized, "TOKEN_EXPIRED", "Token has expired", r)
			} else {
				writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token", r)
			}
			return
		}

		user, err := j.Store.FindUserByID(r.Context(), userID)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "User not found", r)
			return
		}

		ctx := context.WithValue(r.Context(), UserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUser extracts the authenticated user from the request context.
func GetUser(ctx context.Context) *models.User {
	user, _ := ctx.Value(UserKey).(*models.User)
	return user
}

func writeError(w http.ResponseWriter, status int, code, message string, r *http.Request) {
	requestID := r.Header.Get("X-Request-ID")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: requestID,
		},
	})
}
