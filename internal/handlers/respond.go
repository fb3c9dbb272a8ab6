package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"campus-backend/internal/models"
	"campus-backend/internal/services"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report field errors under their json names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeAndValidate parses the JSON body into dst and applies the struct
// validation tags. A non-nil return maps to HTTP 422.
func decodeAndValidate(r *http.Request, dst interface{}) *services.ValidationError {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &services.ValidationError{Fields: map[string]string{"body": "Invalid request body"}}
	}
	if err := validate.Struct(dst); err != nil {
		fields := make(map[string]string)
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			for _, fe := range ve {
				fields[fe.Field()] = validationMessage(fe)
			}
		} else {
			fields["body"] = "Invalid input"
		}
		return &services.ValidationError{Fields: fields}
	}
	return nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		return fmt.Sprintf("Must be at least %s", fe.Param())
	default:
		return "Invalid value"
	}
}

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

func errorRespWithFields(code, message string, fields map[string]string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			Fields:    fields,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch e := err.(type) {
	case *services.ValidationError:
		writeJSON(w, http.StatusUnprocessableEntity, errorRespWithFields("VALIDATION_ERROR", "Validation failed", e.Fields, r))
	case *services.ConflictError:
		writeJSON(w, http.StatusBadRequest, errorResp("CONFLICT", e.Message, r))
	case *services.NotFoundError:
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", e.Message, r))
	case *services.UnauthorizedError:
		writeJSON(w, http.StatusUnauthorized, errorResp("UNAUTHORIZED", e.Message, r))
	case *services.ServiceUnavailableError:
		writeJSON(w, http.StatusServiceUnavailable, errorResp("SERVICE_UNAVAILABLE", e.Message, r))
	default:
		log.Printf("internal error on %s %s: %v", r.Method, r.URL.Path, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "An unexpected error occurred", r))
	}
}
