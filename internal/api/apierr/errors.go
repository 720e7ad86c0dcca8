package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/superapp/accounts/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeMissingFields    = "MISSING_FIELDS"
	CodePasswordTooShort = "PASSWORD_TOO_SHORT"
	CodePasswordMismatch = "PASSWORD_MISMATCH"
	CodeUserNotFound     = "USER_NOT_FOUND"
	CodeWrongPassword    = "WRONG_PASSWORD"
	CodeUsernameTaken    = "USERNAME_TAKEN"
	CodeNoSession        = "NO_SESSION"
	CodeInternalError    = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrMissingFields):
		return &httpError{http.StatusBadRequest, APIError{CodeMissingFields, "Please complete all fields"}}
	case errors.Is(err, model.ErrPasswordTooShort):
		return &httpError{http.StatusBadRequest, APIError{CodePasswordTooShort, "Password must be at least 4 characters"}}
	case errors.Is(err, model.ErrPasswordMismatch):
		return &httpError{http.StatusBadRequest, APIError{CodePasswordMismatch, "Passwords do not match"}}
	case errors.Is(err, model.ErrUserNotFound):
		return &httpError{http.StatusUnauthorized, APIError{CodeUserNotFound, "User does not exist"}}
	case errors.Is(err, model.ErrWrongPassword):
		return &httpError{http.StatusUnauthorized, APIError{CodeWrongPassword, "Incorrect password"}}
	case errors.Is(err, model.ErrUsernameTaken):
		return &httpError{http.StatusConflict, APIError{CodeUsernameTaken, "Username already exists"}}
	case errors.Is(err, model.ErrNoSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeNoSession, "No active session"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
