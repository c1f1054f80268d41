package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	// Unknown email and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrTokenInvalid is returned for malformed, tampered, or expired tokens.
	ErrTokenInvalid = errors.New("invalid or expired token")
	// ErrUserNotFound is returned when a user lookup finds no record.
	ErrUserNotFound = errors.New("user not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Code    string       `json:"code"`
	Details []FieldError `json:"details,omitempty"`
}

// FieldError carries a validation failure for a single input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything outside the
// taxonomy becomes a generic 500 so internals never leak to the caller.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrDuplicateEmail):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_EXISTS")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrTokenInvalid):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "TOKEN_INVALID")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
