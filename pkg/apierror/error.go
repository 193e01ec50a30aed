package apierror

import (
	"encoding/json"
	"net/http"
)

// Error represents a structured API error response.
type Error struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// ToJSON converts the error to JSON bytes.
func (e *Error) ToJSON() []byte {
	data, _ := json.Marshal(map[string]interface{}{
		"error": map[string]string{
			"code":    e.Code,
			"message": e.Message,
		},
	})
	return data
}

// BadRequest creates a 400 Bad Request error.
func BadRequest(message string) *Error {
	return &Error{
		StatusCode: http.StatusBadRequest,
		Code:       "BAD_REQUEST",
		Message:    message,
	}
}

// Unauthorized creates a 401 error for requests without credentials.
func Unauthorized(message string) *Error {
	if message == "" {
		message = "Authentication required"
	}
	return &Error{
		StatusCode: http.StatusUnauthorized,
		Code:       "UNAUTHORIZED",
		Message:    message,
	}
}

// InvalidToken creates a 400 error for malformed, tampered or expired
// tokens.
func InvalidToken(message string) *Error {
	if message == "" {
		message = "Invalid Token"
	}
	return &Error{
		StatusCode: http.StatusBadRequest,
		Code:       "INVALID_TOKEN",
		Message:    message,
	}
}

// InvalidCredentials creates a 400 error for failed logins. The same
// error is used for unknown emails and wrong passwords so callers
// cannot enumerate accounts.
func InvalidCredentials() *Error {
	return &Error{
		StatusCode: http.StatusBadRequest,
		Code:       "INVALID_CREDENTIALS",
		Message:    "Invalid credentials",
	}
}

// DuplicateItem creates a 400 error for catalog name collisions.
func DuplicateItem(message string) *Error {
	if message == "" {
		message = "Item already exists"
	}
	return &Error{
		StatusCode: http.StatusBadRequest,
		Code:       "DUPLICATE_ITEM",
		Message:    message,
	}
}

// NotFound creates a 404 Not Found error.
func NotFound(message string) *Error {
	if message == "" {
		message = "Resource not found"
	}
	return &Error{
		StatusCode: http.StatusNotFound,
		Code:       "NOT_FOUND",
		Message:    message,
	}
}

// InternalError creates a 500 Internal Server Error.
func InternalError(message string) *Error {
	if message == "" {
		message = "An unexpected error occurred"
	}
	return &Error{
		StatusCode: http.StatusInternalServerError,
		Code:       "INTERNAL_ERROR",
		Message:    message,
	}
}
