package rentora

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error represents an API error response.
type Error struct {
	// StatusCode is the HTTP status code.
	StatusCode int `json:"-"`
	// Code is the error code (e.g., "unauthorized", "not_found").
	Code string `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional error details.
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// IsNotFound returns true if the error is a not found error.
func (e *Error) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound || e.Code == "not_found"
}

// IsUnauthorized returns true if the error is an authorization error.
func (e *Error) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.Code == "unauthorized"
}

// IsForbidden returns true if the error is a permission error.
func (e *Error) IsForbidden() bool {
	return e.StatusCode == http.StatusForbidden || e.Code == "forbidden"
}

// IsValidationError returns true if the error is a validation error
// (any 4xx other than 401, 403 and 404).
func (e *Error) IsValidationError() bool {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		return false
	}
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// IsServerError returns true if the backend failed (5xx).
func (e *Error) IsServerError() bool {
	return e.StatusCode >= 500
}

// Common errors.
var (
	// ErrUnauthorized is returned when the session is invalid or missing.
	// The client has already cleared the session store and notified the
	// unauthorized handler by the time a caller sees this.
	ErrUnauthorized = &Error{
		StatusCode: http.StatusUnauthorized,
		Code:       "unauthorized",
		Message:    "Session is invalid or expired",
	}

	// ErrForbidden is returned when the current role lacks permission.
	ErrForbidden = &Error{
		StatusCode: http.StatusForbidden,
		Code:       "forbidden",
		Message:    "Insufficient permissions",
	}

	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = &Error{
		StatusCode: http.StatusNotFound,
		Code:       "not_found",
		Message:    "Resource not found",
	}
)

// parseError parses an error response from the API. The backend usually
// answers with {"message": "..."}; some handlers wrap it one level deeper.
// Anything unparseable falls back to the raw body with the status text as
// the code.
func parseError(statusCode int, body []byte) error {
	var flat struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Details map[string]interface{} `json:"details,omitempty"`
	}
	if err := json.Unmarshal(body, &flat); err == nil && flat.Message != "" {
		return &Error{
			StatusCode: statusCode,
			Code:       flat.Code,
			Message:    flat.Message,
			Details:    flat.Details,
		}
	}

	var wrapped struct {
		Error struct {
			Code    string                 `json:"code"`
			Message string                 `json:"message"`
			Details map[string]interface{} `json:"details,omitempty"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Error.Message != "" {
		return &Error{
			StatusCode: statusCode,
			Code:       wrapped.Error.Code,
			Message:    wrapped.Error.Message,
			Details:    wrapped.Error.Details,
		}
	}

	msg := string(body)
	if msg == "" {
		msg = http.StatusText(statusCode)
	}
	return &Error{
		StatusCode: statusCode,
		Code:       http.StatusText(statusCode),
		Message:    msg,
	}
}

// IsAPIError checks if an error is an API error and returns it.
func IsAPIError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// ErrorMessage extracts a human-readable message from any error a client
// call can return: the backend-provided message for API errors, the error
// text for transport failures. Screens render this directly.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if apiErr, ok := IsAPIError(err); ok {
		return apiErr.Message
	}
	return err.Error()
}
