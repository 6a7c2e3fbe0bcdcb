package rentora

import (
	"errors"
	"net/http"
	"testing"
)

func TestParseError_FlatMessage(t *testing.T) {
	err := parseError(http.StatusBadRequest, []byte(`{"message":"email already registered"}`))

	apiErr, ok := IsAPIError(err)
	if !ok {
		t.Fatalf("expected API error, got %T", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "email already registered" {
		t.Errorf("expected backend message, got %q", apiErr.Message)
	}
	if !apiErr.IsValidationError() {
		t.Error("expected 400 to classify as validation error")
	}
}

func TestParseError_WrappedFormat(t *testing.T) {
	body := []byte(`{"error":{"code":"not_found","message":"property not found"}}`)
	err := parseError(http.StatusNotFound, body)

	apiErr, _ := IsAPIError(err)
	if apiErr.Code != "not_found" || apiErr.Message != "property not found" {
		t.Errorf("expected wrapped error fields, got %+v", apiErr)
	}
	if !apiErr.IsNotFound() {
		t.Error("expected not found classification")
	}
}

func TestParseError_FallbackToRawBody(t *testing.T) {
	err := parseError(http.StatusBadGateway, []byte("upstream exploded"))

	apiErr, _ := IsAPIError(err)
	if apiErr.Message != "upstream exploded" {
		t.Errorf("expected raw body as message, got %q", apiErr.Message)
	}
	if apiErr.Code != http.StatusText(http.StatusBadGateway) {
		t.Errorf("expected status text code, got %q", apiErr.Code)
	}
}

func TestParseError_EmptyBody(t *testing.T) {
	err := parseError(http.StatusInternalServerError, nil)

	apiErr, _ := IsAPIError(err)
	if apiErr.Message != http.StatusText(http.StatusInternalServerError) {
		t.Errorf("expected generic fallback, got %q", apiErr.Message)
	}
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		status     int
		check      func(*Error) bool
		name       string
		wantResult bool
	}{
		{http.StatusUnauthorized, (*Error).IsUnauthorized, "401 unauthorized", true},
		{http.StatusForbidden, (*Error).IsForbidden, "403 forbidden", true},
		{http.StatusNotFound, (*Error).IsNotFound, "404 not found", true},
		{http.StatusConflict, (*Error).IsValidationError, "409 validation", true},
		{http.StatusUnauthorized, (*Error).IsValidationError, "401 not validation", false},
		{http.StatusForbidden, (*Error).IsValidationError, "403 not validation", false},
		{http.StatusNotFound, (*Error).IsValidationError, "404 not validation", false},
		{http.StatusInternalServerError, (*Error).IsServerError, "500 server", true},
		{http.StatusServiceUnavailable, (*Error).IsServerError, "503 server", true},
	}

	for _, tt := range tests {
		e := &Error{StatusCode: tt.status}
		if got := tt.check(e); got != tt.wantResult {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.wantResult)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	if got := ErrorMessage(nil); got != "" {
		t.Errorf("expected empty message for nil error, got %q", got)
	}

	apiErr := &Error{StatusCode: 404, Code: "not_found", Message: "no such property"}
	if got := ErrorMessage(apiErr); got != "no such property" {
		t.Errorf("expected backend message, got %q", got)
	}

	plain := errors.New("connection refused")
	if got := ErrorMessage(plain); got != "connection refused" {
		t.Errorf("expected error text, got %q", got)
	}
}

func TestError_ErrorString(t *testing.T) {
	withCode := &Error{Code: "forbidden", Message: "Insufficient permissions"}
	if got := withCode.Error(); got != "forbidden: Insufficient permissions" {
		t.Errorf("unexpected error string %q", got)
	}

	noCode := &Error{Message: "something broke"}
	if got := noCode.Error(); got != "something broke" {
		t.Errorf("unexpected error string %q", got)
	}
}
