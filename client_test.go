package rentora

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rentora/rentora-go/session"
)

// newTestClient wires a client against an httptest server with a fresh
// in-memory session store.
func newTestClient(t *testing.T, handler http.Handler, opts ...Option) (*Client, *session.MemoryStore, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := session.NewMemoryStore()
	opts = append([]Option{WithBaseURL(srv.URL), WithSessionStore(store)}, opts...)
	return NewClient(opts...), store, srv
}

func TestNewClient(t *testing.T) {
	client := NewClient()

	if client.baseURL != DefaultBaseURL {
		t.Errorf("expected baseURL %q, got %q", DefaultBaseURL, client.baseURL)
	}
	if client.httpClient.Timeout != DefaultTimeout {
		t.Errorf("expected timeout %v, got %v", DefaultTimeout, client.httpClient.Timeout)
	}
	if client.store == nil {
		t.Error("expected a default session store")
	}

	if client.Auth == nil {
		t.Error("expected Auth service to be initialized")
	}
	if client.Properties == nil {
		t.Error("expected Properties service to be initialized")
	}
	if client.MyProperties == nil {
		t.Error("expected MyProperties service to be initialized")
	}
	if client.Bookings == nil {
		t.Error("expected Bookings service to be initialized")
	}
	if client.Users == nil {
		t.Error("expected Users service to be initialized")
	}
	if client.Admin == nil {
		t.Error("expected Admin service to be initialized")
	}
	if client.Landlord == nil {
		t.Error("expected Landlord service to be initialized")
	}
	if client.Renter == nil {
		t.Error("expected Renter service to be initialized")
	}
	if client.Messaging == nil {
		t.Error("expected Messaging service to be initialized")
	}
	if client.Reviews == nil {
		t.Error("expected Reviews service to be initialized")
	}
	if client.Amenities == nil {
		t.Error("expected Amenities service to be initialized")
	}
	if client.Images == nil {
		t.Error("expected Images service to be initialized")
	}
}

func TestNewClient_WithOptions(t *testing.T) {
	customClient := &http.Client{Timeout: 60 * time.Second}
	customURL := "https://api.example.com"
	store := session.NewMemoryStore()

	client := NewClient(
		WithBaseURL(customURL),
		WithHTTPClient(customClient),
		WithSessionStore(store),
	)

	if client.baseURL != customURL {
		t.Errorf("expected baseURL %q, got %q", customURL, client.baseURL)
	}
	if client.httpClient != customClient {
		t.Error("expected custom HTTP client to be set")
	}
	if client.store != session.Store(store) {
		t.Error("expected custom session store to be set")
	}
}

func TestNewClient_WithTimeout(t *testing.T) {
	client := NewClient(WithTimeout(3 * time.Second))

	if client.httpClient.Timeout != 3*time.Second {
		t.Errorf("expected timeout 3s, got %v", client.httpClient.Timeout)
	}
}
