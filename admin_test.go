package rentora

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/rentora/rentora-go/session"
)

func TestUpdateUserStatus_SendsBareStringBody(t *testing.T) {
	var gotPath, gotContentType, gotBody, gotMethod string
	client, store, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
	}))

	store.Write(session.Session{AccessToken: "admin-token", Role: session.RoleAdmin})

	err := client.Admin.UpdateUserStatus(context.Background(), 42, session.UserStatusSuspended)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotMethod != http.MethodPut {
		t.Errorf("expected PUT, got %s", gotMethod)
	}
	if gotPath != "/admin/users/42/status" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotContentType != "text/plain" {
		t.Errorf("expected Content-Type text/plain, got %q", gotContentType)
	}
	if gotBody != "SUSPENDED" {
		t.Errorf("expected literal SUSPENDED body, got %q", gotBody)
	}
}

func TestUpdatePropertyStatus_SendsBareStringBody(t *testing.T) {
	var gotBody, gotContentType, gotMethod string
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
	}))

	if err := client.Admin.UpdatePropertyStatus(context.Background(), 9, PropertyStatusLive); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("expected POST, got %s", gotMethod)
	}
	if gotContentType != "text/plain" || gotBody != "LIVE" {
		t.Errorf("expected text/plain LIVE, got %q %q", gotContentType, gotBody)
	}
}

func TestResolveVerification_SendsBareStringBody(t *testing.T) {
	var gotPath, gotBody string
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
	}))

	if err := client.Admin.ResolveVerification(context.Background(), 5, VerificationApprove); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/admin/verifications/5/action" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotBody != "APPROVE" {
		t.Errorf("expected literal APPROVE body, got %q", gotBody)
	}
}

func TestAdminProperties_StatusFilter(t *testing.T) {
	var gotQuery string
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}))

	if _, err := client.Admin.Properties(context.Background(), PropertyStatusPending); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery != "status=PENDING" {
		t.Errorf("expected status filter, got %q", gotQuery)
	}

	if _, err := client.Admin.Properties(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery != "" {
		t.Errorf("expected no query without filter, got %q", gotQuery)
	}
}

func TestUpdateFeaturedProperties_SendsJSONArray(t *testing.T) {
	var gotBody, gotContentType string
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
	}))

	if err := client.Admin.UpdateFeaturedProperties(context.Background(), []int64{3, 1, 4}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotContentType != "application/json" {
		t.Errorf("expected JSON content type, got %q", gotContentType)
	}
	if gotBody != "[3,1,4]" {
		t.Errorf("expected raw id array, got %q", gotBody)
	}
}
