package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rentora "github.com/rentora/rentora-go"
	"github.com/rentora/rentora-go/cmd/rentora-lite/internal/store"
	"github.com/rentora/rentora-go/session"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New()
	store.Seed(st)
	return SetupRouter(Config{
		Store:     st,
		JWTSecret: []byte("test-secret"),
		Logger:    zerolog.Nop(),
	})
}

func loginAs(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()

	body, _ := json.Marshal(AuthenticateRequest{Email: email, Password: "password123"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/authenticate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func doAuthed(router *gin.Engine, token, method, path, contentType string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticate_ReturnsPrefixedRole(t *testing.T) {
	router := newTestRouter(t)

	body, _ := json.Marshal(AuthenticateRequest{Email: "renter@rentora.dev", Password: "password123"})
	rec := doAuthed(router, "", http.MethodPost, "/api/auth/authenticate", "application/json", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, session.Role("ROLE_RENTER"), resp.User.Role)
	assert.NotEmpty(t, resp.RefreshToken)
}

func TestAuthenticate_BadCredentials(t *testing.T) {
	router := newTestRouter(t)

	body, _ := json.Marshal(AuthenticateRequest{Email: "renter@rentora.dev", Password: "wrong"})
	rec := doAuthed(router, "", http.MethodPost, "/api/auth/authenticate", "application/json", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid credentials")
}

func TestAdminRoutes_RequireAuthAndRole(t *testing.T) {
	router := newTestRouter(t)

	rec := doAuthed(router, "", http.MethodGet, "/api/admin/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	renterToken := loginAs(t, router, "renter@rentora.dev")
	rec = doAuthed(router, renterToken, http.MethodGet, "/api/admin/users", "", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	adminToken := loginAs(t, router, "admin@rentora.dev")
	rec = doAuthed(router, adminToken, http.MethodGet, "/api/admin/users", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminUserStatus_TextPlainBody(t *testing.T) {
	router := newTestRouter(t)
	adminToken := loginAs(t, router, "admin@rentora.dev")

	rec := doAuthed(router, adminToken, http.MethodPut, "/api/admin/users/3/status", "text/plain", []byte("SUSPENDED"))
	require.Equal(t, http.StatusOK, rec.Code)

	// Suspended accounts can no longer authenticate.
	body, _ := json.Marshal(AuthenticateRequest{Email: "renter@rentora.dev", Password: "password123"})
	rec = doAuthed(router, "", http.MethodPost, "/api/auth/authenticate", "application/json", body)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminUserStatus_RejectsUnknownValue(t *testing.T) {
	router := newTestRouter(t)
	adminToken := loginAs(t, router, "admin@rentora.dev")

	rec := doAuthed(router, adminToken, http.MethodPut, "/api/admin/users/3/status", "text/plain", []byte(`{"status":"SUSPENDED"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminPropertyStatus_PublishesPendingListing(t *testing.T) {
	router := newTestRouter(t)
	adminToken := loginAs(t, router, "admin@rentora.dev")

	rec := doAuthed(router, adminToken, http.MethodPost, "/api/admin/properties/103/status", "text/plain", []byte("LIVE"))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doAuthed(router, "", http.MethodGet, "/api/properties?address=Porto", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var page rentora.Page[rentora.Property]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Content, 1)
	assert.Equal(t, int64(103), page.Content[0].ID)
}

func TestAdminVerificationAction_Approve(t *testing.T) {
	router := newTestRouter(t)
	adminToken := loginAs(t, router, "admin@rentora.dev")

	rec := doAuthed(router, adminToken, http.MethodPost, "/api/admin/verifications/401/action", "text/plain", []byte("APPROVE"))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doAuthed(router, adminToken, http.MethodGet, "/api/admin/verifications", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var pending []rentora.Verification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pending))
	assert.Empty(t, pending)
}

func TestPublicProperties_FilterAndPaging(t *testing.T) {
	router := newTestRouter(t)

	rec := doAuthed(router, "", http.MethodGet, "/api/properties?address=Lisbon&page=0&size=1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var page rentora.Page[rentora.Property]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Len(t, page.Content, 1)
	assert.Equal(t, int64(2), page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)
	assert.True(t, page.First)
	assert.False(t, page.Last)
}

func TestLandlordMediaUpload_MultipartFileField(t *testing.T) {
	router := newTestRouter(t)
	landlordToken := loginAs(t, router, "landlord@rentora.dev")

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", "balcony.jpg")
	require.NoError(t, err)
	part.Write([]byte("jpeg-bytes"))
	require.NoError(t, w.Close())

	rec := doAuthed(router, landlordToken, http.MethodPost, "/api/landlord/properties/101/media", w.FormDataContentType(), buf.Bytes())
	require.Equal(t, http.StatusCreated, rec.Code)

	var img rentora.Image
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &img))
	assert.True(t, strings.HasSuffix(img.URL, "balcony.jpg"))
}

func TestLandlordMediaUpload_WrongFieldRejected(t *testing.T) {
	router := newTestRouter(t)
	landlordToken := loginAs(t, router, "landlord@rentora.dev")

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, _ := w.CreateFormFile("image", "balcony.jpg")
	part.Write([]byte("jpeg-bytes"))
	w.Close()

	rec := doAuthed(router, landlordToken, http.MethodPost, "/api/landlord/properties/101/media", w.FormDataContentType(), buf.Bytes())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRenterFlow_SaveAndDashboard(t *testing.T) {
	router := newTestRouter(t)
	renterToken := loginAs(t, router, "renter@rentora.dev")

	rec := doAuthed(router, renterToken, http.MethodPost, "/api/renter/saved-properties/102", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doAuthed(router, renterToken, http.MethodGet, "/api/renter/dashboard", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var dash rentora.RenterDashboard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dash))
	assert.Equal(t, 1, dash.SavedPropertiesCount)
	assert.Equal(t, 1, dash.UpcomingBookingsCount)
}

// TestClientEndToEnd drives the real client library against the lite
// router: login normalizes the ROLE_ prefix, the stored token authorizes
// the next call, and the text/plain admin contract round-trips.
func TestClientEndToEnd(t *testing.T) {
	router := newTestRouter(t)
	server := httptest.NewServer(router)
	defer server.Close()

	st := session.NewMemoryStore()
	client := rentora.NewClient(
		rentora.WithBaseURL(server.URL+"/api"),
		rentora.WithSessionStore(st),
	)
	ctx := context.Background()

	resp, err := client.Auth.Login(ctx, rentora.LoginRequest{
		Email:    "admin@rentora.dev",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, session.RoleAdmin, resp.User.Role)
	require.NotNil(t, st.Read())
	assert.Equal(t, session.RoleAdmin, st.Read().Role)

	require.NoError(t, client.Admin.UpdateUserStatus(ctx, 3, session.UserStatusSuspended))

	users, err := client.Admin.Users(ctx, 0, 10)
	require.NoError(t, err)
	var renterStatus session.UserStatus
	for _, u := range users.Content {
		if u.ID == 3 {
			renterStatus = u.Status
		}
	}
	assert.Equal(t, session.UserStatusSuspended, renterStatus)
}
