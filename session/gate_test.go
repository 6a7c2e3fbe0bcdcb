package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestGate_IsAuthenticated(t *testing.T) {
	store := NewMemoryStore()
	gate := NewGate(store)

	assert.False(t, gate.IsAuthenticated(), "empty store")

	require.NoError(t, store.Write(Session{AccessToken: "opaque-token", Role: RoleRenter}))
	assert.True(t, gate.IsAuthenticated(), "opaque tokens are left to the backend")

	require.NoError(t, store.Write(Session{
		AccessToken: signedToken(t, time.Now().Add(time.Hour)),
		Role:        RoleRenter,
	}))
	assert.True(t, gate.IsAuthenticated(), "live JWT")

	require.NoError(t, store.Write(Session{
		AccessToken: signedToken(t, time.Now().Add(-time.Minute)),
		Role:        RoleRenter,
	}))
	assert.False(t, gate.IsAuthenticated(), "expired JWT counts as logged out")

	require.NoError(t, store.Clear())
	assert.False(t, gate.IsAuthenticated(), "after clear")
}

func TestGate_HasRole(t *testing.T) {
	store := NewMemoryStore()
	gate := NewGate(store)

	assert.False(t, gate.HasRole(RoleAdmin))

	require.NoError(t, store.Write(Session{AccessToken: "tok", Role: RoleAdmin}))
	assert.True(t, gate.HasRole(RoleAdmin))
	assert.False(t, gate.HasRole(RoleRenter))
}

func TestGate_SubscribeReEvaluates(t *testing.T) {
	store := NewMemoryStore()
	gate := NewGate(store)

	var observed []bool
	cancel := gate.Subscribe(func() {
		observed = append(observed, gate.IsAuthenticated())
	})
	defer cancel()

	require.NoError(t, store.Write(Session{AccessToken: "tok", Role: RoleRenter}))
	require.NoError(t, store.Clear())

	require.Len(t, observed, 2)
	assert.True(t, observed[0])
	assert.False(t, observed[1])
}
