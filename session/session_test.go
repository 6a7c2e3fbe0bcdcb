package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"RENTER", RoleRenter, true},
		{"LANDLORD", RoleLandlord, true},
		{"ADMIN", RoleAdmin, true},
		{"ROLE_RENTER", RoleRenter, true},
		{"ROLE_LANDLORD", RoleLandlord, true},
		{"ROLE_ADMIN", RoleAdmin, true},
		{"role_renter", RoleRenter, true},
		{" renter ", RoleRenter, true},
		{"SUPERUSER", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseRole(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	require.Nil(t, store.Read())

	s := Session{
		AccessToken:  "tok",
		RefreshToken: "ref",
		Role:         RoleLandlord,
		User: &User{
			ID:        3,
			FirstName: "Maria",
			Email:     "maria@example.com",
			Role:      RoleLandlord,
			Status:    UserStatusActive,
		},
	}
	require.NoError(t, store.Write(s))

	got := store.Read()
	require.NotNil(t, got)
	assert.Equal(t, s, *got)
}

func TestMemoryStore_ReadReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Write(Session{
		AccessToken: "tok",
		Role:        RoleRenter,
		User:        &User{ID: 1, FirstName: "Ana"},
	}))

	first := store.Read()
	first.AccessToken = "tampered"
	first.User.FirstName = "Eve"

	second := store.Read()
	assert.Equal(t, "tok", second.AccessToken)
	assert.Equal(t, "Ana", second.User.FirstName)
}

func TestMemoryStore_ClearAndNotify(t *testing.T) {
	store := NewMemoryStore()

	var events []*Session
	cancel := store.Subscribe(func(s *Session) {
		events = append(events, s)
	})
	defer cancel()

	require.NoError(t, store.Write(Session{AccessToken: "tok", Role: RoleAdmin}))
	require.NoError(t, store.Clear())

	require.Len(t, events, 2)
	require.NotNil(t, events[0])
	assert.Equal(t, "tok", events[0].AccessToken)
	assert.Nil(t, events[1])
	assert.Nil(t, store.Read())
}

func TestMemoryStore_Unsubscribe(t *testing.T) {
	store := NewMemoryStore()

	var calls int
	cancel := store.Subscribe(func(*Session) { calls++ })

	require.NoError(t, store.Write(Session{AccessToken: "a", Role: RoleRenter}))
	cancel()
	require.NoError(t, store.Write(Session{AccessToken: "b", Role: RoleRenter}))

	assert.Equal(t, 1, calls)
}
