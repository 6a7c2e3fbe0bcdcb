package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	fs, err := NewFileStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { fs.Close() })
	return fs, path
}

func TestFileStore_RoundTrip(t *testing.T) {
	fs, _ := newTestFileStore(t)
	require.Nil(t, fs.Read())

	s := Session{
		AccessToken:  "tok",
		RefreshToken: "ref",
		Role:         RoleRenter,
		User:         &User{ID: 9, Email: "x@example.com", Role: RoleRenter},
	}
	require.NoError(t, fs.Write(s))

	got := fs.Read()
	require.NotNil(t, got)
	assert.Equal(t, s, *got)
}

func TestFileStore_PersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	first, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Write(Session{AccessToken: "tok", Role: RoleAdmin}))
	require.NoError(t, first.Close())

	second, err := NewFileStore(path)
	require.NoError(t, err)
	defer second.Close()

	got := second.Read()
	require.NotNil(t, got)
	assert.Equal(t, "tok", got.AccessToken)
	assert.Equal(t, RoleAdmin, got.Role)
}

func TestFileStore_StorageKeys(t *testing.T) {
	fs, path := newTestFileStore(t)
	require.NoError(t, fs.Write(Session{
		AccessToken:  "tok",
		RefreshToken: "ref",
		Role:         RoleLandlord,
		User:         &User{ID: 1},
	}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Contains(t, doc, "token")
	assert.Contains(t, doc, "refreshToken")
	assert.Contains(t, doc, "role")
	assert.Contains(t, doc, "user")
}

func TestFileStore_ClearRemovesFile(t *testing.T) {
	fs, path := newTestFileStore(t)
	require.NoError(t, fs.Write(Session{AccessToken: "tok", Role: RoleRenter}))
	require.NoError(t, fs.Clear())

	assert.Nil(t, fs.Read())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Clearing an already-empty store is fine.
	require.NoError(t, fs.Clear())
}

func TestFileStore_CorruptFileReadsAsLoggedOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	fs, err := NewFileStore(path)
	require.NoError(t, err)
	defer fs.Close()

	assert.Nil(t, fs.Read())
}

func TestFileStore_CrossProcessNotification(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	tabA, err := NewFileStore(path)
	require.NoError(t, err)
	defer tabA.Close()

	tabB, err := NewFileStore(path)
	require.NoError(t, err)
	defer tabB.Close()

	gateB := NewGate(tabB)

	notified := make(chan struct{}, 4)
	cancel := tabB.Subscribe(func(*Session) {
		select {
		case notified <- struct{}{}:
		default:
		}
	})
	defer cancel()

	// Login in tab A; tab B observes it without polling.
	require.NoError(t, tabA.Write(Session{AccessToken: "tok", Role: RoleRenter}))
	require.Eventually(t, func() bool {
		return gateB.IsAuthenticated()
	}, 2*time.Second, 10*time.Millisecond, "tab B never saw the login")

	select {
	case <-notified:
	case <-time.After(2 * time.Second):
		t.Fatal("tab B subscriber was not notified of the external write")
	}

	// Logout in tab A; tab B's gate flips without a reload.
	require.NoError(t, tabA.Clear())
	require.Eventually(t, func() bool {
		return !gateB.IsAuthenticated()
	}, 2*time.Second, 10*time.Millisecond, "tab B never saw the logout")
}
