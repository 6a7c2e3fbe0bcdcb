package session

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// FileStore persists the session as a single JSON document on disk. Writes
// go through a temp file plus rename, so readers always see either the old
// or the new session, never a half-written one. An fsnotify watcher on the
// containing directory picks up writes made by other processes of the same
// user, which is how two concurrent CLIs (or a CLI and a desktop shell)
// observe one logout without polling.
type FileStore struct {
	path string

	mu      sync.Mutex
	current *Session
	raw     []byte // last serialized form we know about, for self-event suppression
	subs    map[int]func(*Session)
	nextSub int

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewFileStore opens (or creates the directory for) the session file at
// path and starts watching it for external changes. Close releases the
// watcher.
func NewFileStore(path string) (*FileStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create session watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch session directory: %w", err)
	}

	fs := &FileStore{
		path:    path,
		subs:    make(map[int]func(*Session)),
		watcher: watcher,
		done:    make(chan struct{}),
	}
	fs.current, fs.raw = fs.load()

	go fs.watch()
	return fs, nil
}

// Close stops the external-change watcher.
func (f *FileStore) Close() error {
	close(f.done)
	return f.watcher.Close()
}

// Read returns a copy of the persisted session, or nil when none exists.
func (f *FileStore) Read() *Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	return cloneSession(f.current)
}

// Write persists the session atomically.
func (f *FileStore) Write(s Session) error {
	data, err := json.MarshalIndent(&s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".session-*")
	if err != nil {
		return fmt.Errorf("failed to stage session file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace session file: %w", err)
	}

	f.current = cloneSession(&s)
	f.raw = data
	f.notifyLocked()
	return nil
}

// Clear removes the persisted session. Clearing an already-empty store is
// not an error.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	f.current = nil
	f.raw = nil
	f.notifyLocked()
	return nil
}

// Subscribe registers fn for change notifications, local or external.
func (f *FileStore) Subscribe(fn func(*Session)) func() {
	f.mu.Lock()
	id := f.nextSub
	f.nextSub++
	f.subs[id] = fn
	f.mu.Unlock()
	return func() {
		f.mu.Lock()
		delete(f.subs, id)
		f.mu.Unlock()
	}
}

// load reads and decodes the session file. A missing, empty or corrupt file
// reads as "no session"; corruption is treated like a logout rather than an
// error surfaced to every call site.
func (f *FileStore) load() (*Session, []byte) {
	data, err := os.ReadFile(f.path)
	if err != nil || len(data) == 0 {
		return nil, nil
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, nil
	}
	if s.AccessToken == "" {
		return nil, nil
	}
	return &s, data
}

func (f *FileStore) watch() {
	for {
		select {
		case <-f.done:
			return
		case event, ok := <-f.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(f.path) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			f.reload()
		case _, ok := <-f.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// reload re-reads the file after a filesystem event and notifies
// subscribers only when the content actually differs from what this store
// last wrote or observed. That keeps our own rename from echoing back as a
// second notification.
func (f *FileStore) reload() {
	cur, raw := f.load()

	f.mu.Lock()
	if bytes.Equal(raw, f.raw) {
		f.mu.Unlock()
		return
	}
	f.current = cur
	f.raw = raw
	f.notifyLocked()
	f.mu.Unlock()
}

// notifyLocked must be called with mu held. Callbacks run on a separate
// goroutine so a subscriber reading the store back does not deadlock.
func (f *FileStore) notifyLocked() {
	subs := make([]func(*Session), 0, len(f.subs))
	for _, fn := range f.subs {
		subs = append(subs, fn)
	}
	cur := cloneSession(f.current)
	go notify(subs, cur)
}
