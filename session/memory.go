package session

import "sync"

// MemoryStore is an in-process Store. It is the default store of a client
// that was not given a persistent one, and the store of choice in tests.
type MemoryStore struct {
	mu      sync.Mutex
	current *Session
	subs    map[int]func(*Session)
	nextSub int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{subs: make(map[int]func(*Session))}
}

// Read returns a copy of the current session, or nil when logged out.
func (m *MemoryStore) Read() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneSession(m.current)
}

// Write replaces the session in one step.
func (m *MemoryStore) Write(s Session) error {
	m.mu.Lock()
	m.current = cloneSession(&s)
	subs, cur := m.snapshot()
	m.mu.Unlock()
	notify(subs, cur)
	return nil
}

// Clear removes the session.
func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	m.current = nil
	subs, cur := m.snapshot()
	m.mu.Unlock()
	notify(subs, cur)
	return nil
}

// Subscribe registers fn for change notifications.
func (m *MemoryStore) Subscribe(fn func(*Session)) func() {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.mu.Unlock()
	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// snapshot must be called with mu held.
func (m *MemoryStore) snapshot() ([]func(*Session), *Session) {
	subs := make([]func(*Session), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	return subs, cloneSession(m.current)
}

func notify(subs []func(*Session), s *Session) {
	for _, fn := range subs {
		fn(cloneSession(s))
	}
}
