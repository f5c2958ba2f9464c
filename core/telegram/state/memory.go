package state

import "sync"

// Manager stores one session value per user. Values are returned by copy;
// callers that keep slices or maps inside S must clone them before mutating.
type Manager[S any] struct {
	mu       sync.RWMutex
	sessions map[int64]S

	locksMu sync.Mutex
	locks   map[int64]*sync.Mutex
}

// NewManager constructs an empty in-memory session manager.
func NewManager[S any]() *Manager[S] {
	return &Manager[S]{
		sessions: make(map[int64]S),
		locks:    make(map[int64]*sync.Mutex),
	}
}

// Get returns the session for a user and whether one was stored.
// A missing session yields the zero value of S.
func (m *Manager[S]) Get(userID int64) (S, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[userID]
	return s, ok
}

// Put replaces the session of a user.
func (m *Manager[S]) Put(userID int64, s S) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[userID] = s
}

// Clear removes the entire session for a user.
func (m *Manager[S]) Clear(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}

// Count reports how many users currently have a stored session.
func (m *Manager[S]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Range calls fn for every stored session until fn returns false.
func (m *Manager[S]) Range(fn func(userID int64, s S) bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for id, s := range m.sessions {
		if !fn(id, s) {
			return
		}
	}
}

// Lock acquires the per-user lock, creating it on first use, and returns the
// matching unlock function. Updates of different users never contend.
func (m *Manager[S]) Lock(userID int64) func() {
	m.locksMu.Lock()
	l, ok := m.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		m.locks[userID] = l
	}
	m.locksMu.Unlock()

	l.Lock()
	return l.Unlock
}
