package flow

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"routerider/internal/domain"
	"routerider/internal/metrics"
)

// DefaultSessionTTL is how long an idle session survives before the
// sweep drops it.
const DefaultSessionTTL = 30 * time.Minute

// Manager owns the live sessions. Lookups take the read lock; create
// and sweep take the write lock.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

func NewManager(ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Start opens a fresh session on the search step.
func (m *Manager) Start() *Session {
	s := newSession(uuid.NewString(), m.now)

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	metrics.FlowSessionsStarted.Inc()
	return s
}

// Get resolves a session by id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, domain.NotFoundError{Resource: "flow session"}
	}
	return s, nil
}

// Sweep drops sessions idle longer than the TTL and reports how many
// went. Run it periodically; see main.
func (m *Manager) Sweep() int {
	cutoff := m.now().Add(-m.ttl)

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.sessions {
		s.mu.Lock()
		idle := s.lastActive.Before(cutoff)
		s.mu.Unlock()
		if idle {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// Len reports the live session count.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
