package orderform

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned for unknown or expired sessions.
var ErrSessionNotFound = errors.New("order session not found")

// Registry holds the open form sessions. Each session belongs to one
// client; the registry only hands them out by id.
type Registry struct {
	ttl time.Duration
	now func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*registryEntry
}

type registryEntry struct {
	session  *Session
	lastSeen time.Time
}

// NewRegistry creates a Registry that forgets sessions idle for longer than
// ttl. A zero ttl keeps sessions for the life of the process.
func NewRegistry(ttl time.Duration, now func() time.Time) *Registry {
	if now == nil {
		now = time.Now
	}
	return &Registry{
		ttl:      ttl,
		now:      now,
		sessions: make(map[uuid.UUID]*registryEntry),
	}
}

// Add stores s and purges idle sessions.
func (r *Registry) Add(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.purgeLocked(now)
	r.sessions[s.ID()] = &registryEntry{session: s, lastSeen: now}
}

// Get returns the session with id and marks it as used.
func (r *Registry) Get(id uuid.UUID) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	now := r.now()
	if r.expired(e, now) {
		delete(r.sessions, id)
		return nil, ErrSessionNotFound
	}
	e.lastSeen = now
	return e.session, nil
}

func (r *Registry) purgeLocked(now time.Time) {
	for id, e := range r.sessions {
		// A session mid-submit is never dropped.
		if r.expired(e, now) && !e.session.InFlight() {
			delete(r.sessions, id)
		}
	}
}

func (r *Registry) expired(e *registryEntry, now time.Time) bool {
	return r.ttl > 0 && now.Sub(e.lastSeen) > r.ttl
}
