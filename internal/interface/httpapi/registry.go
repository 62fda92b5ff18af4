package httpapi

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/YoshitsuguKoike/propbrief/internal/domain/wizard"
)

// entry holds one wizard session with its activity timestamps
type entry struct {
	session      *wizard.Session
	createdAt    time.Time
	lastActiveAt time.Time
}

// Registry handles wizard session creation, lookup, and cleanup.
type Registry struct {
	mu          sync.RWMutex
	sessions    map[uuid.UUID]*entry
	maxAge      time.Duration
	idleTimeout time.Duration
	now         func() time.Time
}

// NewRegistry creates a registry with the given timeouts. A zero timeout disables that check.
func NewRegistry(maxAge, idleTimeout time.Duration) *Registry {
	return &Registry{
		sessions:    make(map[uuid.UUID]*entry),
		maxAge:      maxAge,
		idleTimeout: idleTimeout,
		now:         time.Now,
	}
}

// Create starts a session and returns its id.
func (r *Registry) Create(c *wizard.Catalog, seed wizard.Seed) (uuid.UUID, *wizard.Session) {
	id := uuid.New()
	now := r.now()
	sess := wizard.NewSession(c, seed)
	r.mu.Lock()
	r.sessions[id] = &entry{session: sess, createdAt: now, lastActiveAt: now}
	r.mu.Unlock()
	return id, sess
}

// Get retrieves a session by ID and marks it active. Expired sessions are removed.
func (r *Registry) Get(id uuid.UUID) (*wizard.Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	now := r.now()
	if r.expired(e, now) && !e.session.Submitting() {
		delete(r.sessions, id)
		return nil, false
	}
	e.lastActiveAt = now
	return e.session, true
}

// Remove deletes a session. It reports whether the session existed.
func (r *Registry) Remove(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.sessions[id]
	delete(r.sessions, id)
	return ok
}

// Len returns the number of live sessions
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Cleanup removes all expired and idle sessions that are not submitting.
func (r *Registry) Cleanup() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	removed := 0
	for id, e := range r.sessions {
		if r.expired(e, now) && !e.session.Submitting() {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Run calls Cleanup every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Cleanup()
		}
	}
}

func (r *Registry) expired(e *entry, now time.Time) bool {
	if r.maxAge > 0 && now.Sub(e.createdAt) > r.maxAge {
		return true
	}
	return r.idleTimeout > 0 && now.Sub(e.lastActiveAt) > r.idleTimeout
}
