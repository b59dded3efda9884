package session

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultMaxSessions caps a Registry built without WithMaxSessions.
const DefaultMaxSessions = 10000

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithRegistryClock replaces the clock used to track last use.
func WithRegistryClock(clock clockwork.Clock) RegistryOption {
	return func(r *Registry) {
		r.clock = clock
	}
}

// WithMaxSessions caps the number of live sessions. Creating a session beyond
// the cap closes the least recently used one. Non-positive values remove the cap.
func WithMaxSessions(n int) RegistryOption {
	return func(r *Registry) {
		r.maxSessions = n
	}
}

type registryEntry struct {
	session  *Session
	lastUsed time.Time
}

// Registry keeps one Session per presentation session id.
type Registry struct {
	mu          sync.Mutex
	entries     map[string]*registryEntry
	newSession  func() *Session
	clock       clockwork.Clock
	maxSessions int
}

// NewRegistry returns an empty registry that builds sessions with newSession.
func NewRegistry(newSession func() *Session, opts ...RegistryOption) *Registry {
	r := &Registry{
		entries:     make(map[string]*registryEntry),
		newSession:  newSession,
		clock:       clockwork.NewRealClock(),
		maxSessions: DefaultMaxSessions,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Get returns the session for id, creating it on first use.
func (r *Registry) Get(id string) *Session {
	r.mu.Lock()
	now := r.clock.Now()
	if e, ok := r.entries[id]; ok {
		e.lastUsed = now
		r.mu.Unlock()
		return e.session
	}

	var evicted *Session
	if r.maxSessions > 0 && len(r.entries) >= r.maxSessions {
		evicted = r.removeLeastRecentlyUsed()
	}
	s := r.newSession()
	r.entries[id] = &registryEntry{session: s, lastUsed: now}
	r.mu.Unlock()

	if evicted != nil {
		evicted.Close()
	}
	return s
}

// Lookup returns the session for id without creating one.
func (r *Registry) Lookup(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	e.lastUsed = r.clock.Now()
	return e.session, true
}

// Close tears the session down and forgets it. It reports whether id was known.
func (r *Registry) Close(id string) bool {
	r.mu.Lock()
	e, ok := r.entries[id]
	delete(r.entries, id)
	r.mu.Unlock()

	if ok {
		e.session.Close()
	}
	return ok
}

// EvictIdle closes every session unused for at least maxIdle and returns how
// many were closed. Sessions with a request in flight are kept.
func (r *Registry) EvictIdle(maxIdle time.Duration) int {
	r.mu.Lock()
	cutoff := r.clock.Now().Add(-maxIdle)
	idle := make([]*Session, 0)
	for id, e := range r.entries {
		if e.lastUsed.After(cutoff) || e.session.Snapshot().Submission.IsLoading() {
			continue
		}
		delete(r.entries, id)
		idle = append(idle, e.session)
	}
	r.mu.Unlock()

	for _, s := range idle {
		s.Close()
	}
	return len(idle)
}

// CloseAll closes every session.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	entries := r.entries
	r.entries = make(map[string]*registryEntry)
	r.mu.Unlock()

	for _, e := range entries {
		e.session.Close()
	}
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}

// removeLeastRecentlyUsed must be called with mu held.
func (r *Registry) removeLeastRecentlyUsed() *Session {
	var (
		oldestID string
		oldest   *registryEntry
	)
	for id, e := range r.entries {
		if oldest == nil || e.lastUsed.Before(oldest.lastUsed) {
			oldestID, oldest = id, e
		}
	}
	if oldest == nil {
		return nil
	}
	delete(r.entries, oldestID)
	return oldest.session
}
