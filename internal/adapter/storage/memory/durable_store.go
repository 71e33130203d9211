// Package memory provides process-local substrates for development and tests.
// Values do not survive a restart.
package memory

import (
	"context"
	"sync"

	"checkout-persistence/internal/core/ports"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMaxSessions is how many sessions a DurableBackend keeps unless
// WithMaxSessions says otherwise.
const DefaultMaxSessions = 10000

type sessionValues struct {
	mu     sync.RWMutex
	values map[string]string
}

// DurableBackend holds durable values for the most recently used sessions.
// Once full, writing a new session evicts the least recently used one.
type DurableBackend struct {
	mu       sync.Mutex // serializes session creation
	sessions *lru.Cache[string, *sessionValues]
}

// DurableOption configures a DurableBackend.
type DurableOption func(*durableOptions)

type durableOptions struct {
	maxSessions int
}

// WithMaxSessions bounds the number of sessions kept. Non-positive values
// fall back to DefaultMaxSessions.
func WithMaxSessions(n int) DurableOption {
	return func(o *durableOptions) {
		if n > 0 {
			o.maxSessions = n
		}
	}
}

// NewDurableBackend creates an empty in-memory durable backend.
func NewDurableBackend(opts ...DurableOption) *DurableBackend {
	o := durableOptions{maxSessions: DefaultMaxSessions}
	for _, opt := range opts {
		opt(&o)
	}
	// lru.New only fails for a non-positive size.
	sessions, _ := lru.New[string, *sessionValues](o.maxSessions)
	return &DurableBackend{sessions: sessions}
}

// ForSession returns the durable store of one session.
func (b *DurableBackend) ForSession(sessionID string) ports.DurableStore {
	return &durableStore{backend: b, session: sessionID}
}

// Clear drops every value of a session, like a user clearing site data.
func (b *DurableBackend) Clear(sessionID string) {
	b.sessions.Remove(sessionID)
}

// Len returns the number of sessions currently held.
func (b *DurableBackend) Len() int {
	return b.sessions.Len()
}

func (b *DurableBackend) session(sessionID string) *sessionValues {
	b.mu.Lock()
	defer b.mu.Unlock()
	if sv, ok := b.sessions.Get(sessionID); ok {
		return sv
	}
	sv := &sessionValues{values: make(map[string]string)}
	b.sessions.Add(sessionID, sv)
	return sv
}

type durableStore struct {
	backend *DurableBackend
	session string
}

func (s *durableStore) Get(_ context.Context, key string) (string, bool, error) {
	sv, ok := s.backend.sessions.Get(s.session)
	if !ok {
		return "", false, nil
	}
	sv.mu.RLock()
	defer sv.mu.RUnlock()
	v, ok := sv.values[key]
	return v, ok, nil
}

func (s *durableStore) Set(_ context.Context, key string, value string) error {
	sv := s.backend.session(s.session)
	sv.mu.Lock()
	defer sv.mu.Unlock()
	sv.values[key] = value
	return nil
}
