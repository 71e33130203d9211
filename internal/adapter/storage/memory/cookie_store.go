package memory

import (
	"context"
	"sync"
	"time"

	"checkout-persistence/internal/core/ports"
)

type sessionKey struct {
	session string
	key     string
}

type cookieEntry struct {
	value     string
	expiresAt time.Time // zero = session cookie
}

// CookieBackend is an expiring store that evaluates expiry against its clock.
type CookieBackend struct {
	mu      sync.Mutex
	now     func() time.Time
	entries map[sessionKey]cookieEntry
}

// NewCookieBackend creates an empty expiring backend. A nil clock uses time.Now.
func NewCookieBackend(now func() time.Time) *CookieBackend {
	if now == nil {
		now = time.Now
	}
	return &CookieBackend{now: now, entries: make(map[sessionKey]cookieEntry)}
}

// ForSession returns the cookie store of one session.
func (b *CookieBackend) ForSession(sessionID string) ports.CookieStore {
	return &cookieStore{backend: b, session: sessionID}
}

// ExpiresAt reports the expiry recorded for a live cookie.
func (b *CookieBackend) ExpiresAt(sessionID, name string) (time.Time, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	e, ok := b.lookup(sessionKey{sessionID, name})
	return e.expiresAt, ok
}

// lookup must be called with mu held. Expired entries are evicted.
func (b *CookieBackend) lookup(k sessionKey) (cookieEntry, bool) {
	e, ok := b.entries[k]
	if !ok {
		return cookieEntry{}, false
	}
	if !e.expiresAt.IsZero() && !b.now().Before(e.expiresAt) {
		delete(b.entries, k)
		return cookieEntry{}, false
	}
	return e, true
}

type cookieStore struct {
	backend *CookieBackend
	session string
}

func (s *cookieStore) Get(_ context.Context, name string) (string, bool, error) {
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()
	e, ok := s.backend.lookup(sessionKey{s.session, name})
	return e.value, ok, nil
}

func (s *cookieStore) Set(_ context.Context, name string, value string, expiresAt time.Time) error {
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()
	s.backend.entries[sessionKey{s.session, name}] = cookieEntry{value: value, expiresAt: expiresAt}
	return nil
}
