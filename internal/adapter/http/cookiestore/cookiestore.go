// Package cookiestore implements ports.CookieStore with real HTTP cookies
// on a gin request/response pair.
package cookiestore

import (
	"context"
	"math"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"checkout-persistence/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Attributes are the cookie attributes applied to every Set-Cookie.
type Attributes struct {
	Domain   string
	Path     string
	Secure   bool
	HTTPOnly bool
	SameSite http.SameSite
}

// ParseSameSite maps lax, strict and none to http.SameSite. Anything else is lax.
func ParseSameSite(mode string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

type written struct {
	value     string
	expiresAt time.Time
}

// Store reads cookies from the request and writes them to the response.
// Writes are remembered so a later Get within the same request sees them.
type Store struct {
	c      *gin.Context
	attrs  Attributes
	sealer ports.ValueSealer
	log    zerolog.Logger
	now    func() time.Time

	mu      sync.Mutex
	written map[string]written
}

// New binds a store to the current request. sealer may be nil, in which
// case values are only URL-escaped.
func New(c *gin.Context, attrs Attributes, sealer ports.ValueSealer, log zerolog.Logger) *Store {
	if attrs.Path == "" {
		attrs.Path = "/"
	}
	return &Store{
		c:       c,
		attrs:   attrs,
		sealer:  sealer,
		log:     log,
		now:     time.Now,
		written: make(map[string]written),
	}
}

// Provider returns a constructor suitable for per-request wiring. The session
// ID is not needed because the browser scopes the cookies.
func Provider(attrs Attributes, sealer ports.ValueSealer, log zerolog.Logger) func(c *gin.Context, sessionID string) ports.CookieStore {
	return func(c *gin.Context, _ string) ports.CookieStore {
		return New(c, attrs, sealer, log)
	}
}

func (s *Store) Get(_ context.Context, name string) (string, bool, error) {
	s.mu.Lock()
	w, ok := s.written[name]
	s.mu.Unlock()
	if ok {
		if !w.expiresAt.IsZero() && !s.now().Before(w.expiresAt) {
			return "", false, nil
		}
		return w.value, true, nil
	}

	cookie, err := s.c.Request.Cookie(name)
	if err != nil {
		return "", false, nil
	}
	return s.decode(name, cookie.Value)
}

func (s *Store) Set(_ context.Context, name string, value string, expiresAt time.Time) error {
	encoded, err := s.encode(name, value)
	if err != nil {
		return err
	}

	cookie := &http.Cookie{
		Name:     name,
		Value:    encoded,
		Path:     s.attrs.Path,
		Domain:   s.attrs.Domain,
		Secure:   s.attrs.Secure,
		HttpOnly: s.attrs.HTTPOnly,
		SameSite: s.attrs.SameSite,
	}

	now := s.now()
	switch {
	case expiresAt.IsZero():
		// session cookie
	case !now.Before(expiresAt):
		cookie.Value = ""
		cookie.MaxAge = -1
	default:
		cookie.Expires = expiresAt.UTC()
		cookie.MaxAge = int(math.Ceil(expiresAt.Sub(now).Seconds()))
	}
	http.SetCookie(s.c.Writer, cookie)

	s.mu.Lock()
	s.written[name] = written{value: value, expiresAt: expiresAt}
	s.mu.Unlock()
	return nil
}

func (s *Store) encode(name, value string) (string, error) {
	if s.sealer == nil {
		return url.PathEscape(value), nil
	}
	return s.sealer.Seal(name, value)
}

// decode treats cookies that fail to open as absent; they were tampered
// with or sealed under a rotated key.
func (s *Store) decode(name, raw string) (string, bool, error) {
	if s.sealer == nil {
		value, err := url.PathUnescape(raw)
		if err != nil {
			return raw, true, nil
		}
		return value, true, nil
	}

	value, err := s.sealer.Open(name, raw)
	if err != nil {
		s.log.Warn().Err(err).Str("cookie", name).Msg("discarding unreadable cookie")
		return "", false, nil
	}
	return value, true, nil
}
