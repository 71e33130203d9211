//go:build js && wasm

package browser

import (
	"context"
	"syscall/js"
	"time"

	"checkout-persistence/internal/core/ports"
)

// CookieStore implements ports.CookieStore on document.cookie. Values are
// percent-encoded so jquery.cookie readers see the same strings.
type CookieStore struct {
	doc  js.Value
	path string
	now  func() time.Time
}

// NewCookieStore returns a store writing cookies under path ("/" when empty).
func NewCookieStore(path string) *CookieStore {
	if path == "" {
		path = "/"
	}
	return &CookieStore{doc: js.Global().Get("document"), path: path, now: time.Now}
}

var _ ports.CookieStore = (*CookieStore)(nil)

// Get reads name from document.cookie. The browser drops expired cookies.
func (s *CookieStore) Get(_ context.Context, name string) (value string, ok bool, err error) {
	defer recoverJS(&err)
	value, ok = lookupCookie(s.doc.Get("cookie").String(), name)
	return value, ok, nil
}

// Set writes name. A zero expiresAt writes a session cookie; a past one
// deletes the cookie.
func (s *CookieStore) Set(_ context.Context, name string, value string, expiresAt time.Time) (err error) {
	defer recoverJS(&err)
	s.doc.Set("cookie", formatCookie(name, value, s.path, expiresAt, s.now()))
	return nil
}
