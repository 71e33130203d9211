// Package browser backs the persistence facade with the browser's own
// localStorage and document.cookie when compiled to WebAssembly.
package browser

import (
	"net/http"
	"net/url"
	"strings"
	"time"
)

// formatCookie renders a document.cookie assignment.
func formatCookie(name, value, path string, expiresAt, now time.Time) string {
	var b strings.Builder
	b.WriteString(url.PathEscape(name))
	b.WriteByte('=')
	switch {
	case expiresAt.IsZero():
		b.WriteString(url.PathEscape(value))
	case !now.Before(expiresAt):
		b.WriteString("; max-age=0")
	default:
		b.WriteString(url.PathEscape(value))
		b.WriteString("; expires=")
		b.WriteString(expiresAt.UTC().Format(http.TimeFormat))
	}
	b.WriteString("; path=")
	b.WriteString(path)
	return b.String()
}

// lookupCookie finds name in a document.cookie string. A value that is not
// valid percent-encoding, e.g. one written by another script, is returned as
// is, the same as the HTTP cookie store does.
func lookupCookie(header, name string) (string, bool) {
	for _, part := range strings.Split(header, ";") {
		k, v, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		if key, err := url.PathUnescape(k); err != nil || key != name {
			continue
		}
		if decoded, err := url.PathUnescape(v); err == nil {
			return decoded, true
		}
		return v, true
	}
	return "", false
}
