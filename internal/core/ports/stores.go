package ports

//go:generate mockgen -source=stores.go -destination=mocks/mock_stores.go -package=mocks

import (
	"context"
	"time"

	"checkout-persistence/internal/core/domain"
)

// DurableStore is key-value storage that survives reloads and restarts
// until cleared externally. Values are plain text.
type DurableStore interface {
	// Get returns the stored text and true, or "", false when the key is absent.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set overwrites the value under key.
	Set(ctx context.Context, key string, value string) error
}

// CookieStore is key-value storage with a per-entry expiry.
// An expired entry is indistinguishable from one never set.
type CookieStore interface {
	// Get returns the stored text and true, or "", false when absent or expired.
	Get(ctx context.Context, name string) (string, bool, error)
	// Set overwrites the value under name. A zero expiresAt makes it a
	// session cookie; an expiresAt in the past expires it immediately.
	Set(ctx context.Context, name string, value string, expiresAt time.Time) error
}

// DurableStoreFactory binds a shared durable backend to one browser session.
type DurableStoreFactory interface {
	ForSession(sessionID string) DurableStore
}

// CookieStoreFactory binds a shared expiring backend to one browser session.
type CookieStoreFactory interface {
	ForSession(sessionID string) CookieStore
}

// CartRefresher recomputes whatever depends on the cart contents after
// an update, e.g. the wallet checkout button.
type CartRefresher interface {
	Refresh(ctx context.Context, cart domain.Cart) error
}
