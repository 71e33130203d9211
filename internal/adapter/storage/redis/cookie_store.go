package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"checkout-persistence/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// CookieStore is an expiring store on Redis key TTLs, for deployments where
// cookie values must not travel to the browser.
type CookieStore struct {
	client     *goredis.Client
	sessionTTL time.Duration
	now        func() time.Time
}

// NewCookieStore creates a Redis-backed cookie store factory. sessionTTL
// bounds entries written without an expiry; zero keeps them indefinitely.
func NewCookieStore(client *goredis.Client, sessionTTL time.Duration) *CookieStore {
	return &CookieStore{client: client, sessionTTL: sessionTTL, now: time.Now}
}

// ForSession returns the cookie store of one session.
func (s *CookieStore) ForSession(sessionID string) ports.CookieStore {
	return &cookieSession{store: s, sessionID: sessionID}
}

type cookieSession struct {
	store     *CookieStore
	sessionID string
}

func (c *cookieSession) Get(ctx context.Context, name string) (string, bool, error) {
	val, err := c.store.client.Get(ctx, sessionKey("cookie", c.sessionID, name)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis cookie get %s: %w", name, err)
	}
	return val, true, nil
}

func (c *cookieSession) Set(ctx context.Context, name string, value string, expiresAt time.Time) error {
	key := sessionKey("cookie", c.sessionID, name)

	ttl := c.store.sessionTTL
	if !expiresAt.IsZero() {
		ttl = expiresAt.Sub(c.store.now())
		if ttl <= 0 {
			// Already expired: drop any previous value.
			if err := c.store.client.Del(ctx, key).Err(); err != nil {
				return fmt.Errorf("redis cookie expire %s: %w", name, err)
			}
			return nil
		}
	}

	if err := c.store.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis cookie set %s: %w", name, err)
	}
	return nil
}
