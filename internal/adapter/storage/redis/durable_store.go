package redis

import (
	"context"
	"errors"
	"fmt"

	"checkout-persistence/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// DurableStore keeps durable session values in Redis without a TTL.
// Redis must run with persistence enabled for values to survive restarts.
type DurableStore struct {
	client *goredis.Client
}

// NewDurableStore creates a Redis-backed durable store factory.
func NewDurableStore(client *goredis.Client) *DurableStore {
	return &DurableStore{client: client}
}

// ForSession returns the durable store of one session.
func (s *DurableStore) ForSession(sessionID string) ports.DurableStore {
	return &durableSession{client: s.client, sessionID: sessionID}
}

type durableSession struct {
	client    *goredis.Client
	sessionID string
}

func (s *durableSession) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, sessionKey("durable", s.sessionID, key)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis durable get %s: %w", key, err)
	}
	return val, true, nil
}

func (s *durableSession) Set(ctx context.Context, key string, value string) error {
	if err := s.client.Set(ctx, sessionKey("durable", s.sessionID, key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis durable set %s: %w", key, err)
	}
	return nil
}
