package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"checkout-persistence/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// DurableStore keeps durable session values in the durable_values table.
type DurableStore struct {
	pool Pool
	now  func() time.Time
}

// NewDurableStore creates a PostgreSQL-backed durable store factory.
func NewDurableStore(pool Pool) *DurableStore {
	return &DurableStore{pool: pool, now: time.Now}
}

// ForSession returns the durable store of one session.
func (s *DurableStore) ForSession(sessionID string) ports.DurableStore {
	return &durableSession{store: s, sessionID: sessionID}
}

type durableSession struct {
	store     *DurableStore
	sessionID string
}

// Get fetches the value under key. Returns "", false, nil when there is no row.
func (d *durableSession) Get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM durable_values WHERE session_id = $1 AND key = $2`

	var value string
	err := d.store.pool.QueryRow(ctx, query, d.sessionID, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get durable value %s: %w", key, err)
	}
	return value, true, nil
}

// Set upserts the value under key.
func (d *durableSession) Set(ctx context.Context, key string, value string) error {
	query := `INSERT INTO durable_values (session_id, key, value, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (session_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

	_, err := d.store.pool.Exec(ctx, query, d.sessionID, key, value, d.store.now().UTC())
	if err != nil {
		return fmt.Errorf("upsert durable value %s: %w", key, err)
	}
	return nil
}
