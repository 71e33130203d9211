// Package sqlite keeps durable session values in a single SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"checkout-persistence/internal/core/ports"

	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS durable_values (
	session_id TEXT    NOT NULL,
	key        TEXT    NOT NULL,
	value      TEXT    NOT NULL,
	updated_at INTEGER NOT NULL,
	PRIMARY KEY (session_id, key)
)`

// DurableStore is a SQLite-backed durable store factory.
type DurableStore struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the database at path and its table.
func Open(ctx context.Context, path string) (*DurableStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating durable_values table: %w", err)
	}
	return &DurableStore{db: db, now: time.Now}, nil
}

// Close releases the database.
func (s *DurableStore) Close() error {
	return s.db.Close()
}

// ForSession returns the durable store of one session.
func (s *DurableStore) ForSession(sessionID string) ports.DurableStore {
	return &durableSession{store: s, sessionID: sessionID}
}

// Ping checks the database file is still usable.
func (s *DurableStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Name returns the dependency name.
func (s *DurableStore) Name() string {
	return "sqlite"
}

type durableSession struct {
	store     *DurableStore
	sessionID string
}

func (d *durableSession) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := d.store.db.QueryRowContext(ctx,
		`SELECT value FROM durable_values WHERE session_id = ? AND key = ?`,
		d.sessionID, key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get durable value %s: %w", key, err)
	}
	return value, true, nil
}

func (d *durableSession) Set(ctx context.Context, key string, value string) error {
	_, err := d.store.db.ExecContext(ctx,
		`INSERT INTO durable_values (session_id, key, value, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (session_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		d.sessionID, key, value, d.store.now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("upsert durable value %s: %w", key, err)
	}
	return nil
}
