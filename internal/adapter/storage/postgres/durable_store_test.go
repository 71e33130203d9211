package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (pgxmock.PgxPoolIface, *DurableStore, time.Time) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	store := NewDurableStore(mock)
	store.now = func() time.Time { return now }
	return mock, store, now
}

func TestDurableStore_Get(t *testing.T) {
	mock, store, _ := newMockStore(t)

	mock.ExpectQuery("SELECT value FROM durable_values WHERE session_id").
		WithArgs("sess-1", "transactionId").
		WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow("TX-42"))

	v, ok, err := store.ForSession("sess-1").Get(context.Background(), "transactionId")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "TX-42", v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDurableStore_Get_NotFound(t *testing.T) {
	mock, store, _ := newMockStore(t)

	mock.ExpectQuery("SELECT value FROM durable_values WHERE session_id").
		WithArgs("sess-1", "cartItem").
		WillReturnRows(pgxmock.NewRows([]string{"value"}))

	v, ok, err := store.ForSession("sess-1").Get(context.Background(), "cartItem")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDurableStore_Get_Error(t *testing.T) {
	mock, store, _ := newMockStore(t)

	mock.ExpectQuery("SELECT value FROM durable_values").
		WithArgs("sess-1", "cartItem").
		WillReturnError(errors.New("connection reset"))

	_, _, err := store.ForSession("sess-1").Get(context.Background(), "cartItem")
	assert.ErrorContains(t, err, "get durable value cartItem")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDurableStore_Set_Upserts(t *testing.T) {
	mock, store, now := newMockStore(t)

	mock.ExpectExec("INSERT INTO durable_values .+ ON CONFLICT \\(session_id, key\\) DO UPDATE").
		WithArgs("sess-1", "cartItem", `[{"id":"a"}]`, now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := store.ForSession("sess-1").Set(context.Background(), "cartItem", `[{"id":"a"}]`)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDurableStore_Set_Error(t *testing.T) {
	mock, store, now := newMockStore(t)

	mock.ExpectExec("INSERT INTO durable_values").
		WithArgs("sess-1", "email", "x", now).
		WillReturnError(errors.New("disk full"))

	err := store.ForSession("sess-1").Set(context.Background(), "email", "x")
	assert.ErrorContains(t, err, "upsert durable value email")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS durable_values").
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))

	assert.NoError(t, EnsureSchema(context.Background(), mock))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthCheck(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("SELECT 1").WillReturnResult(pgxmock.NewResult("SELECT", 1))

	hc := NewHealthCheck(mock)
	assert.NoError(t, hc.Ping(context.Background()))
	assert.Equal(t, "postgresql", hc.Name())
	assert.NoError(t, mock.ExpectationsWereMet())
}
