package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/liftlog/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

func putKV(ctx context.Context, tx db.DBTX, key, user string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO kv (key, user_id, value, updated_at) VALUES (?, ?, '[]', '2024-01-01T00:00:00Z')`,
		key, user)
	return err
}

// kvExists reads through a fresh transaction so it observes committed state only.
func kvExists(t *testing.T, uow *db.SQLiteUnitOfWork, key string) bool {
	t.Helper()
	var n int
	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM kv WHERE key = ?`, key).Scan(&n)
	})
	require.NoError(t, err)
	return n > 0
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := putKV(ctx, tx, "liftlog_sessions_u1", "u1"); err != nil {
			return err
		}
		return putKV(ctx, tx, "liftlog_weight_u1", "u1")
	})
	require.NoError(t, err)

	assert.True(t, kvExists(t, uow, "liftlog_sessions_u1"))
	assert.True(t, kvExists(t, uow, "liftlog_weight_u1"))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := putKV(ctx, tx, "liftlog_draft_u1", "u1"); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")

	assert.False(t, kvExists(t, uow, "liftlog_draft_u1"), "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = putKV(ctx, tx, "liftlog_adv_u1", "u1")
			panic("boom")
		})
	})

	assert.False(t, kvExists(t, uow, "liftlog_adv_u1"), "row should not exist after panic rollback")
}
