package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/liftlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey_String(t *testing.T) {
	assert.Equal(t, "liftlog_sessions_u1", UserKey(EntityHistory, "u1").String())
	assert.Equal(t, "liftlog_custom_programs_u1", UserKey(EntityCustomPrograms, "u1").String())
	assert.Equal(t, "liftlog_current_user", GlobalKey(EntityCurrentUser).String())
}

func TestKVStore_GetMissing(t *testing.T) {
	kv := NewSQLiteKVStore(testutil.NewTestDB(t))

	v, found, err := kv.Get(context.Background(), UserKey(EntityDraft, "u1"))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, v)
}

func TestKVStore_SetOverwrites(t *testing.T) {
	kv := NewSQLiteKVStore(testutil.NewTestDB(t))
	ctx := context.Background()
	key := UserKey(EntityAdvancedMode, "u1")

	require.NoError(t, kv.Set(ctx, key, "false"))
	require.NoError(t, kv.Set(ctx, key, "true"))

	v, found, err := kv.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "true", v)
}

func TestKVStore_Remove(t *testing.T) {
	kv := NewSQLiteKVStore(testutil.NewTestDB(t))
	ctx := context.Background()
	key := UserKey(EntityDraft, "u1")

	require.NoError(t, kv.Set(ctx, key, "{}"))
	require.NoError(t, kv.Remove(ctx, key))
	require.NoError(t, kv.Remove(ctx, key), "removing twice is fine")

	_, found, err := kv.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestKVStore_RemoveUserKeepsOthers(t *testing.T) {
	kv := NewSQLiteKVStore(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, UserKey(EntityHistory, "u1"), "[]"))
	require.NoError(t, kv.Set(ctx, UserKey(EntityWeightLog, "u1"), "{}"))
	require.NoError(t, kv.Set(ctx, UserKey(EntityHistory, "u2"), "[]"))
	require.NoError(t, kv.Set(ctx, GlobalKey(EntityCurrentUser), "u1"))

	n, err := kv.RemoveUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	_, found, _ := kv.Get(ctx, UserKey(EntityHistory, "u2"))
	assert.True(t, found)
	_, found, _ = kv.Get(ctx, GlobalKey(EntityCurrentUser))
	assert.True(t, found, "global records are not scoped to a user")

	n, err = kv.RemoveUser(ctx, "")
	require.NoError(t, err)
	assert.Zero(t, n)
}
