package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/repository"
	"github.com/alexanderramin/liftlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWeightFixture(t *testing.T) (WeightService, *testutil.FakeClock) {
	t.Helper()
	clock := testutil.NewFakeClock(testNow)
	repo := repository.NewKVWeightRepo(repository.NewSQLiteKVStore(testutil.NewTestDB(t)))
	return NewWeightService(testUser, repo, WithClock(clock.Now)), clock
}

func TestSaveWeight_UpsertKeepsCreatedAt(t *testing.T) {
	svc, clock := newWeightFixture(t)
	ctx := context.Background()

	first, err := svc.SaveWeight(ctx, 82.0, "2024-01-01", "")
	require.NoError(t, err)
	clock.Advance(2 * time.Hour)
	second, err := svc.SaveWeight(ctx, 83.0, "2024-01-01", "after lunch")
	require.NoError(t, err)

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 83.0, entries[0].Weight)
	assert.Equal(t, "after lunch", entries[0].Note)
	assert.True(t, entries[0].CreatedAt.Equal(first.CreatedAt))
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
}

func TestSaveWeight_Validation(t *testing.T) {
	svc, _ := newWeightFixture(t)
	ctx := context.Background()

	_, err := svc.SaveWeight(ctx, 0, "2024-01-01", "")
	assert.ErrorIs(t, err, ErrInvalidWeight)
	_, err = svc.SaveWeight(ctx, -80, "2024-01-01", "")
	assert.ErrorIs(t, err, ErrInvalidWeight)
	_, err = svc.SaveWeight(ctx, 80, "2024-02-30", "")
	assert.ErrorIs(t, err, ErrInvalidDate)
	_, err = svc.SaveWeight(ctx, 80, "yesterday", "")
	assert.ErrorIs(t, err, ErrInvalidDate)

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDeleteWeight(t *testing.T) {
	svc, _ := newWeightFixture(t)
	ctx := context.Background()
	_, err := svc.SaveWeight(ctx, 80, "2024-01-01", "")
	require.NoError(t, err)

	deleted, err := svc.DeleteWeight(ctx, "2024-01-01")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.DeleteWeight(ctx, "2024-01-01")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestWeightStats_TenEntries(t *testing.T) {
	svc, _ := newWeightFixture(t)
	ctx := context.Background()
	weights := []float64{70, 70, 70, 80, 80, 80, 80, 80, 80, 80}
	for i, w := range weights {
		date := testNow.AddDate(0, 0, i).Format(domain.DateLayout)
		_, err := svc.SaveWeight(ctx, w, date, "")
		require.NoError(t, err)
	}

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, stats.Count)
	assert.Equal(t, 80.0, stats.Current)
	assert.InDelta(t, 80.0, stats.Avg7d, 1e-9)
	assert.InDelta(t, 10.0, stats.Diff7d, 1e-9)
}

func TestWeightStats_FewerThanSeven(t *testing.T) {
	svc, _ := newWeightFixture(t)
	ctx := context.Background()
	for i, w := range []float64{90, 85, 80} {
		_, err := svc.SaveWeight(ctx, w, testNow.AddDate(0, 0, i).Format(domain.DateLayout), "")
		require.NoError(t, err)
	}
	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, stats.Diff7d)
	assert.InDelta(t, 85.0, stats.Avg7d, 1e-9)
}

func TestListMonth(t *testing.T) {
	svc, _ := newWeightFixture(t)
	ctx := context.Background()
	for _, d := range []string{"2024-01-31", "2024-02-01", "2024-02-15", "2024-03-01"} {
		_, err := svc.SaveWeight(ctx, 80, d, "")
		require.NoError(t, err)
	}

	feb, err := svc.ListMonth(ctx, 2024, time.February)
	require.NoError(t, err)
	require.Len(t, feb, 2)
	assert.Equal(t, "2024-02-15", feb[0].Date, "newest first")
}

func TestWeightService_NoUser(t *testing.T) {
	repo := repository.NewKVWeightRepo(repository.NewSQLiteKVStore(testutil.NewTestDB(t)))
	svc := NewWeightService("", repo)
	_, err := svc.SaveWeight(context.Background(), 80, "2024-01-01", "")
	assert.ErrorIs(t, err, ErrNoActiveUser)
}
