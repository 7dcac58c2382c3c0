package service

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/alexanderramin/liftlog/internal/db"
	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/repository"
	"github.com/alexanderramin/liftlog/internal/testutil"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)

const testUser = "u1"

// stubPrograms serves a fixed set of programs.
type stubPrograms map[string]*domain.ProgramTemplate

func (s stubPrograms) Program(_ context.Context, id string) (*domain.ProgramTemplate, error) {
	p, ok := s[id]
	if !ok {
		return nil, fmt.Errorf("program %q: %w", id, repository.ErrNotFound)
	}
	c := p.Clone()
	return &c, nil
}

// twoExerciseProgram has one exercise with rampUp=2, top set, backOff=1 and a
// second with only a top set.
func twoExerciseProgram() *domain.ProgramTemplate {
	p := testutil.NewTestProgram("Upper")
	p.ID = "upper"
	return p
}

type storeFixture struct {
	db      *sql.DB
	repo    *repository.KVSessionRepo
	clock   *testutil.FakeClock
	program *domain.ProgramTemplate
	store   SessionStore
}

func newStoreFixture(t *testing.T) *storeFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	f := &storeFixture{
		db:      database,
		repo:    repository.NewKVSessionRepo(repository.NewSQLiteKVStore(database)),
		clock:   testutil.NewFakeClock(testNow),
		program: twoExerciseProgram(),
	}
	f.store = f.open(t, testutil.NewTestUoW(database))
	return f
}

// open builds a fresh store over the same database, as a new process would.
func (f *storeFixture) open(t *testing.T, uow db.UnitOfWork) SessionStore {
	t.Helper()
	store, err := NewSessionStore(context.Background(), testUser, f.repo, uow,
		stubPrograms{f.program.ID: f.program},
		WithClock(f.clock.Now),
		WithIDGenerator(testutil.SeqIDs("id")),
	)
	require.NoError(t, err)
	return store
}

func (f *storeFixture) start(t *testing.T) *domain.Session {
	t.Helper()
	draft, started, err := f.store.StartSession(context.Background(), f.program.ID)
	require.NoError(t, err)
	require.True(t, started)
	return draft
}

// commitWith logs one top set on the first exercise and commits.
func (f *storeFixture) commitWith(t *testing.T, weight, reps string) *domain.Session {
	t.Helper()
	ctx := context.Background()
	draft := f.start(t)
	ex := draft.Exercises[0]
	top := ex.Sets[2]
	_, err := f.store.UpdateSetField(ctx, ex.ID, top.ID, domain.FieldWeight, weight)
	require.NoError(t, err)
	_, err = f.store.UpdateSetField(ctx, ex.ID, top.ID, domain.FieldReps, reps)
	require.NoError(t, err)
	done, err := f.store.SaveSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, done)
	f.clock.Advance(24 * time.Hour)
	return done
}

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func (r *recordingObserver) names() []string {
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Name
	}
	return out
}
