package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func kinds(sets []SetEntry) []SetKind {
	out := make([]SetKind, len(sets))
	for i, s := range sets {
		out[i] = s.Kind
	}
	return out
}

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func TestMaterializeSets_Order(t *testing.T) {
	ex := ExerciseTemplate{ID: "press", Name: "Press", DefaultRampUpSetCount: 2, HasTopSet: true, DefaultBackOffSetCount: 1}

	sets := ex.MaterializeSets(seqIDs())

	require.Len(t, sets, 4)
	assert.Equal(t, []SetKind{SetRampUp, SetRampUp, SetTopSet, SetBackOff}, kinds(sets))
	for _, s := range sets {
		assert.Nil(t, s.Weight)
		assert.Nil(t, s.Reps)
		assert.Nil(t, s.EffortReserve)
		assert.False(t, s.IsCompleted)
	}
}

func TestMaterializeSets_CountsMatchTemplate(t *testing.T) {
	cases := []struct {
		rampUp, backOff int
		top             bool
	}{
		{0, 0, false},
		{0, 3, false},
		{3, 0, true},
		{1, 2, true},
		{4, 4, false},
	}
	for _, tc := range cases {
		ex := ExerciseTemplate{DefaultRampUpSetCount: tc.rampUp, HasTopSet: tc.top, DefaultBackOffSetCount: tc.backOff}
		sets := ex.MaterializeSets(seqIDs())

		var want []SetKind
		for range tc.rampUp {
			want = append(want, SetRampUp)
		}
		if tc.top {
			want = append(want, SetTopSet)
		}
		for range tc.backOff {
			want = append(want, SetBackOff)
		}
		assert.Equal(t, want, append([]SetKind(nil), kinds(sets)...), "rampUp=%d top=%v backOff=%d", tc.rampUp, tc.top, tc.backOff)
	}
}

func TestMaterializeSets_UniqueIDs(t *testing.T) {
	ex := ExerciseTemplate{DefaultRampUpSetCount: 3, HasTopSet: true, DefaultBackOffSetCount: 3}
	sets := ex.MaterializeSets(seqIDs())
	seen := map[string]bool{}
	for _, s := range sets {
		assert.False(t, seen[s.ID], "duplicate id %s", s.ID)
		seen[s.ID] = true
	}
}

func TestInsertSet_KeepsPhaseOrder(t *testing.T) {
	ex := ExerciseEntry{Sets: []SetEntry{
		NewSetEntry("r1", SetRampUp),
		NewSetEntry("t", SetTopSet),
		NewSetEntry("b1", SetBackOff),
	}}

	ex.InsertSet(NewSetEntry("r2", SetRampUp))
	ex.InsertSet(NewSetEntry("b2", SetBackOff))

	ids := make([]string, len(ex.Sets))
	for i, s := range ex.Sets {
		ids[i] = s.ID
	}
	assert.Equal(t, []string{"r1", "r2", "t", "b1", "b2"}, ids)
}

func TestInsertSet_RampUpWithoutTopSet(t *testing.T) {
	ex := ExerciseEntry{Sets: []SetEntry{NewSetEntry("b1", SetBackOff)}}
	ex.InsertSet(NewSetEntry("r1", SetRampUp))
	assert.Equal(t, []SetKind{SetRampUp, SetBackOff}, kinds(ex.Sets))
}

func TestInsertSet_IntoEmptyExercise(t *testing.T) {
	ex := ExerciseEntry{}
	ex.InsertSet(NewSetEntry("b1", SetBackOff))
	ex.InsertSet(NewSetEntry("t", SetTopSet))
	ex.InsertSet(NewSetEntry("r1", SetRampUp))
	assert.Equal(t, []SetKind{SetRampUp, SetTopSet, SetBackOff}, kinds(ex.Sets))
}

func TestRemoveSet_AllowsEmptyExercise(t *testing.T) {
	ex := ExerciseEntry{Sets: []SetEntry{NewSetEntry("a", SetTopSet)}}
	assert.True(t, ex.RemoveSet("a"))
	assert.Empty(t, ex.Sets)
	assert.False(t, ex.RemoveSet("a"))
}

func TestSessionSetField_StampsTimestamps(t *testing.T) {
	s := &Session{Exercises: []ExerciseEntry{{ID: "e1", Sets: []SetEntry{NewSetEntry("s1", SetTopSet)}}}}

	require.True(t, s.SetField("e1", "s1", FieldWeight, "80", testNow))
	later := testNow.Add(time.Minute)
	require.True(t, s.SetField("e1", "s1", FieldReps, "5", later))

	ex := s.Exercises[0]
	require.NotNil(t, ex.StartedAt)
	require.NotNil(t, ex.FinishedAt)
	assert.Equal(t, testNow, *ex.StartedAt, "first write stamps start")
	assert.Equal(t, later, *ex.FinishedAt, "every write stamps finish")
	assert.Equal(t, 80.0, *ex.Sets[0].Weight)
	assert.Equal(t, 5, *ex.Sets[0].Reps)
}

func TestSessionSetField_UnknownIDs(t *testing.T) {
	s := &Session{Exercises: []ExerciseEntry{{ID: "e1", Sets: []SetEntry{NewSetEntry("s1", SetTopSet)}}}}
	assert.False(t, s.SetField("nope", "s1", FieldWeight, "80", testNow))
	assert.False(t, s.SetField("e1", "nope", FieldWeight, "80", testNow))
	assert.Nil(t, s.Exercises[0].StartedAt)
}

func TestSessionSetField_UnknownFieldChangesNothing(t *testing.T) {
	s := &Session{Exercises: []ExerciseEntry{{ID: "e1", Sets: []SetEntry{NewSetEntry("s1", SetTopSet)}}}}
	assert.False(t, s.SetField("e1", "s1", SetField("tempo"), "80", testNow))
	assert.Nil(t, s.Exercises[0].StartedAt)
	assert.Nil(t, s.Exercises[0].FinishedAt)
	assert.Nil(t, s.Exercises[0].Sets[0].Weight)
}

func TestComplete_KeepsOnlyLoggedSets(t *testing.T) {
	draft := &Session{
		ID:     "s",
		Status: SessionDraft,
		Exercises: []ExerciseEntry{{
			ID: "e1",
			Sets: []SetEntry{
				{ID: "r1", Kind: SetRampUp},
				{ID: "r2", Kind: SetRampUp, Weight: fptr(40)},
				{ID: "t", Kind: SetTopSet, Weight: fptr(80), Reps: iptr(5)},
				{ID: "b1", Kind: SetBackOff, Weight: fptr(0), Reps: iptr(8)},
				{ID: "b2", Kind: SetBackOff, Weight: fptr(60), Reps: iptr(0)},
			},
		}},
	}

	done := draft.Complete(testNow)

	assert.Equal(t, SessionCompleted, done.Status)
	require.NotNil(t, done.CompletedAt)
	assert.Equal(t, testNow, *done.CompletedAt)
	require.Len(t, done.Exercises, 1)
	require.Len(t, done.Exercises[0].Sets, 1)
	assert.Equal(t, "t", done.Exercises[0].Sets[0].ID)
	assert.Equal(t, 80.0, *done.Exercises[0].Sets[0].Weight)
	assert.Equal(t, 5, *done.Exercises[0].Sets[0].Reps)

	assert.Len(t, draft.Exercises[0].Sets, 5, "draft must not be mutated")
	assert.Equal(t, SessionDraft, draft.Status)
}

func TestComplete_SetupNoteKeepsEmptyExercise(t *testing.T) {
	draft := &Session{Exercises: []ExerciseEntry{
		{ID: "noted", SetupNote: "seat 4", Sets: []SetEntry{{ID: "a", Kind: SetTopSet}}},
		{ID: "blank", SetupNote: "   ", Sets: []SetEntry{{ID: "b", Kind: SetTopSet}}},
		{ID: "bare", Sets: []SetEntry{{ID: "c", Kind: SetBackOff}}},
	}}

	done := draft.Complete(testNow)

	require.Len(t, done.Exercises, 1)
	assert.Equal(t, "noted", done.Exercises[0].ID)
	assert.Empty(t, done.Exercises[0].Sets)
	assert.Equal(t, "seat 4", done.Exercises[0].SetupNote)
}

func TestClone_IsDeep(t *testing.T) {
	orig := &Session{Exercises: []ExerciseEntry{{ID: "e", Sets: []SetEntry{{ID: "s", Weight: fptr(10)}}}}}
	c := orig.Clone()
	*c.Exercises[0].Sets[0].Weight = 99
	c.Exercises[0].Sets = append(c.Exercises[0].Sets, SetEntry{ID: "x"})
	assert.Equal(t, 10.0, *orig.Exercises[0].Sets[0].Weight)
	assert.Len(t, orig.Exercises[0].Sets, 1)
}

func TestTopPerformance_FallsBackToHeaviest(t *testing.T) {
	ex := ExerciseEntry{Sets: []SetEntry{
		{Kind: SetBackOff, Weight: fptr(50), Reps: iptr(10)},
		{Kind: SetBackOff, Weight: fptr(60), Reps: iptr(8)},
		{Kind: SetBackOff, Weight: fptr(70)},
	}}
	set, ok := ex.TopPerformance()
	require.True(t, ok)
	assert.Equal(t, 60.0, set.WeightValue())

	ex.Sets = append(ex.Sets, SetEntry{Kind: SetTopSet, Weight: fptr(55), Reps: iptr(6)})
	set, ok = ex.TopPerformance()
	require.True(t, ok)
	assert.Equal(t, SetTopSet, set.Kind)
}

func TestParseSetKind(t *testing.T) {
	for in, want := range map[string]SetKind{
		"ramp-up": SetRampUp, "RAMP_UP": SetRampUp, "warmup": SetRampUp,
		"top": SetTopSet, "top_set": SetTopSet,
		"backoff": SetBackOff, "Back-Off": SetBackOff,
	} {
		got, err := ParseSetKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseSetKind("drop")
	assert.Error(t, err)
}
