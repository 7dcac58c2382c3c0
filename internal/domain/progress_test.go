package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completed(id string, at time.Time, exID string, weight float64, reps int) *Session {
	return &Session{
		ID:          id,
		Status:      SessionCompleted,
		CompletedAt: &at,
		Exercises: []ExerciseEntry{{
			ID:                 id + "-e",
			TemplateExerciseID: exID,
			Sets:               []SetEntry{{Kind: SetTopSet, Weight: &weight, Reps: &reps}},
		}},
	}
}

func TestEstimateOneRepMax(t *testing.T) {
	assert.InDelta(t, 103.3333, EstimateOneRepMax(100, 1), 1e-3)
	assert.InDelta(t, 116.6666, EstimateOneRepMax(100, 5), 1e-3)
	assert.Equal(t, 0.0, EstimateOneRepMax(0, 5))
}

func TestBuildProgress_OldestFirst(t *testing.T) {
	history := []*Session{
		completed("c", testNow, "sq", 110, 5),
		completed("b", testNow.AddDate(0, 0, -7), "sq", 105, 5),
		completed("a", testNow.AddDate(0, 0, -14), "sq", 100, 5),
		completed("x", testNow, "bench", 80, 5),
	}

	points := BuildProgress(history, "sq")

	require.Len(t, points, 3)
	assert.Equal(t, "a", points[0].SessionID)
	assert.Equal(t, "c", points[2].SessionID)

	cmp, ok := CompareLast(points)
	require.True(t, ok)
	assert.Equal(t, 5.0, cmp.WeightDiff)
	assert.Equal(t, 0, cmp.RepsDiff)
	assert.False(t, DetectPlateau(points))
}

func TestDetectPlateau(t *testing.T) {
	points := []ProgressPoint{{E1RM: 100}, {E1RM: 101}, {E1RM: 100.4}}
	assert.True(t, DetectPlateau(points))

	points[2].E1RM = 101
	assert.False(t, DetectPlateau(points))

	assert.False(t, DetectPlateau(points[:2]))
}

func TestBuildProgress_MatchesLibraryID(t *testing.T) {
	s := completed("a", testNow, "d1_2", 60, 8)
	s.Exercises[0].LibraryID = "chest_6"
	points := BuildProgress([]*Session{s}, "chest_6")
	assert.Len(t, points, 1)
}
