package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/liftlog/internal/domain"
)

// resolveExercise finds an exercise in the session by:
//   - its 1-based position as printed by 'workout show'
//   - an exercise entry id or template exercise id
func resolveExercise(s *domain.Session, ref string) (*domain.ExerciseEntry, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(s.Exercises) {
			return nil, fmt.Errorf("exercise #%d out of range (1-%d)", n, len(s.Exercises))
		}
		return &s.Exercises[n-1], nil
	}
	if ex, ok := s.Exercise(ref); ok {
		return ex, nil
	}
	if ex, ok := s.ExerciseByTemplate(ref); ok {
		return ex, nil
	}
	return nil, fmt.Errorf("no exercise %q in this workout", ref)
}

// resolveSet finds a set by 1-based position or id.
func resolveSet(ex *domain.ExerciseEntry, ref string) (*domain.SetEntry, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(ex.Sets) {
			return nil, fmt.Errorf("set #%d out of range for %s (1-%d)", n, ex.Name, len(ex.Sets))
		}
		return &ex.Sets[n-1], nil
	}
	if i := ex.SetIndex(ref); i >= 0 {
		return &ex.Sets[i], nil
	}
	return nil, fmt.Errorf("no set %q in %s", ref, ex.Name)
}

// resolveHistorySession finds a completed session by 1-based position in
// 'history list' or by id.
func resolveHistorySession(history []*domain.Session, ref string) (*domain.Session, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(history) {
			return nil, fmt.Errorf("session #%d out of range (1-%d)", n, len(history))
		}
		return history[n-1], nil
	}
	for _, s := range history {
		if s.ID == ref {
			return s, nil
		}
	}
	return nil, fmt.Errorf("no session %q", ref)
}

// exerciseName returns the most recent display name logged for an exercise
// id, or the id itself.
func exerciseName(history []*domain.Session, exerciseID string) string {
	for _, s := range history {
		for i := range s.Exercises {
			if s.Exercises[i].Matches(exerciseID) {
				return s.Exercises[i].Name
			}
		}
	}
	return exerciseID
}
