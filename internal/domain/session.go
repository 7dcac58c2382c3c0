package domain

import (
	"strings"
	"time"
)

// SetEntry is one logged (or still empty) set. A nil numeric field means the
// user has not entered a value yet.
type SetEntry struct {
	ID            string   `json:"id"`
	Kind          SetKind  `json:"kind"`
	Weight        *float64 `json:"weight,omitempty"`
	Reps          *int     `json:"reps,omitempty"`
	EffortReserve *int     `json:"effort_reserve,omitempty"`
	IsCompleted   bool     `json:"is_completed"`
}

func NewSetEntry(id string, kind SetKind) SetEntry {
	return SetEntry{ID: id, Kind: kind}
}

// IsLogged reports whether the set carries a usable performance: a positive
// weight and a positive rep count.
func (s SetEntry) IsLogged() bool {
	return s.Weight != nil && *s.Weight > 0 && s.Reps != nil && *s.Reps > 0
}

// WeightValue returns the weight or 0 when empty.
func (s SetEntry) WeightValue() float64 {
	if s.Weight == nil {
		return 0
	}
	return *s.Weight
}

// RepsValue returns the reps or 0 when empty.
func (s SetEntry) RepsValue() int {
	if s.Reps == nil {
		return 0
	}
	return *s.Reps
}

// Clone returns a copy that shares no pointers with s.
func (s SetEntry) Clone() SetEntry {
	s.Weight = clonePtr(s.Weight)
	s.Reps = clonePtr(s.Reps)
	s.EffortReserve = clonePtr(s.EffortReserve)
	return s
}

// ApplyInput parses raw user input into the given field. Garbage input clears
// the field instead of failing, so the set always stays structurally valid.
// It reports false for an unknown field.
func (s *SetEntry) ApplyInput(field SetField, raw string) bool {
	switch field {
	case FieldWeight:
		s.Weight = ParseWeightInput(raw)
	case FieldReps:
		s.Reps = ParseCountInput(raw)
	case FieldEffortReserve:
		s.EffortReserve = ParseEffortInput(raw)
	default:
		return false
	}
	return true
}

type ExerciseEntry struct {
	ID                 string           `json:"id"`
	TemplateExerciseID string           `json:"template_exercise_id"`
	LibraryID          string           `json:"library_id,omitempty"`
	Name               string           `json:"name"`
	Sets               []SetEntry       `json:"sets"`
	SetupNote          string           `json:"setup_note,omitempty"`
	ContextualNotes    *ContextualNotes `json:"contextual_notes,omitempty"`
	StartedAt          *time.Time       `json:"started_at,omitempty"`
	FinishedAt         *time.Time       `json:"finished_at,omitempty"`
}

// HasSetupNote reports whether the entry carries a non-blank setup note.
func (e *ExerciseEntry) HasSetupNote() bool {
	return strings.TrimSpace(e.SetupNote) != ""
}

// SetIndex returns the index of the set with the given id, or -1.
func (e *ExerciseEntry) SetIndex(setID string) int {
	for i := range e.Sets {
		if e.Sets[i].ID == setID {
			return i
		}
	}
	return -1
}

// InsertSet places the set after the last existing set of the same or an
// earlier phase, which keeps the ramp-up/top/back-off ordering intact: a
// ramp-up lands before the top set, a back-off is appended.
func (e *ExerciseEntry) InsertSet(set SetEntry) {
	pos := 0
	for i, s := range e.Sets {
		if s.Kind.Rank() <= set.Kind.Rank() {
			pos = i + 1
		}
	}
	e.Sets = append(e.Sets, SetEntry{})
	copy(e.Sets[pos+1:], e.Sets[pos:])
	e.Sets[pos] = set
}

// RemoveSet deletes the set with the given id. There is no minimum set count.
func (e *ExerciseEntry) RemoveSet(setID string) bool {
	idx := e.SetIndex(setID)
	if idx < 0 {
		return false
	}
	e.Sets = append(e.Sets[:idx], e.Sets[idx+1:]...)
	return true
}

// LoggedSets returns the sets that would survive a commit.
func (e *ExerciseEntry) LoggedSets() []SetEntry {
	logged := make([]SetEntry, 0, len(e.Sets))
	for _, s := range e.Sets {
		if s.IsLogged() {
			logged = append(logged, s)
		}
	}
	return logged
}

// TopPerformance returns the logged top set, falling back to the heaviest
// logged set when the exercise has no top set.
func (e *ExerciseEntry) TopPerformance() (SetEntry, bool) {
	var best SetEntry
	found := false
	for _, s := range e.Sets {
		if !s.IsLogged() {
			continue
		}
		if s.Kind == SetTopSet {
			return s, true
		}
		if !found || s.WeightValue() > best.WeightValue() {
			best = s
			found = true
		}
	}
	return best, found
}

// touch stamps the soft instrumentation timestamps of an exercise.
func (e *ExerciseEntry) touch(now time.Time) {
	if e.StartedAt == nil {
		started := now
		e.StartedAt = &started
	}
	finished := now
	e.FinishedAt = &finished
}

// Session is either the single in-progress draft of a user or an immutable
// completed record in their history.
type Session struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	TemplateID   string          `json:"template_id"`
	TemplateName string          `json:"template_name"`
	Status       SessionStatus   `json:"status"`
	StartedAt    time.Time       `json:"started_at"`
	CompletedAt  *time.Time      `json:"completed_at,omitempty"`
	Exercises    []ExerciseEntry `json:"exercises"`
}

// Matches reports whether the entry was created from the given template
// exercise or library exercise id.
func (e *ExerciseEntry) Matches(exerciseID string) bool {
	return exerciseID != "" && (e.TemplateExerciseID == exerciseID || e.LibraryID == exerciseID)
}

// Exercise returns the entry with the given id.
func (s *Session) Exercise(entryID string) (*ExerciseEntry, bool) {
	for i := range s.Exercises {
		if s.Exercises[i].ID == entryID {
			return &s.Exercises[i], true
		}
	}
	return nil, false
}

// ExerciseByTemplate returns the first entry created from the given template
// exercise.
func (s *Session) ExerciseByTemplate(templateExerciseID string) (*ExerciseEntry, bool) {
	for i := range s.Exercises {
		if s.Exercises[i].TemplateExerciseID == templateExerciseID {
			return &s.Exercises[i], true
		}
	}
	return nil, false
}

// SetField writes raw input into one set field and stamps the exercise
// timestamps. It reports false when either id is unknown.
func (s *Session) SetField(entryID, setID string, field SetField, raw string, now time.Time) bool {
	ex, ok := s.Exercise(entryID)
	if !ok {
		return false
	}
	idx := ex.SetIndex(setID)
	if idx < 0 {
		return false
	}
	if !ex.Sets[idx].ApplyInput(field, raw) {
		return false
	}
	ex.touch(now)
	return true
}

// Date returns the day the session counts for: completion for history,
// start for a draft.
func (s *Session) Date() time.Time {
	if s.CompletedAt != nil {
		return *s.CompletedAt
	}
	return s.StartedAt
}

// LoggedSetCount counts sets with a usable performance.
func (s *Session) LoggedSetCount() int {
	n := 0
	for i := range s.Exercises {
		for _, set := range s.Exercises[i].Sets {
			if set.IsLogged() {
				n++
			}
		}
	}
	return n
}

// Complete builds the immutable history record for a draft. Incomplete sets
// are dropped; an exercise left without sets survives only if it carries a
// setup note.
func (s *Session) Complete(now time.Time) *Session {
	done := s.Clone()
	done.Status = SessionCompleted
	completedAt := now
	done.CompletedAt = &completedAt

	kept := make([]ExerciseEntry, 0, len(done.Exercises))
	for _, ex := range done.Exercises {
		ex.Sets = ex.LoggedSets()
		if len(ex.Sets) == 0 && !ex.HasSetupNote() {
			continue
		}
		kept = append(kept, ex)
	}
	done.Exercises = kept
	return done
}

// Clone returns a deep copy so callers can mutate without aliasing.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	c.CompletedAt = clonePtr(s.CompletedAt)
	c.Exercises = make([]ExerciseEntry, len(s.Exercises))
	for i, ex := range s.Exercises {
		ex.StartedAt = clonePtr(ex.StartedAt)
		ex.FinishedAt = clonePtr(ex.FinishedAt)
		if ex.ContextualNotes != nil {
			notes := *ex.ContextualNotes
			ex.ContextualNotes = &notes
		}
		sets := make([]SetEntry, len(ex.Sets))
		for j, set := range ex.Sets {
			sets[j] = set.Clone()
		}
		ex.Sets = sets
		c.Exercises[i] = ex
	}
	return &c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
