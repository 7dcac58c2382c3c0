package testutil

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/google/uuid"
)

var fixtureCounter atomic.Int64

func NewTestUser(name string) *domain.User {
	return &domain.User{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

// Program options
type ProgramOption func(*domain.ProgramTemplate)

func WithExercise(ex domain.ExerciseTemplate) ProgramOption {
	return func(p *domain.ProgramTemplate) {
		p.Exercises = append(p.Exercises, ex)
	}
}

func WithCustom() ProgramOption {
	return func(p *domain.ProgramTemplate) {
		p.IsCustom = true
	}
}

// NewTestExercise returns a template exercise with ramp-ups, a top set and
// back-offs.
func NewTestExercise(id, name string, rampUps, backOffs int) domain.ExerciseTemplate {
	return domain.ExerciseTemplate{
		ID:                     id,
		Name:                   name,
		DefaultRampUpSetCount:  rampUps,
		HasTopSet:              true,
		DefaultBackOffSetCount: backOffs,
		TargetRepRange:         "6-8",
		TargetEffort:           1,
	}
}

// NewTestProgram builds a valid program. Without options it carries two
// exercises, "ex_a" (2 ramp-ups, top, 1 back-off) and "ex_b" (top only).
func NewTestProgram(name string, opts ...ProgramOption) *domain.ProgramTemplate {
	n := fixtureCounter.Add(1)
	p := &domain.ProgramTemplate{
		ID:   fmt.Sprintf("prog_%d", n),
		Name: name,
	}
	for _, opt := range opts {
		opt(p)
	}
	if len(p.Exercises) == 0 {
		p.Exercises = []domain.ExerciseTemplate{
			NewTestExercise("ex_a", "Exercise A", 2, 1),
			NewTestExercise("ex_b", "Exercise B", 0, 0),
		}
	}
	return p
}

// Session options
type SessionOption func(*domain.Session)

func WithCompletedAt(t time.Time) SessionOption {
	return func(s *domain.Session) {
		s.Status = domain.SessionCompleted
		s.CompletedAt = &t
	}
}

func WithSetupNote(exerciseIdx int, note string) SessionOption {
	return func(s *domain.Session) {
		s.Exercises[exerciseIdx].SetupNote = note
	}
}

// WithTopSet logs the first top set of the given exercise.
func WithTopSet(exerciseIdx int, weight float64, reps int) SessionOption {
	return func(s *domain.Session) {
		ex := &s.Exercises[exerciseIdx]
		for i := range ex.Sets {
			if ex.Sets[i].Kind == domain.SetTopSet {
				w, r := weight, reps
				ex.Sets[i].Weight = &w
				ex.Sets[i].Reps = &r
				return
			}
		}
	}
}

// NewTestSession materializes a draft from the program the way the session
// store does, then applies the options.
func NewTestSession(userID string, p *domain.ProgramTemplate, startedAt time.Time, opts ...SessionOption) *domain.Session {
	s := &domain.Session{
		ID:           uuid.New().String(),
		UserID:       userID,
		TemplateID:   p.ID,
		TemplateName: p.Name,
		Status:       domain.SessionDraft,
		StartedAt:    startedAt,
	}
	for i := range p.Exercises {
		tpl := &p.Exercises[i]
		s.Exercises = append(s.Exercises, domain.ExerciseEntry{
			ID:                 uuid.New().String(),
			TemplateExerciseID: tpl.ID,
			LibraryID:          tpl.LibraryID,
			Name:               tpl.Name,
			Sets:               tpl.MaterializeSets(func() string { return uuid.New().String() }),
		})
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FakeClock is a settable clock for services that take a now func.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// SeqIDs returns an id generator producing prefix-1, prefix-2, ...
func SeqIDs(prefix string) func() string {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, n.Add(1))
	}
}
