package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ContextualNotes is the coaching context shown next to an exercise.
type ContextualNotes struct {
	Rationale   string `json:"rationale,omitempty" yaml:"rationale,omitempty"`
	SetScheme   string `json:"set_scheme,omitempty" yaml:"set_scheme,omitempty"`
	Cue         string `json:"cue,omitempty" yaml:"cue,omitempty"`
	RestSeconds int    `json:"rest_seconds,omitempty" yaml:"rest_seconds,omitempty"`
	Tempo       string `json:"tempo,omitempty" yaml:"tempo,omitempty"`
}

func (c *ContextualNotes) IsZero() bool {
	return c == nil || *c == ContextualNotes{}
}

type ExerciseTemplate struct {
	ID                     string           `json:"id"`
	LibraryID              string           `json:"library_id,omitempty"`
	Name                   string           `json:"name"`
	DefaultRampUpSetCount  int              `json:"default_ramp_up_sets"`
	HasTopSet              bool             `json:"has_top_set"`
	DefaultBackOffSetCount int              `json:"default_back_off_sets"`
	TargetRepRange         string           `json:"target_rep_range,omitempty"`
	TargetEffort           int              `json:"target_effort"`
	ContextualNotes        *ContextualNotes `json:"contextual_notes,omitempty"`
}

type ProgramTemplate struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Exercises []ExerciseTemplate `json:"exercises"`
	IsCustom  bool               `json:"is_custom,omitempty"`
}

// LibraryExercise is a named movement from the exercise library.
type LibraryExercise struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MuscleGroup string `json:"muscle_group"`
	IsCustom    bool   `json:"is_custom,omitempty"`
}

var ErrInvalidTemplate = errors.New("invalid program template")

// Validate checks the structural rules a program must satisfy before it can
// be stored: a name, at least one exercise, unique exercise ids and
// non-negative default set counts.
func (p *ProgramTemplate) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidTemplate)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidTemplate)
	}
	if len(p.Exercises) == 0 {
		return fmt.Errorf("%w: %q has no exercises", ErrInvalidTemplate, p.Name)
	}
	seen := make(map[string]bool, len(p.Exercises))
	for i, ex := range p.Exercises {
		if strings.TrimSpace(ex.ID) == "" {
			return fmt.Errorf("%w: exercise %d missing id", ErrInvalidTemplate, i+1)
		}
		if seen[ex.ID] {
			return fmt.Errorf("%w: duplicate exercise id %q", ErrInvalidTemplate, ex.ID)
		}
		seen[ex.ID] = true
		if strings.TrimSpace(ex.Name) == "" {
			return fmt.Errorf("%w: exercise %q missing name", ErrInvalidTemplate, ex.ID)
		}
		if ex.DefaultRampUpSetCount < 0 || ex.DefaultBackOffSetCount < 0 {
			return fmt.Errorf("%w: exercise %q has negative set count", ErrInvalidTemplate, ex.ID)
		}
	}
	return nil
}

// Clone returns a copy that shares no slices or notes with p.
func (p *ProgramTemplate) Clone() ProgramTemplate {
	c := *p
	c.Exercises = make([]ExerciseTemplate, len(p.Exercises))
	for i, ex := range p.Exercises {
		if ex.ContextualNotes != nil {
			notes := *ex.ContextualNotes
			ex.ContextualNotes = &notes
		}
		c.Exercises[i] = ex
	}
	return c
}

// FindExercise returns the template exercise with the given id.
func (p *ProgramTemplate) FindExercise(id string) (*ExerciseTemplate, bool) {
	for i := range p.Exercises {
		if p.Exercises[i].ID == id {
			return &p.Exercises[i], true
		}
	}
	return nil, false
}

// MaterializeSets emits the empty set sequence for a fresh exercise entry:
// the ramp-up sets, then the top set if the template has one, then the
// back-off sets.
func (e *ExerciseTemplate) MaterializeSets(newID func() string) []SetEntry {
	rampUp := max(e.DefaultRampUpSetCount, 0)
	backOff := max(e.DefaultBackOffSetCount, 0)
	sets := make([]SetEntry, 0, rampUp+backOff+1)
	for range rampUp {
		sets = append(sets, NewSetEntry(newID(), SetRampUp))
	}
	if e.HasTopSet {
		sets = append(sets, NewSetEntry(newID(), SetTopSet))
	}
	for range backOff {
		sets = append(sets, NewSetEntry(newID(), SetBackOff))
	}
	return sets
}
