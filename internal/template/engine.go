package template

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/liftlog/internal/domain"
	"gopkg.in/yaml.v3"
)

// Fallbacks used when neither the exercise nor any defaults block sets a field.
const (
	defaultRampUpSets  = 0
	defaultTopSet      = false
	defaultBackOffSets = 3
)

// LoadFile reads and parses a program YAML file.
func LoadFile(path string) (*ProgramFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseFile(data)
}

// ParseFile parses program YAML. Unknown fields are rejected so typos in
// hand-written files surface early.
func ParseFile(data []byte) (*ProgramFile, error) {
	var file ProgramFile
	if err := decodeStrict(data, &file); err != nil {
		return nil, fmt.Errorf("parsing program file: %w", err)
	}
	return &file, nil
}

// ParseLibrary parses exercise library YAML.
func ParseLibrary(data []byte) (*LibraryFile, error) {
	var lib LibraryFile
	if err := decodeStrict(data, &lib); err != nil {
		return nil, fmt.Errorf("parsing exercise library: %w", err)
	}
	return &lib, nil
}

// Execute validates the file and builds one ProgramTemplate per program.
func Execute(file *ProgramFile) ([]domain.ProgramTemplate, error) {
	if errs := ValidateFile(file); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidTemplate, errors.Join(errs...))
	}

	programs := make([]domain.ProgramTemplate, 0, len(file.Programs))
	for i := range file.Programs {
		p := &file.Programs[i]
		program := domain.ProgramTemplate{
			ID:        p.ID,
			Name:      p.Name,
			Exercises: make([]domain.ExerciseTemplate, 0, len(p.Exercises)),
		}
		for _, ex := range p.Exercises {
			program.Exercises = append(program.Exercises, buildExercise(ex, p.Defaults, file.Defaults))
		}
		if err := program.Validate(); err != nil {
			return nil, err
		}
		programs = append(programs, program)
	}
	return programs, nil
}

// Library flattens the groups into library exercises in file order.
func Library(lib *LibraryFile) ([]domain.LibraryExercise, error) {
	if errs := ValidateLibrary(lib); len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	var out []domain.LibraryExercise
	for _, g := range lib.Groups {
		for _, e := range g.Exercises {
			out = append(out, domain.LibraryExercise{ID: e.ID, Name: e.Name, MuscleGroup: g.Muscle})
		}
	}
	return out, nil
}

func buildExercise(ex ExerciseConfig, programDefaults, fileDefaults *DefaultsConfig) domain.ExerciseTemplate {
	pd, fd := orEmpty(programDefaults), orEmpty(fileDefaults)

	tpl := domain.ExerciseTemplate{
		ID:                     ex.ID,
		LibraryID:              ex.Library,
		Name:                   ex.Name,
		DefaultRampUpSetCount:  domain.IntFromPtrWithDefault(defaultRampUpSets, ex.RampUpSets, pd.RampUpSets, fd.RampUpSets),
		HasTopSet:              domain.BoolFromPtrWithDefault(defaultTopSet, ex.TopSet, pd.TopSet, fd.TopSet),
		DefaultBackOffSetCount: domain.IntFromPtrWithDefault(defaultBackOffSets, ex.BackOffSets, pd.BackOffSets, fd.BackOffSets),
		TargetRepRange:         domain.CoalesceStr(ex.Reps, pd.Reps, fd.Reps),
		TargetEffort:           domain.ClampEffort(domain.IntFromPtrWithDefault(0, ex.Effort, pd.Effort, fd.Effort)),
	}

	var noteRest *int
	if ex.Notes != nil {
		noteRest = ex.Notes.RestSeconds
	}
	notes := &domain.ContextualNotes{
		RestSeconds: domain.IntFromPtrWithDefault(0, noteRest, pd.RestSeconds, fd.RestSeconds),
	}
	if ex.Notes != nil {
		notes.Rationale = ex.Notes.Why
		notes.SetScheme = ex.Notes.Scheme
		notes.Cue = ex.Notes.Cue
		notes.Tempo = ex.Notes.Tempo
	}
	if !notes.IsZero() {
		tpl.ContextualNotes = notes
	}
	return tpl
}

func orEmpty(d *DefaultsConfig) *DefaultsConfig {
	if d == nil {
		return &DefaultsConfig{}
	}
	return d
}

func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("empty document")
		}
		return err
	}
	return nil
}
