package service

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
)

// SessionStore owns one user's draft and completed history. Mutations that
// find no draft or an unknown id are silent no-ops reported as changed=false.
type SessionStore interface {
	// StartSession returns the existing draft with started=false when one is
	// already open, and nil when the template is unknown.
	StartSession(ctx context.Context, templateID string) (draft *domain.Session, started bool, err error)
	UpdateSetField(ctx context.Context, exerciseEntryID, setID string, field domain.SetField, raw string) (bool, error)
	ToggleSetCompleted(ctx context.Context, exerciseEntryID, setID string) (bool, error)
	// AddSet returns the new set, or nil when nothing was added.
	AddSet(ctx context.Context, exerciseEntryID string, kind domain.SetKind) (*domain.SetEntry, error)
	RemoveSet(ctx context.Context, exerciseEntryID, setID string) (bool, error)
	UpdateExerciseNote(ctx context.Context, templateExerciseID, text string) (bool, error)
	// SaveSession commits the draft and returns the completed record, or nil
	// when there was no draft.
	SaveSession(ctx context.Context) (*domain.Session, error)
	DiscardSession(ctx context.Context) (bool, error)
	DeleteSession(ctx context.Context, sessionID string) (bool, error)

	Draft() *domain.Session
	History() []*domain.Session
	Session(sessionID string) (*domain.Session, bool)
	SetupNote(templateExerciseID string) string
	LastSessionExerciseData(exerciseID string) (*SetPerformance, bool)
	ExerciseHistory(exerciseID string) []ExerciseAppearance
}

// SetPerformance is the headline set of an exercise in one session.
type SetPerformance struct {
	SessionID     string
	Date          time.Time
	Kind          domain.SetKind
	Weight        float64
	Reps          int
	EffortReserve *int
}

// ExerciseAppearance is one completed session's record of an exercise.
type ExerciseAppearance struct {
	SessionID    string
	Date         time.Time
	TemplateName string
	Sets         []domain.SetEntry
	SetupNote    string
}

// ProgramLookup resolves a program id across built-in and custom programs.
type ProgramLookup interface {
	Program(ctx context.Context, id string) (*domain.ProgramTemplate, error)
}

type CatalogService interface {
	ProgramLookup
	ListBuiltInPrograms(ctx context.Context) ([]domain.ProgramTemplate, error)
	ListCustomPrograms(ctx context.Context) ([]domain.ProgramTemplate, error)
	ListPrograms(ctx context.Context) ([]domain.ProgramTemplate, error)
	SaveCustomProgram(ctx context.Context, p domain.ProgramTemplate) error
	DeleteCustomProgram(ctx context.Context, id string) (bool, error)
	ImportPrograms(ctx context.Context, path string) ([]domain.ProgramTemplate, error)
	ListAllExercises(ctx context.Context) ([]domain.LibraryExercise, error)
	AddCustomExercise(ctx context.Context, name, muscleGroup string) (*domain.LibraryExercise, error)
}

type WeightService interface {
	SaveWeight(ctx context.Context, weight float64, date, note string) (*domain.WeightEntry, error)
	DeleteWeight(ctx context.Context, date string) (bool, error)
	Stats(ctx context.Context) (domain.WeightStats, error)
	List(ctx context.Context) ([]domain.WeightEntry, error)
	ListMonth(ctx context.Context, year int, month time.Month) ([]domain.WeightEntry, error)
}

type UserService interface {
	Register(ctx context.Context, name string) (*domain.User, error)
	Login(ctx context.Context, name string) (*domain.User, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*domain.User, error)
	Lookup(ctx context.Context, name string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// Delete removes the profile and every record scoped to it.
	Delete(ctx context.Context, name string) (removedRecords int64, err error)
}

type SettingsService interface {
	AdvancedMode(ctx context.Context) (bool, error)
	ToggleAdvancedMode(ctx context.Context) (bool, error)
}

type ProgressService interface {
	Progress(exerciseID string) ProgressReport
	TrackedExercises() []TrackedExercise
}

type ExportService interface {
	Rows() []ReportRow
	WriteCSV(w io.Writer) error
	TopSetReport() []ReportRow
}

type IntegrityService interface {
	Check(ctx context.Context) (*IntegrityReport, error)
}
