package repository

import (
	"context"

	"github.com/alexanderramin/liftlog/internal/domain"
)

// KVStore is the persistence adapter: synchronous get/set/remove of one
// logical record per key.
type KVStore interface {
	Get(ctx context.Context, key Key) (value string, found bool, err error)
	Set(ctx context.Context, key Key, value string) error
	Remove(ctx context.Context, key Key) error
	// RemoveUser deletes every record scoped to the user.
	RemoveUser(ctx context.Context, userID string) (int64, error)
}

type SessionRepo interface {
	// ListHistory returns completed sessions, most recent first.
	ListHistory(ctx context.Context, userID string) ([]*domain.Session, error)
	SaveHistory(ctx context.Context, userID string, history []*domain.Session) error
	// GetDraft returns nil without error when the user has no draft.
	GetDraft(ctx context.Context, userID string) (*domain.Session, error)
	SaveDraft(ctx context.Context, userID string, draft *domain.Session) error
	DeleteDraft(ctx context.Context, userID string) error
}

type WeightRepo interface {
	Load(ctx context.Context, userID string) (map[string]domain.WeightEntry, error)
	Save(ctx context.Context, userID string, entries map[string]domain.WeightEntry) error
}

type ProgramRepo interface {
	List(ctx context.Context, userID string) ([]domain.ProgramTemplate, error)
	SaveAll(ctx context.Context, userID string, programs []domain.ProgramTemplate) error
}

type ExerciseRepo interface {
	List(ctx context.Context, userID string) ([]domain.LibraryExercise, error)
	SaveAll(ctx context.Context, userID string, exercises []domain.LibraryExercise) error
}

type SettingsRepo interface {
	AdvancedMode(ctx context.Context, userID string) (bool, error)
	SetAdvancedMode(ctx context.Context, userID string, enabled bool) error
	// CurrentUser returns "" when nobody is logged in.
	CurrentUser(ctx context.Context) (string, error)
	SetCurrentUser(ctx context.Context, userID string) error
	ClearCurrentUser(ctx context.Context) error
}

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByName(ctx context.Context, name string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error
}
