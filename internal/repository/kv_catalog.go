package repository

import (
	"context"

	"github.com/alexanderramin/liftlog/internal/domain"
)

// KVProgramRepo stores a user's custom programs as one JSON list.
type KVProgramRepo struct {
	kv KVStore
}

func NewKVProgramRepo(kv KVStore) *KVProgramRepo {
	return &KVProgramRepo{kv: kv}
}

func (r *KVProgramRepo) List(ctx context.Context, userID string) ([]domain.ProgramTemplate, error) {
	programs, _, err := loadJSON[[]domain.ProgramTemplate](ctx, r.kv, UserKey(EntityCustomPrograms, userID))
	return programs, err
}

func (r *KVProgramRepo) SaveAll(ctx context.Context, userID string, programs []domain.ProgramTemplate) error {
	if programs == nil {
		programs = []domain.ProgramTemplate{}
	}
	return saveJSON(ctx, r.kv, UserKey(EntityCustomPrograms, userID), programs)
}

// KVExerciseRepo stores a user's custom library exercises as one JSON list.
type KVExerciseRepo struct {
	kv KVStore
}

func NewKVExerciseRepo(kv KVStore) *KVExerciseRepo {
	return &KVExerciseRepo{kv: kv}
}

func (r *KVExerciseRepo) List(ctx context.Context, userID string) ([]domain.LibraryExercise, error) {
	exercises, _, err := loadJSON[[]domain.LibraryExercise](ctx, r.kv, UserKey(EntityCustomExercises, userID))
	return exercises, err
}

func (r *KVExerciseRepo) SaveAll(ctx context.Context, userID string, exercises []domain.LibraryExercise) error {
	if exercises == nil {
		exercises = []domain.LibraryExercise{}
	}
	return saveJSON(ctx, r.kv, UserKey(EntityCustomExercises, userID), exercises)
}
