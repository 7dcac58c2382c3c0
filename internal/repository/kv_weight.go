package repository

import (
	"context"

	"github.com/alexanderramin/liftlog/internal/domain"
)

// KVWeightRepo stores the weight log as a date-keyed JSON object.
type KVWeightRepo struct {
	kv KVStore
}

func NewKVWeightRepo(kv KVStore) *KVWeightRepo {
	return &KVWeightRepo{kv: kv}
}

func (r *KVWeightRepo) Load(ctx context.Context, userID string) (map[string]domain.WeightEntry, error) {
	entries, _, err := loadJSON[map[string]domain.WeightEntry](ctx, r.kv, UserKey(EntityWeightLog, userID))
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = map[string]domain.WeightEntry{}
	}
	return entries, nil
}

func (r *KVWeightRepo) Save(ctx context.Context, userID string, entries map[string]domain.WeightEntry) error {
	if entries == nil {
		entries = map[string]domain.WeightEntry{}
	}
	return saveJSON(ctx, r.kv, UserKey(EntityWeightLog, userID), entries)
}
