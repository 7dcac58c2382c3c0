package repository

import (
	"context"

	"github.com/alexanderramin/liftlog/internal/domain"
)

// KVSessionRepo stores the history list and the draft as two JSON records.
type KVSessionRepo struct {
	kv KVStore
}

func NewKVSessionRepo(kv KVStore) *KVSessionRepo {
	return &KVSessionRepo{kv: kv}
}

func (r *KVSessionRepo) ListHistory(ctx context.Context, userID string) ([]*domain.Session, error) {
	history, _, err := loadJSON[[]*domain.Session](ctx, r.kv, UserKey(EntityHistory, userID))
	if err != nil {
		return nil, err
	}
	return history, nil
}

func (r *KVSessionRepo) SaveHistory(ctx context.Context, userID string, history []*domain.Session) error {
	if history == nil {
		history = []*domain.Session{}
	}
	return saveJSON(ctx, r.kv, UserKey(EntityHistory, userID), history)
}

func (r *KVSessionRepo) GetDraft(ctx context.Context, userID string) (*domain.Session, error) {
	draft, found, err := loadJSON[*domain.Session](ctx, r.kv, UserKey(EntityDraft, userID))
	if err != nil || !found {
		return nil, err
	}
	return draft, nil
}

// SaveDraft writes the draft, or removes the key when draft is nil.
func (r *KVSessionRepo) SaveDraft(ctx context.Context, userID string, draft *domain.Session) error {
	if draft == nil {
		return r.DeleteDraft(ctx, userID)
	}
	return saveJSON(ctx, r.kv, UserKey(EntityDraft, userID), draft)
}

func (r *KVSessionRepo) DeleteDraft(ctx context.Context, userID string) error {
	return r.kv.Remove(ctx, UserKey(EntityDraft, userID))
}
