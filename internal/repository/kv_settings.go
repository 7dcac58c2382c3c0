package repository

import (
	"context"
	"strconv"
)

// KVSettingsRepo stores flags as plain strings rather than JSON.
type KVSettingsRepo struct {
	kv KVStore
}

func NewKVSettingsRepo(kv KVStore) *KVSettingsRepo {
	return &KVSettingsRepo{kv: kv}
}

func (r *KVSettingsRepo) AdvancedMode(ctx context.Context, userID string) (bool, error) {
	raw, found, err := r.kv.Get(ctx, UserKey(EntityAdvancedMode, userID))
	if err != nil || !found {
		return false, err
	}
	enabled, _ := strconv.ParseBool(raw)
	return enabled, nil
}

func (r *KVSettingsRepo) SetAdvancedMode(ctx context.Context, userID string, enabled bool) error {
	return r.kv.Set(ctx, UserKey(EntityAdvancedMode, userID), strconv.FormatBool(enabled))
}

func (r *KVSettingsRepo) CurrentUser(ctx context.Context) (string, error) {
	id, _, err := r.kv.Get(ctx, GlobalKey(EntityCurrentUser))
	return id, err
}

func (r *KVSettingsRepo) SetCurrentUser(ctx context.Context, userID string) error {
	return r.kv.Set(ctx, GlobalKey(EntityCurrentUser), userID)
}

func (r *KVSettingsRepo) ClearCurrentUser(ctx context.Context) error {
	return r.kv.Remove(ctx, GlobalKey(EntityCurrentUser))
}
