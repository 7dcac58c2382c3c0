package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// loadJSON decodes the record stored under key into a T. A missing key
// yields the zero value and found=false.
func loadJSON[T any](ctx context.Context, kv KVStore, key Key) (value T, found bool, err error) {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil || !ok {
		return value, false, err
	}
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return value, false, fmt.Errorf("decoding %s: %w", key, err)
	}
	return value, true, nil
}

// saveJSON serializes the whole slice of state and writes it under key.
func saveJSON(ctx context.Context, kv KVStore, key Key, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return kv.Set(ctx, key, string(data))
}
