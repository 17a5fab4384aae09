package kv

import (
	"context"
	"encoding/json"
)

// Read returns the decoded value stored under key, or def when the key is
// absent or its content cannot be parsed. Malformed stored content is treated
// as absence, not as a fatal condition.
func Read[T any](ctx context.Context, s Store, key Key, def T) T {
	raw, ok := s.Get(ctx, key)
	if !ok {
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return def
	}
	return v
}

// Write serializes v and stores it under key, reporting success.
func Write(ctx context.Context, s Store, key Key, v any) bool {
	raw, err := json.Marshal(v)
	if err != nil {
		return false
	}
	return s.Set(ctx, key, raw)
}
