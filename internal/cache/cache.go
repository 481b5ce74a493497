package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Store is the key-value cache port. A missing key is not an error: Get
// reports it through the second return value. Errors mean the store itself
// misbehaved.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	// SetNX sets the key only when it is absent, returning whether the
	// write happened. Both backends implement it server-side, which is
	// what makes the refresh lock race free.
	SetNX(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}

// SetJSON encodes v and stores it under key with the given TTL.
func SetJSON(ctx context.Context, s Store, key string, v any, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode value for %s: %w", key, err)
	}
	return s.Set(ctx, key, string(data), ttl)
}

// GetJSON reads key and decodes it into a T. The second return value is
// false when the key is absent.
func GetJSON[T any](ctx context.Context, s Store, key string) (T, bool, error) {
	var v T
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return v, false, err
	}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return v, false, fmt.Errorf("failed to decode value for %s: %w", key, err)
	}
	return v, true, nil
}
