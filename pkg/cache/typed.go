package cache

import (
	"encoding/json"
	"fmt"
	"time"
)

// GetTyped deserializes the cached JSON value for key into T. A non-zero
// ttl rejects entries older than ttl. Returns nil when the key is missing,
// expired, or not valid JSON for T.
func GetTyped[T any](s *Store, key string, ttl time.Duration) (*T, time.Time, error) {
	data, written, ok := s.Get(key)
	if !ok {
		return nil, time.Time{}, nil
	}
	if ttl > 0 && time.Since(written) > ttl {
		return nil, written, nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, written, fmt.Errorf("cache: decode %q: %w", key, err)
	}
	return &v, written, nil
}

// PutTyped serializes value as JSON and stores it under key.
func PutTyped[T any](s *Store, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache: encode %q: %w", key, err)
	}
	return s.Put(key, data)
}
