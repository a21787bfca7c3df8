// internal/infrastructure/database/memory/store.go
package memory

import (
	"context"
	"time"
)

type entry struct {
	value     string
	expiresAt time.Time // zero means no expiry
}

// Store is an in-memory key-value store with the same surface as the Redis
// wrapper. Used by tests and as the fallback when Redis is not configured.
// Expiry is honored lazily on read.
type Store struct {
	entries map[string]entry
	now     func() time.Time
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get retrieves a value by key; ok is false when the key is absent or expired
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	e, ok := s.entries[key]
	if !ok {
		return "", false, nil
	}
	if !e.expiresAt.IsZero() && !e.expiresAt.After(s.now()) {
		delete(s.entries, key)
		return "", false, nil
	}
	return e.value, true, nil
}

// Set stores a key-value pair with expiration; zero expiration means no expiry
func (s *Store) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	e := entry{value: value}
	if expiration > 0 {
		e.expiresAt = s.now().Add(expiration)
	}
	s.entries[key] = e
	return nil
}

// Del deletes a key
func (s *Store) Del(ctx context.Context, key string) error {
	delete(s.entries, key)
	return nil
}

// Len reports the number of live keys
func (s *Store) Len() int {
	return len(s.entries)
}
