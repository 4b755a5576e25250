package tokenstore

import (
	"context"
	"sync"
)

// MemoryStore implements Store using in-process storage. It is the default
// for single-session clients and for tests.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[Key]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[Key]string, len(Keys())),
	}
}

// Get returns the value for the key, or ErrKeyNotFound.
func (s *MemoryStore) Get(ctx context.Context, key Key) (string, error) {
	if !validKey(key) {
		return "", ErrInvalidKey
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

// Set stores the value for the key.
func (s *MemoryStore) Set(ctx context.Context, key Key, value string) error {
	if !validKey(key) {
		return ErrInvalidKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

// Remove deletes the key. Absent keys are ignored.
func (s *MemoryStore) Remove(ctx context.Context, key Key) error {
	if !validKey(key) {
		return ErrInvalidKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

// Clear removes all persisted auth keys as a set.
func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range Keys() {
		delete(s.values, key)
	}
	return nil
}

func validKey(key Key) bool {
	switch key {
	case KeyAccessToken, KeyRefreshToken, KeyUserData:
		return true
	default:
		return false
	}
}
