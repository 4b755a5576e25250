package tokenstore

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// defaultNamespace scopes auth keys in shared Redis deployments.
const defaultNamespace = "cmms:auth"

// RedisStore implements Store on top of Redis. It is intended for
// server-rendered front-ends that keep each browser session's tokens
// server-side; use a per-session namespace so sessions do not share
// credentials.
type RedisStore struct {
	client    *redis.Client
	namespace string
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithNamespace overrides the key namespace, e.g. to scope the store to a
// browser session identifier.
func WithNamespace(namespace string) RedisOption {
	return func(s *RedisStore) {
		if namespace != "" {
			s.namespace = namespace
		}
	}
}

// NewRedisStore creates a Redis-backed store using the given client.
func NewRedisStore(client *redis.Client, opts ...RedisOption) *RedisStore {
	s := &RedisStore{
		client:    client,
		namespace: defaultNamespace,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the value for the key, or ErrKeyNotFound.
func (s *RedisStore) Get(ctx context.Context, key Key) (string, error) {
	if !validKey(key) {
		return "", ErrInvalidKey
	}

	value, err := s.client.Get(ctx, s.redisKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Set stores the value for the key. Values carry no TTL: expiry is discovered
// reactively through a 401, and Clear removes state on logout.
func (s *RedisStore) Set(ctx context.Context, key Key, value string) error {
	if !validKey(key) {
		return ErrInvalidKey
	}
	return s.client.Set(ctx, s.redisKey(key), value, 0).Err()
}

// Remove deletes the key. Absent keys are ignored.
func (s *RedisStore) Remove(ctx context.Context, key Key) error {
	if !validKey(key) {
		return ErrInvalidKey
	}
	return s.client.Del(ctx, s.redisKey(key)).Err()
}

// Clear removes all persisted auth keys in a single round trip.
func (s *RedisStore) Clear(ctx context.Context) error {
	keys := make([]string, 0, len(Keys()))
	for _, key := range Keys() {
		keys = append(keys, s.redisKey(key))
	}
	return s.client.Del(ctx, keys...).Err()
}

func (s *RedisStore) redisKey(key Key) string {
	return s.namespace + ":" + string(key)
}
