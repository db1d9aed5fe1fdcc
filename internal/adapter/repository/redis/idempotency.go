package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// pendingMarker is stored while a request is still in flight, before the
// final response body is known.
const pendingMarker = "pending"

// IdempotencyStore implements usecase.IdempotencyStore using Redis.
type IdempotencyStore struct {
	client *redis.Client
	prefix string
}

// NewIdempotencyStore creates a new IdempotencyStore.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{
		client: client,
		prefix: "vsla:idempotency:",
	}
}

// CheckAndSet returns the stored response when the key has been seen
// before. Otherwise it claims the key, either with the given response or
// with a pending marker when the response is not yet known.
func (s *IdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	fullKey := s.prefix + key

	existing, err := s.client.Get(ctx, fullKey).Bytes()
	if err == nil {
		return true, existing, nil
	}
	if !errors.Is(err, redis.Nil) {
		return false, nil, err
	}

	if response != nil {
		if err := s.client.Set(ctx, fullKey, response, ttl).Err(); err != nil {
			return false, nil, err
		}

		return false, nil, nil
	}

	set, err := s.client.SetNX(ctx, fullKey, pendingMarker, ttl).Result()
	if err != nil {
		return false, nil, err
	}
	if !set {
		// Lost the race to a concurrent request holding the same key.
		existing, err := s.client.Get(ctx, fullKey).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return false, nil, err
		}

		return true, existing, nil
	}

	return false, nil, nil
}

// Update replaces a claimed key with the final response.
func (s *IdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return s.client.Set(ctx, s.prefix+key, response, ttl).Err()
}
