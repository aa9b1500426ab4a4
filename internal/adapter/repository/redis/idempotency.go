package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// pendingSentinel marks a key whose first request is still being served.
// The middleware treats this value as "not yet replayable".
const pendingSentinel = "processing"

// IdempotencyStore keeps replayable responses for mutating requests keyed by
// the client's Idempotency-Key header. Entries expire after the configured
// TTL so retried receipts and cash cuts dedupe within a working day.
type IdempotencyStore struct {
	client *redis.Client
	prefix string
}

// NewIdempotencyStore creates an IdempotencyStore on the shared client.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{
		client: client,
		prefix: "clinilab:idempotency:",
	}
}

// CheckAndSet returns the stored response when the key is already known.
// For a new key it claims the key with a pending sentinel so a concurrent
// retry of the same request observes it as taken.
func (s *IdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	fullKey := s.prefix + key

	existing, err := s.client.Get(ctx, fullKey).Bytes()
	if err == nil {
		return true, existing, nil
	}
	if err != redis.Nil {
		return false, nil, err
	}

	if response != nil {
		if err := s.client.Set(ctx, fullKey, response, ttl).Err(); err != nil {
			return false, nil, err
		}
		return false, nil, nil
	}

	claimed, err := s.client.SetNX(ctx, fullKey, pendingSentinel, ttl).Result()
	if err != nil {
		return false, nil, err
	}
	if !claimed {
		// A concurrent request claimed the key between the Get and the SetNX.
		existing, err := s.client.Get(ctx, fullKey).Bytes()
		if err != nil && err != redis.Nil {
			return false, nil, err
		}
		return true, existing, nil
	}

	return false, nil, nil
}

// Update replaces the pending sentinel with the final response and resets
// the expiry, so the replay window is measured from completion.
func (s *IdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return s.client.Set(ctx, s.prefix+key, response, ttl).Err()
}
