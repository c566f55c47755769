package inflight

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"rollcall/pkg/platform/sentinel"
)

const inflightKeyPrefix = "inflight:submission:"

// RedisStore shares the in-flight view across instances. SET NX with a TTL is
// the whole protocol: key presence means a submission is in flight.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Acquire(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("ttl must be positive: %w", sentinel.ErrInvalidState)
	}
	k := inflightKeyPrefix + key(sessionID, userID)
	ok, err := s.client.SetNX(ctx, k, "1", ttl).Result()
	if err != nil {
		return fmt.Errorf("acquire inflight marker: %w", err)
	}
	if !ok {
		return sentinel.ErrConflict
	}
	return nil
}

func (s *RedisStore) Release(ctx context.Context, sessionID, userID string) error {
	k := inflightKeyPrefix + key(sessionID, userID)
	if err := s.client.Del(ctx, k).Err(); err != nil {
		return fmt.Errorf("release inflight marker: %w", err)
	}
	return nil
}
