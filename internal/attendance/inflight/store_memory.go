package inflight

import (
	"context"
	"sync"
	"time"

	"rollcall/pkg/platform/sentinel"
)

// MemoryStore is the single-process Store. Suitable for one instance;
// distributed deployments use RedisStore so concurrent instances share the
// same in-flight view.
type MemoryStore struct {
	mu      sync.Mutex
	held    map[string]time.Time
	clock   func() time.Time
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithMemoryClock sets the clock function for testability.
func WithMemoryClock(clock func() time.Time) MemoryStoreOption {
	return func(s *MemoryStore) {
		if clock != nil {
			s.clock = clock
		}
	}
}

func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		held:  make(map[string]time.Time),
		clock: time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *MemoryStore) Acquire(_ context.Context, sessionID, userID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key(sessionID, userID)
	now := s.clock()
	if expiry, ok := s.held[k]; ok && now.Before(expiry) {
		return sentinel.ErrConflict
	}
	s.held[k] = now.Add(ttl)
	return nil
}

func (s *MemoryStore) Release(_ context.Context, sessionID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.held, key(sessionID, userID))
	return nil
}

func key(sessionID, userID string) string {
	return sessionID + ":" + userID
}
