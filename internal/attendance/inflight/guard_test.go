package inflight

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "rollcall/pkg/domain-errors"
)

func TestGuard_SecondBeginIsRefused(t *testing.T) {
	g := NewGuard(NewMemoryStore())
	ctx := context.Background()

	release, err := g.Begin(ctx, "sess-1", "user-1")
	require.NoError(t, err)

	_, err = g.Begin(ctx, "sess-1", "user-1")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeSubmissionAlreadyInFlight))

	// Distinct pairs are independent.
	release2, err := g.Begin(ctx, "sess-1", "user-2")
	require.NoError(t, err)
	release2()

	release()
	_, err = g.Begin(ctx, "sess-1", "user-1")
	assert.NoError(t, err)
}

func TestGuard_MarkerExpires(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	store := NewMemoryStore(WithMemoryClock(clock))
	g := NewGuard(store, WithTTL(time.Minute))
	ctx := context.Background()

	_, err := g.Begin(ctx, "sess-1", "user-1")
	require.NoError(t, err)

	// Simulate the holder crashing without release; after the TTL the pair
	// frees itself.
	mu.Lock()
	now = now.Add(61 * time.Second)
	mu.Unlock()

	_, err = g.Begin(ctx, "sess-1", "user-1")
	assert.NoError(t, err)
}

func TestGuard_ConcurrentBeginAdmitsExactlyOne(t *testing.T) {
	g := NewGuard(NewMemoryStore())
	ctx := context.Background()

	const attempts = 32
	var wg sync.WaitGroup
	admitted := make(chan struct{}, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := g.Begin(ctx, "sess-1", "user-1"); err == nil {
				admitted <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(admitted)

	count := 0
	for range admitted {
		count++
	}
	assert.Equal(t, 1, count)
}
