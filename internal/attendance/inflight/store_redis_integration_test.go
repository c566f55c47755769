//go:build integration

package inflight

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "rollcall/pkg/domain-errors"
	"rollcall/pkg/platform/sentinel"
	"rollcall/pkg/testutil/containers"
)

func TestRedisStore_AcquireRelease(t *testing.T) {
	rc := containers.NewRedisContainer(t)
	store := NewRedisStore(rc.Client)
	ctx := context.Background()

	require.NoError(t, store.Acquire(ctx, "sess-1", "user-1", time.Minute))
	assert.ErrorIs(t, store.Acquire(ctx, "sess-1", "user-1", time.Minute), sentinel.ErrConflict)

	// Other pairs are unaffected.
	require.NoError(t, store.Acquire(ctx, "sess-1", "user-2", time.Minute))

	require.NoError(t, store.Release(ctx, "sess-1", "user-1"))
	assert.NoError(t, store.Acquire(ctx, "sess-1", "user-1", time.Minute))
}

func TestRedisStore_MarkerExpires(t *testing.T) {
	rc := containers.NewRedisContainer(t)
	store := NewRedisStore(rc.Client)
	ctx := context.Background()

	require.NoError(t, store.Acquire(ctx, "sess-1", "user-1", 200*time.Millisecond))

	assert.Eventually(t, func() bool {
		return store.Acquire(ctx, "sess-1", "user-1", time.Minute) == nil
	}, 2*time.Second, 50*time.Millisecond)
}

func TestGuard_OverRedis(t *testing.T) {
	rc := containers.NewRedisContainer(t)
	g := NewGuard(NewRedisStore(rc.Client))
	ctx := context.Background()

	release, err := g.Begin(ctx, "sess-9", "user-9")
	require.NoError(t, err)

	_, err = g.Begin(ctx, "sess-9", "user-9")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeSubmissionAlreadyInFlight))

	release()
	_, err = g.Begin(ctx, "sess-9", "user-9")
	assert.NoError(t, err)
}
