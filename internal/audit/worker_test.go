package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher_StampsTimestamp(t *testing.T) {
	store := NewInMemoryStore()
	pub := NewPublisher(store)

	err := pub.Emit(context.Background(), Event{Action: ActionApproved, UserID: "u1", RecordID: "42"})
	require.NoError(t, err)

	events, err := pub.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.False(t, events[0].Timestamp.IsZero())
	assert.Equal(t, ActionApproved, events[0].Action)
}

func TestWorker_DrainsInboxUntilCancelled(t *testing.T) {
	store := NewInMemoryStore()
	inbox := make(chan Event, 4)
	worker := NewWorker(store, inbox)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	inbox <- Event{Action: ActionCheckInAccepted, UserID: "u1", Timestamp: time.Now()}
	inbox <- Event{Action: ActionRejected, UserID: "u1", Timestamp: time.Now()}

	assert.Eventually(t, func() bool {
		events, err := store.ListByUser(context.Background(), "u1")
		return err == nil && len(events) == 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestChannelStore_DropsWhenFull(t *testing.T) {
	outbox := make(chan Event, 1)
	store := NewChannelStore(outbox)

	require.NoError(t, store.Append(context.Background(), Event{UserID: "u1"}))
	// Buffer full: second append must not block or error.
	require.NoError(t, store.Append(context.Background(), Event{UserID: "u2"}))

	assert.Len(t, outbox, 1)
}
