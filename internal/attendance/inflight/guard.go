// Package inflight guards against duplicate concurrent submissions for the
// same (session, user) pair. The attendance services deliberately do not
// enforce single-flight themselves; the calling layer wraps each submission
// in a Guard so a second attempt is refused locally before it reaches the
// backend.
package inflight

import (
	"context"
	"errors"
	"time"

	dErrors "rollcall/pkg/domain-errors"
	"rollcall/pkg/platform/sentinel"
)

// Store tracks which (session, user) pairs currently have a submission in
// flight. Acquire returns sentinel.ErrConflict (optionally wrapped) when the
// pair is already held. Entries expire after the TTL so a crashed submit
// cannot wedge the pair forever.
type Store interface {
	Acquire(ctx context.Context, sessionID, userID string, ttl time.Duration) error
	Release(ctx context.Context, sessionID, userID string) error
}

// DefaultTTL bounds how long an in-flight marker survives a crash. Generous
// relative to any sane remote timeout.
const DefaultTTL = 2 * time.Minute

// Guard wraps a Store with the submission-facing contract.
type Guard struct {
	store Store
	ttl   time.Duration
}

// GuardOption configures a Guard.
type GuardOption func(*Guard)

// WithTTL overrides the in-flight marker TTL.
func WithTTL(ttl time.Duration) GuardOption {
	return func(g *Guard) {
		if ttl > 0 {
			g.ttl = ttl
		}
	}
}

func NewGuard(store Store, opts ...GuardOption) *Guard {
	g := &Guard{store: store, ttl: DefaultTTL}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Begin marks the pair as in flight and returns a release func. A second
// Begin for the same pair before release fails with a coded conflict.
func (g *Guard) Begin(ctx context.Context, sessionID, userID string) (release func(), err error) {
	if err := g.store.Acquire(ctx, sessionID, userID, g.ttl); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeSubmissionAlreadyInFlight, "a submission for this session is already in flight")
		}
		return nil, err
	}
	return func() {
		// Release failures only shorten protection to the TTL; not worth
		// surfacing to the submitting user.
		_ = g.store.Release(context.WithoutCancel(ctx), sessionID, userID)
	}, nil
}
