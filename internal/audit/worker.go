package audit

import "context"

// Worker consumes audit events from a channel and persists them. It keeps
// background processing testable without wiring queue implementations into
// the emitting services.
type Worker struct {
	store Store
	inbox <-chan Event
}

func NewWorker(store Store, inbox <-chan Event) *Worker {
	return &Worker{store: store, inbox: inbox}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.store.Append(ctx, event); err != nil {
				return err
			}
		}
	}
}

// ChannelStore adapts a channel into a Store so a Publisher can hand events to
// a Worker without blocking the request path. Events are dropped when the
// buffer is full; the trail is best-effort by contract.
type ChannelStore struct {
	outbox chan<- Event
}

func NewChannelStore(outbox chan<- Event) *ChannelStore {
	return &ChannelStore{outbox: outbox}
}

func (s *ChannelStore) Append(_ context.Context, event Event) error {
	select {
	case s.outbox <- event:
	default:
	}
	return nil
}

func (s *ChannelStore) ListByUser(context.Context, string) ([]Event, error) {
	return nil, nil
}
