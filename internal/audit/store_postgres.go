package audit

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// Clock abstracts time.Now for testability.
type Clock func() time.Time

// PostgresStore persists audit events in PostgreSQL. Schema:
//
//	CREATE TABLE attendance_audit (
//	    id BIGSERIAL PRIMARY KEY,
//	    occurred_at TIMESTAMPTZ NOT NULL,
//	    action TEXT NOT NULL,
//	    user_id TEXT NOT NULL,
//	    session_id TEXT NOT NULL DEFAULT '',
//	    record_id TEXT NOT NULL DEFAULT '',
//	    outcome TEXT NOT NULL DEFAULT '',
//	    detail TEXT NOT NULL DEFAULT '',
//	    device TEXT NOT NULL DEFAULT ''
//	);
//	CREATE INDEX attendance_audit_user_idx ON attendance_audit (user_id, occurred_at);
type PostgresStore struct {
	db    *sql.DB
	clock Clock
}

// PostgresStoreOption configures a PostgresStore instance.
type PostgresStoreOption func(*PostgresStore)

// WithClock sets the clock function for testability.
func WithClock(clock Clock) PostgresStoreOption {
	return func(s *PostgresStore) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewPostgresStore constructs a PostgreSQL-backed audit store.
func NewPostgresStore(db *sql.DB, opts ...PostgresStoreOption) *PostgresStore {
	s := &PostgresStore{
		db:    db,
		clock: time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *PostgresStore) Append(ctx context.Context, event Event) error {
	occurredAt := event.Timestamp
	if occurredAt.IsZero() {
		occurredAt = s.clock()
	}
	query := `
		INSERT INTO attendance_audit (occurred_at, action, user_id, session_id, record_id, outcome, detail, device)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(ctx, query,
		occurredAt, string(event.Action), event.UserID, event.SessionID,
		event.RecordID, event.Outcome, event.Detail, event.Device)
	if err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByUser(ctx context.Context, userID string) ([]Event, error) {
	query := `
		SELECT occurred_at, action, user_id, session_id, record_id, outcome, detail, device
		FROM attendance_audit
		WHERE user_id = $1
		ORDER BY occurred_at
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		var action string
		if err := rows.Scan(&e.Timestamp, &action, &e.UserID, &e.SessionID, &e.RecordID, &e.Outcome, &e.Detail, &e.Device); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		e.Action = Action(action)
		events = append(events, e)
	}
	return events, rows.Err()
}
