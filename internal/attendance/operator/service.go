// Package operator orchestrates the reviewing actor's operations: listing
// pending submissions for a schedule, approving or rejecting them, and
// assembling the per-session attendance aggregate. Each resolution is an
// independent remote round-trip; the caller reconciles its own pending list
// on success and re-fetches to recover from failure.
package operator

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"rollcall/internal/attendance/models"
	"rollcall/internal/attendance/remote"
	"rollcall/internal/audit"
	"rollcall/internal/platform/metrics"
)

// Auditor receives attendance audit events. Emission failures are logged,
// never propagated.
type Auditor interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Clock abstracts time.Now for testability.
type Clock func() time.Time

// Service is the operator-side attendance façade.
type Service struct {
	api     remote.API
	logger  *slog.Logger
	metrics *metrics.Metrics
	auditor Auditor
	clock   Clock
	tracer  trace.Tracer
}

// Option configures a Service.
type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithAuditor(a Auditor) Option {
	return func(s *Service) { s.auditor = a }
}

func WithClock(clock Clock) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

func NewService(api remote.API, opts ...Option) *Service {
	s := &Service{
		api:    api,
		logger: slog.Default(),
		clock:  time.Now,
		tracer: otel.Tracer("rollcall/operator"),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// FetchPendingAttendances returns the full pending list for a schedule. Full
// replace: callers discard whatever they held before, no incremental merge.
func (s *Service) FetchPendingAttendances(ctx context.Context, scheduleID string) ([]models.PendingAttendanceRecord, error) {
	ctx, span := s.tracer.Start(ctx, "operator.FetchPendingAttendances")
	defer span.End()

	start := s.clock()
	records, err := s.api.GetPendingAttendances(ctx, scheduleID)
	s.metrics.ObserveRemoteLatency("get_pending_attendances", s.clock().Sub(start))
	return records, err
}

// FetchChallengerHistory returns one member's attendance history.
func (s *Service) FetchChallengerHistory(ctx context.Context, challengerID string) ([]models.AttendanceHistoryItem, error) {
	ctx, span := s.tracer.Start(ctx, "operator.FetchChallengerHistory")
	defer span.End()

	start := s.clock()
	items, err := s.api.GetChallengerHistory(ctx, challengerID)
	s.metrics.ObserveRemoteLatency("get_challenger_history", s.clock().Sub(start))
	return items, err
}

// ApproveAttendance resolves one pending record as accepted. The backend
// assigns the terminal status; this call returns nothing beyond
// success/failure, and a failure leaves the pending list exactly as it was.
func (s *Service) ApproveAttendance(ctx context.Context, recordID string) error {
	return s.resolve(ctx, recordID, true)
}

// RejectAttendance resolves one pending record as refused.
func (s *Service) RejectAttendance(ctx context.Context, recordID string) error {
	return s.resolve(ctx, recordID, false)
}

func (s *Service) resolve(ctx context.Context, recordID string, approve bool) error {
	ctx, span := s.tracer.Start(ctx, "operator.Resolve")
	defer span.End()

	decision := "reject"
	action := audit.ActionRejected
	call := s.api.RejectAttendance
	if approve {
		decision = "approve"
		action = audit.ActionApproved
		call = s.api.ApproveAttendance
	}

	start := s.clock()
	err := call(ctx, recordID)
	s.metrics.ObserveRemoteLatency(decision+"_attendance", s.clock().Sub(start))
	if err != nil {
		s.metrics.ObserveResolution(decision, "error")
		s.logger.WarnContext(ctx, "attendance resolution failed",
			"record_id", recordID,
			"decision", decision,
			"error", err,
		)
		return err
	}

	s.metrics.ObserveResolution(decision, "ok")
	s.logger.InfoContext(ctx, "attendance resolved",
		"record_id", recordID,
		"decision", decision,
	)
	s.emitAudit(ctx, audit.Event{Action: action, RecordID: recordID, Outcome: "ok"})
	return nil
}

// Decision is one item of a batch resolution request.
type Decision struct {
	RecordID string
	Approve  bool
}

// BatchResult reports the outcome for one decision.
type BatchResult struct {
	RecordID string
	Approved bool
	Err      error
}

// ResolveBatch issues one independent call per decision, in order. There is no
// transaction: a mid-batch failure leaves earlier resolutions in place, and
// the per-item results say exactly which ones landed.
func (s *Service) ResolveBatch(ctx context.Context, decisions []Decision) []BatchResult {
	ctx, span := s.tracer.Start(ctx, "operator.ResolveBatch")
	defer span.End()

	results := make([]BatchResult, 0, len(decisions))
	for _, d := range decisions {
		results = append(results, BatchResult{
			RecordID: d.RecordID,
			Approved: d.Approve,
			Err:      s.resolve(ctx, d.RecordID, d.Approve),
		})
	}
	return results
}

// SessionAttendance assembles the read-only aggregate for a session: the
// session itself, its backend-reported statistics, and the pending-member
// list, fetched concurrently. The aggregate is replaced wholesale on the next
// fetch, never patched.
func (s *Service) SessionAttendance(ctx context.Context, sessionID, scheduleID string) (models.SessionAttendanceAggregate, error) {
	ctx, span := s.tracer.Start(ctx, "operator.SessionAttendance")
	defer span.End()

	var (
		session models.Session
		stats   remote.SessionStats
		pending []models.PendingAttendanceRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		start := s.clock()
		var err error
		session, err = s.api.GetSession(gctx, sessionID)
		s.metrics.ObserveRemoteLatency("get_session", s.clock().Sub(start))
		return err
	})
	g.Go(func() error {
		start := s.clock()
		var err error
		stats, err = s.api.GetSessionStats(gctx, sessionID)
		s.metrics.ObserveRemoteLatency("get_session_stats", s.clock().Sub(start))
		return err
	})
	g.Go(func() error {
		start := s.clock()
		var err error
		pending, err = s.api.GetPendingAttendances(gctx, scheduleID)
		s.metrics.ObserveRemoteLatency("get_pending_attendances", s.clock().Sub(start))
		return err
	})
	if err := g.Wait(); err != nil {
		return models.SessionAttendanceAggregate{}, err
	}

	return models.SessionAttendanceAggregate{
		Session:        session,
		AttendanceRate: stats.AttendanceRate,
		AttendedCount:  stats.AttendedCount,
		TotalCount:     stats.TotalCount,
		PendingMembers: pending,
	}, nil
}

func (s *Service) emitAudit(ctx context.Context, event audit.Event) {
	if s.auditor == nil {
		return
	}
	if err := s.auditor.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "audit emit failed", "error", err)
	}
}
