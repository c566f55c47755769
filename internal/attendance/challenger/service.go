// Package challenger orchestrates the submitting actor's attendance
// operations: fetching actionable schedules, GPS check-in, and late/absent
// reason submission. Every gating failure is raised before a remote call is
// attempted; remote failures propagate unchanged.
package challenger

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"rollcall/internal/attendance/location"
	"rollcall/internal/attendance/models"
	"rollcall/internal/attendance/policy"
	"rollcall/internal/attendance/remote"
	"rollcall/internal/audit"
	"rollcall/internal/platform/metrics"
	dErrors "rollcall/pkg/domain-errors"
)

// Auditor receives attendance audit events. Emission failures are logged, not
// propagated: the trail is best-effort and never blocks a submission.
type Auditor interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Clock abstracts time.Now for testability.
type Clock func() time.Time

// Service is the challenger-side attendance façade. All operations act on
// values passed in and return fresh values or fail; there is no shared
// mutable state beyond the injected collaborators.
type Service struct {
	api     remote.API
	loc     location.Provider
	policy  policy.Policy
	expiry  policy.ExpiryPolicy
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

func WithPolicy(p policy.Policy) Option {
	return func(s *Service) { s.policy = p }
}

// WithExpiryPolicy selects how an expired time window treats GPS check-in.
// The default blocks it, matching the shipped product behavior.
func WithExpiryPolicy(e policy.ExpiryPolicy) Option {
	return func(s *Service) { s.expiry = e }
}

func NewService(api remote.API, loc location.Provider, opts ...Option) *Service {
	s := &Service{
		api:    api,
		loc:    loc,
		policy: policy.Default,
		expiry: policy.ExpiryPolicyBlock,
		logger: slog.Default(),
		clock:  time.Now,
		tracer: otel.Tracer("rollcall/challenger"),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// FetchAvailableSchedules passes through to the backend; no local filtering.
func (s *Service) FetchAvailableSchedules(ctx context.Context) ([]models.AvailableAttendanceSchedule, error) {
	ctx, span := s.tracer.Start(ctx, "challenger.FetchAvailableSchedules")
	defer span.End()

	start := s.clock()
	schedules, err := s.api.GetAvailableSchedules(ctx)
	s.metrics.ObserveRemoteLatency("get_available_schedules", s.clock().Sub(start))
	return schedules, err
}

// FetchMyHistory passes through to the backend.
func (s *Service) FetchMyHistory(ctx context.Context) ([]models.AttendanceHistoryItem, error) {
	ctx, span := s.tracer.Start(ctx, "challenger.FetchMyHistory")
	defer span.End()

	start := s.clock()
	items, err := s.api.GetMyHistory(ctx)
	s.metrics.ObserveRemoteLatency("get_my_history", s.clock().Sub(start))
	return items, err
}

// FetchSession passes through to the backend.
func (s *Service) FetchSession(ctx context.Context, sessionID string) (models.Session, error) {
	ctx, span := s.tracer.Start(ctx, "challenger.FetchSession")
	defer span.End()

	start := s.clock()
	session, err := s.api.GetSession(ctx, sessionID)
	s.metrics.ObserveRemoteLatency("get_session", s.clock().Sub(start))
	return session, err
}

// IsWithinAttendanceTime classifies the current instant against the session
// start.
func (s *Service) IsWithinAttendanceTime(session models.Session) policy.Window {
	return policy.Classify(s.clock(), session.StartsAt, s.policy)
}

// RequestGPSAttendance validates location preconditions, gates on the fence
// snapshot, then submits the check-in. On success it returns a local
// placeholder record in before-attendance status carrying the verification
// metadata; the backend, not this call, is authoritative for the eventual
// present/late classification.
func (s *Service) RequestGPSAttendance(ctx context.Context, session models.Session, userID, sheetID string) (models.AttendanceRecord, error) {
	ctx, span := s.tracer.Start(ctx, "challenger.RequestGPSAttendance")
	defer span.End()

	if !s.loc.Authorized() {
		return s.gateFailure(ctx, session, userID,
			dErrors.New(dErrors.CodeLocationNotAuthorized, "location permission not granted"))
	}

	coord, ok := s.loc.Current()
	if !ok {
		return s.gateFailure(ctx, session, userID,
			dErrors.New(dErrors.CodeLocationFailed, "no current coordinate available"))
	}

	// Sampled, not transactional: the fence state can change between this
	// snapshot and the remote call landing on the backend.
	snap := policy.FenceSnapshot{Authorized: true, InsideFence: s.loc.InsideGeofence()}
	window := policy.Classify(s.clock(), session.StartsAt, s.policy)
	elig, err := policy.Gate(snap, window, s.expiry)
	if err != nil {
		return s.gateFailure(ctx, session, userID, err)
	}
	if !elig.GPSCheckIn {
		if snap.InsideFence && window == policy.WindowExpired {
			return s.gateFailure(ctx, session, userID,
				dErrors.New(dErrors.CodeAttendanceWindowClosed, "attendance window has expired"))
		}
		return s.gateFailure(ctx, session, userID,
			dErrors.New(dErrors.CodeAttendanceOutOfRange, "outside the session geofence"))
	}

	start := s.clock()
	recordID, err := s.api.CheckAttendance(ctx, sheetID, coord.Latitude, coord.Longitude, true)
	s.metrics.ObserveRemoteLatency("check_attendance", s.clock().Sub(start))
	if err != nil {
		s.metrics.ObserveCheckIn("remote_error")
		s.emitAudit(ctx, audit.Event{
			Action:    audit.ActionCheckInAttempted,
			UserID:    userID,
			SessionID: session.ID,
			Outcome:   string(dErrors.GetCode(err)),
		})
		return models.AttendanceRecord{}, err
	}

	record := models.NewGPSRecord(recordID, session.ID, userID, models.LocationVerification{
		Verified:   true,
		Coordinate: coord,
		VerifiedAt: s.clock(),
	})

	s.metrics.ObserveCheckIn("accepted")
	s.logger.InfoContext(ctx, "gps check-in accepted",
		"session_id", session.ID,
		"user_id", userID,
		"record_id", recordID,
		"window", string(window),
	)
	s.emitAudit(ctx, audit.Event{
		Action:    audit.ActionCheckInAccepted,
		UserID:    userID,
		SessionID: session.ID,
		RecordID:  recordID,
		Outcome:   "ok",
	})
	return record, nil
}

// SubmitLateReason submits an explanation for arriving late.
func (s *Service) SubmitLateReason(ctx context.Context, session models.Session, userID, reason, sheetID string) (models.AttendanceRecord, error) {
	return s.submitReason(ctx, session, userID, reason, sheetID, "late")
}

// SubmitAbsentReason submits an explanation for missing the session.
func (s *Service) SubmitAbsentReason(ctx context.Context, session models.Session, userID, reason, sheetID string) (models.AttendanceRecord, error) {
	return s.submitReason(ctx, session, userID, reason, sheetID, "absent")
}

func (s *Service) submitReason(ctx context.Context, session models.Session, userID, reason, sheetID, kind string) (models.AttendanceRecord, error) {
	ctx, span := s.tracer.Start(ctx, "challenger.SubmitReason")
	defer span.End()

	trimmed := strings.TrimSpace(reason)
	if trimmed == "" {
		return models.AttendanceRecord{}, dErrors.New(dErrors.CodeAttendanceReasonRequired, "reason must not be empty")
	}

	start := s.clock()
	recordID, err := s.api.SubmitReason(ctx, sheetID, trimmed)
	s.metrics.ObserveRemoteLatency("submit_reason", s.clock().Sub(start))
	if err != nil {
		return models.AttendanceRecord{}, err
	}

	record, err := models.NewReasonRecord(recordID, session.ID, userID, trimmed)
	if err != nil {
		return models.AttendanceRecord{}, err
	}

	s.metrics.ObserveReasonSubmission()
	s.logger.InfoContext(ctx, "attendance reason submitted",
		"session_id", session.ID,
		"user_id", userID,
		"record_id", recordID,
		"kind", kind,
	)
	s.emitAudit(ctx, audit.Event{
		Action:    audit.ActionReasonSubmitted,
		UserID:    userID,
		SessionID: session.ID,
		RecordID:  recordID,
		Outcome:   "ok",
		Detail:    kind,
	})
	return record, nil
}

// CurrentAddress reverse-geocodes the latest coordinate.
func (s *Service) CurrentAddress(ctx context.Context) (string, error) {
	ctx, span := s.tracer.Start(ctx, "challenger.CurrentAddress")
	defer span.End()

	coord, ok := s.loc.Current()
	if !ok {
		return "", dErrors.New(dErrors.CodeLocationFailed, "no current coordinate available")
	}
	addr, err := s.loc.ReverseGeocode(ctx, coord)
	if err != nil {
		if dErrors.GetCode(err) == dErrors.CodeInternal {
			return "", dErrors.Wrap(dErrors.CodeGeocodingFailed, "reverse geocode", err)
		}
		return "", err
	}
	return addr, nil
}

// StopGeofenceMonitoring delegates teardown to the location collaborator.
// Safe to call multiple times.
func (s *Service) StopGeofenceMonitoring() {
	s.loc.StopAllGeofenceMonitoring()
}

func (s *Service) gateFailure(ctx context.Context, session models.Session, userID string, err error) (models.AttendanceRecord, error) {
	code := dErrors.GetCode(err)
	s.metrics.ObserveGateRejection(string(code))
	s.logger.WarnContext(ctx, "gps check-in gated",
		"session_id", session.ID,
		"user_id", userID,
		"code", string(code),
	)
	s.emitAudit(ctx, audit.Event{
		Action:    audit.ActionCheckInAttempted,
		UserID:    userID,
		SessionID: session.ID,
		Outcome:   string(code),
	})
	return models.AttendanceRecord{}, err
}

func (s *Service) emitAudit(ctx context.Context, event audit.Event) {
	if s.auditor == nil {
		return
	}
	if err := s.auditor.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "audit emit failed", "error", err)
	}
}
