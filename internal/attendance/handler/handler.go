// Package handler exposes the attendance operations over HTTP. It delegates
// to the challenger and operator services without embedding business logic so
// transport concerns remain isolated.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"rollcall/internal/attendance/models"
	"rollcall/internal/attendance/operator"
	"rollcall/internal/platform/metrics"
	"rollcall/internal/platform/middleware"
	"rollcall/internal/transport/http/shared"
	dErrors "rollcall/pkg/domain-errors"
)

// ChallengerService defines the submitting actor's attendance operations.
type ChallengerService interface {
	FetchAvailableSchedules(ctx context.Context) ([]models.AvailableAttendanceSchedule, error)
	FetchMyHistory(ctx context.Context) ([]models.AttendanceHistoryItem, error)
	FetchSession(ctx context.Context, sessionID string) (models.Session, error)
	RequestGPSAttendance(ctx context.Context, session models.Session, userID, sheetID string) (models.AttendanceRecord, error)
	SubmitLateReason(ctx context.Context, session models.Session, userID, reason, sheetID string) (models.AttendanceRecord, error)
	SubmitAbsentReason(ctx context.Context, session models.Session, userID, reason, sheetID string) (models.AttendanceRecord, error)
	CurrentAddress(ctx context.Context) (string, error)
}

// OperatorService defines the reviewer-side operations.
type OperatorService interface {
	FetchPendingAttendances(ctx context.Context, scheduleID string) ([]models.PendingAttendanceRecord, error)
	FetchChallengerHistory(ctx context.Context, challengerID string) ([]models.AttendanceHistoryItem, error)
	ApproveAttendance(ctx context.Context, recordID string) error
	RejectAttendance(ctx context.Context, recordID string) error
	ResolveBatch(ctx context.Context, decisions []operator.Decision) []operator.BatchResult
	SessionAttendance(ctx context.Context, sessionID, scheduleID string) (models.SessionAttendanceAggregate, error)
}

// SubmissionGuard serializes concurrent submissions per session/user pair.
type SubmissionGuard interface {
	Begin(ctx context.Context, sessionID, userID string) (release func(), err error)
}

// Handler handles attendance endpoints.
type Handler struct {
	logger       *slog.Logger
	challenger   ChallengerService
	operator     OperatorService
	guard        SubmissionGuard
	metrics      *metrics.Metrics
	jwtValidator middleware.JWTValidator
}

// New creates a new attendance Handler.
func New(
	challenger ChallengerService,
	operator OperatorService,
	guard SubmissionGuard,
	logger *slog.Logger,
	metrics *metrics.Metrics,
	jwtValidator middleware.JWTValidator) *Handler {
	return &Handler{
		logger:       logger,
		challenger:   challenger,
		operator:     operator,
		guard:        guard,
		metrics:      metrics,
		jwtValidator: jwtValidator,
	}
}

// Register registers the attendance routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	attendanceRouter := chi.NewRouter()
	attendanceRouter.Use(middleware.Recovery(h.logger))
	attendanceRouter.Use(middleware.RequestID)
	attendanceRouter.Use(middleware.Logger(h.logger))
	attendanceRouter.Use(middleware.Timeout(30 * time.Second))
	attendanceRouter.Use(middleware.ContentTypeJSON)
	attendanceRouter.Use(middleware.LatencyMiddleware(h.metrics))
	attendanceRouter.Use(middleware.Device)
	attendanceRouter.Use(middleware.RequireAuth(h.jwtValidator, h.logger))

	attendanceRouter.Get("/attendance/schedules", h.handleListSchedules)
	attendanceRouter.Get("/attendance/me", h.handleMyHistory)
	attendanceRouter.Get("/attendance/address", h.handleCurrentAddress)
	attendanceRouter.Post("/attendance/sessions/{sessionID}/checkin", h.handleCheckIn)
	attendanceRouter.Post("/attendance/sessions/{sessionID}/reason", h.handleSubmitReason)

	operatorRouter := chi.NewRouter()
	operatorRouter.Use(middleware.RequireOperator(h.logger))
	operatorRouter.Get("/schedules/{scheduleID}/pending", h.handlePendingList)
	operatorRouter.Get("/challengers/{challengerID}/history", h.handleChallengerHistory)
	operatorRouter.Get("/sessions/{sessionID}/attendance", h.handleSessionAttendance)
	operatorRouter.Post("/records/{recordID}/approve", h.handleApprove)
	operatorRouter.Post("/records/{recordID}/reject", h.handleReject)
	operatorRouter.Post("/records/resolve", h.handleResolveBatch)
	attendanceRouter.Mount("/operator", operatorRouter)

	r.Mount("/", attendanceRouter)
}

func (h *Handler) handleListSchedules(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	schedules, err := h.challenger.FetchAvailableSchedules(ctx)
	if err != nil {
		h.logError(ctx, "failed to fetch schedules", err)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, toScheduleListResponse(schedules))
}

func (h *Handler) handleMyHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	items, err := h.challenger.FetchMyHistory(ctx)
	if err != nil {
		h.logError(ctx, "failed to fetch history", err)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, toHistoryResponse(items))
}

func (h *Handler) handleCurrentAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	address, err := h.challenger.CurrentAddress(ctx)
	if err != nil {
		h.logError(ctx, "failed to resolve address", err)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, addressResponse{Address: address})
}

func (h *Handler) handleCheckIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		h.logError(ctx, "userID missing from context despite auth middleware", nil)
		shared.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return
	}
	sessionID := chi.URLParam(r, "sessionID")

	var req checkInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if req.SheetID == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "sheetId is required"))
		return
	}

	release, err := h.guard.Begin(ctx, sessionID, userID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	defer release()

	session, err := h.challenger.FetchSession(ctx, sessionID)
	if err != nil {
		h.logError(ctx, "failed to fetch session", err)
		shared.WriteError(w, err)
		return
	}

	record, err := h.challenger.RequestGPSAttendance(ctx, session, userID, req.SheetID)
	if err != nil {
		h.logError(ctx, "gps check-in rejected", err)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, toRecordResponse(record))
}

func (h *Handler) handleSubmitReason(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		h.logError(ctx, "userID missing from context despite auth middleware", nil)
		shared.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return
	}
	sessionID := chi.URLParam(r, "sessionID")

	var req reasonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if req.SheetID == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "sheetId is required"))
		return
	}

	var submit func(context.Context, models.Session, string, string, string) (models.AttendanceRecord, error)
	switch req.Kind {
	case "late":
		submit = h.challenger.SubmitLateReason
	case "absent":
		submit = h.challenger.SubmitAbsentReason
	default:
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "kind must be late or absent"))
		return
	}

	release, err := h.guard.Begin(ctx, sessionID, userID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	defer release()

	session, err := h.challenger.FetchSession(ctx, sessionID)
	if err != nil {
		h.logError(ctx, "failed to fetch session", err)
		shared.WriteError(w, err)
		return
	}

	record, err := submit(ctx, session, userID, req.Reason, req.SheetID)
	if err != nil {
		h.logError(ctx, "reason submission rejected", err)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, toRecordResponse(record))
}

func (h *Handler) logError(ctx context.Context, msg string, err error) {
	attrs := []any{"request_id", middleware.GetRequestID(ctx)}
	if err != nil {
		attrs = append(attrs, "error", err.Error())
	}
	h.logger.WarnContext(ctx, msg, attrs...)
}
