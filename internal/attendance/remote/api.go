// Package remote is the port to the attendance backend of record. The backend
// owns every attendance record and computes all terminal statuses; this
// process only submits and reads.
package remote

import (
	"context"

	"rollcall/internal/attendance/models"
)

// SessionStats is the backend-computed statistics block for one session. The
// rate is reported, never derived locally, so client and server displays
// round identically.
type SessionStats struct {
	AttendanceRate float64
	AttendedCount  int
	TotalCount     int
}

// API is the remote attendance collaborator. Failures surface unmodified as
// coded remote errors; no retries happen at this layer.
//
//go:generate mockgen -destination=../mocks/remote_mocks.go -package=mocks rollcall/internal/attendance/remote API
type API interface {
	GetAvailableSchedules(ctx context.Context) ([]models.AvailableAttendanceSchedule, error)
	GetMyHistory(ctx context.Context) ([]models.AttendanceHistoryItem, error)
	GetChallengerHistory(ctx context.Context, challengerID string) ([]models.AttendanceHistoryItem, error)
	GetPendingAttendances(ctx context.Context, scheduleID string) ([]models.PendingAttendanceRecord, error)
	GetSession(ctx context.Context, sessionID string) (models.Session, error)
	GetSessionStats(ctx context.Context, sessionID string) (SessionStats, error)
	// CheckAttendance submits a GPS check-in and returns the new record id.
	CheckAttendance(ctx context.Context, sheetID string, latitude, longitude float64, locationVerified bool) (string, error)
	// SubmitReason submits a late/absent reason and returns the new record id.
	SubmitReason(ctx context.Context, sheetID, reason string) (string, error)
	ApproveAttendance(ctx context.Context, recordID string) error
	RejectAttendance(ctx context.Context, recordID string) error
}
