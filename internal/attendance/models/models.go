package models

import (
	"strings"
	"time"

	dErrors "rollcall/pkg/domain-errors"
)

// Coordinate is a WGS84 point.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Session is a scheduled club event with a geofence anchor. Sessions are owned
// by the backend of record; immutable once fetched, held by value locally.
type Session struct {
	ID       string
	Title    string
	StartsAt time.Time
	EndsAt   time.Time
	Place    Coordinate
}

// LocationVerification captures the evidence attached to a GPS check-in.
type LocationVerification struct {
	Verified   bool
	Coordinate Coordinate
	Address    string
	VerifiedAt time.Time
}

// AttendanceRecord is one user's attendance for one session.
//
// Invariants: Reason is non-empty whenever Type is RecordTypeReason;
// Verification is non-nil whenever Type is RecordTypeGPS and verification
// succeeded. Both are enforced by the constructors below.
type AttendanceRecord struct {
	ID           string
	SessionID    string
	UserID       string
	Type         RecordType
	Status       Status
	Verification *LocationVerification
	Reason       string
}

// NewGPSRecord builds the local placeholder produced after a successful GPS
// check-in. The backend, not this process, computes the eventual present/late
// classification, so the placeholder stays in StatusBeforeAttendance.
func NewGPSRecord(recordID, sessionID, userID string, verification LocationVerification) AttendanceRecord {
	return AttendanceRecord{
		ID:           recordID,
		SessionID:    sessionID,
		UserID:       userID,
		Type:         RecordTypeGPS,
		Status:       StatusBeforeAttendance,
		Verification: &verification,
	}
}

// NewReasonRecord builds the local record produced after a late/absent reason
// submission. The reason must contain non-whitespace text.
func NewReasonRecord(recordID, sessionID, userID, reason string) (AttendanceRecord, error) {
	trimmed := strings.TrimSpace(reason)
	if trimmed == "" {
		return AttendanceRecord{}, dErrors.New(dErrors.CodeAttendanceReasonRequired, "reason must not be empty")
	}
	return AttendanceRecord{
		ID:        recordID,
		SessionID: sessionID,
		UserID:    userID,
		Type:      RecordTypeReason,
		Status:    StatusPendingApproval,
		Reason:    trimmed,
	}, nil
}

// PendingAttendanceRecord is the reviewer-facing projection of a submitted
// record awaiting a decision. Created and destroyed entirely by
// fetch/approve/reject round-trips; never mutated locally beyond removal from
// a pending list after resolution.
type PendingAttendanceRecord struct {
	RecordID     string
	UserID       string
	UserName     string
	Nickname     string
	Organization string
	Status       Status
	Reason       string
	SubmittedAt  time.Time
}

// AvailableAttendanceSchedule is a session the submitting actor may currently
// act on, paired with the attendance sheet it would write to.
type AvailableAttendanceSchedule struct {
	SheetID string
	Session Session
}

// AttendanceHistoryItem is one row of a user's attendance history.
type AttendanceHistoryItem struct {
	SessionID string
	Title     string
	HeldAt    time.Time
	Type      RecordType
	Status    Status
}

// SessionAttendanceAggregate combines a session with its statistics and
// pending-member list. Read-only: recomputed on every fetch, never
// incrementally patched. AttendanceRate is reported by the backend, not
// derived here, so client and server displays round identically.
type SessionAttendanceAggregate struct {
	Session        Session
	AttendanceRate float64
	AttendedCount  int
	TotalCount     int
	PendingMembers []PendingAttendanceRecord
}
