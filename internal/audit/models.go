package audit

import "time"

// Action labels what an event records.
type Action string

const (
	ActionCheckInAttempted Action = "checkin_attempted"
	ActionCheckInAccepted  Action = "checkin_accepted"
	ActionReasonSubmitted  Action = "reason_submitted"
	ActionApproved         Action = "attendance_approved"
	ActionRejected         Action = "attendance_rejected"
)

// Event is emitted from domain logic to capture key attendance actions. Keep
// it transport-agnostic so stores and sinks can fan out. Events are a trail,
// not state: attendance records themselves are never reconstructed from them.
type Event struct {
	Timestamp time.Time
	Action    Action
	UserID    string
	SessionID string
	RecordID  string
	Outcome   string
	Detail    string
	Device    string
}
