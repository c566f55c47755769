package models

import (
	dErrors "rollcall/pkg/domain-errors"
)

// Status is the lifecycle state of an attendance record.
//
// Invariant: the client only ever constructs records in StatusBeforeAttendance
// (placeholder after a GPS submission the backend will resolve) or
// StatusPendingApproval (after a reason submission). Terminal states are
// assigned by the backend of record and enter this process exclusively through
// ParseStatus on remote payloads; NewGPSRecord and NewReasonRecord are the only
// in-package constructors and neither accepts a status.
type Status string

const (
	StatusBeforeAttendance Status = "before_attendance"
	StatusPendingApproval  Status = "pending_approval"
	StatusPresent          Status = "present"
	StatusLate             Status = "late"
	StatusAbsent           Status = "absent"
)

// validStatuses is the single source of truth for statuses accepted off the wire.
var validStatuses = map[Status]bool{
	StatusBeforeAttendance: true,
	StatusPendingApproval:  true,
	StatusPresent:          true,
	StatusLate:             true,
	StatusAbsent:           true,
}

// ParseStatus constructs a Status from a remote payload value.
//
// Usage: call from the remote client when decoding responses. Direct casting
// bypasses validation.
func ParseStatus(s string) (Status, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeBadRequest, "status cannot be empty")
	}
	st := Status(s)
	if !validStatuses[st] {
		return "", dErrors.New(dErrors.CodeBadRequest, "unknown attendance status: "+s)
	}
	return st, nil
}

// Terminal reports whether the status is one of the backend-assigned outcomes.
func (s Status) Terminal() bool {
	return s == StatusPresent || s == StatusLate || s == StatusAbsent
}

func (s Status) String() string { return string(s) }

// RecordType distinguishes how an attendance record was produced.
type RecordType string

const (
	RecordTypeGPS    RecordType = "gps"
	RecordTypeReason RecordType = "reason"
)
