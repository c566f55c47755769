// Package domainerrors defines coded errors for the attendance domain.
//
// A Code classifies a failure so callers can branch on it: the presentation
// layer chooses a user-facing remedy (request location permission, offer the
// reason-submission path, show a generic retry) and the HTTP layer maps the
// code to a status. Gating failures are raised before any remote call is
// attempted; remote failures pass through as CodeRemote without reclassification.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies a class of domain failure.
type Code string

const (
	// Location collaborator failures. All recoverable by the user.
	CodeLocationNotAuthorized Code = "location_not_authorized"
	CodeLocationFailed        Code = "location_failed"
	CodeLocationTimeout       Code = "location_timeout"
	CodeGeocodingFailed       Code = "geocoding_failed"

	// Attendance policy failures.
	CodeAttendanceOutOfRange      Code = "attendance_out_of_range"
	CodeAttendanceReasonRequired  Code = "attendance_reason_required"
	CodeAttendanceWindowClosed    Code = "attendance_window_closed"
	CodeSubmissionAlreadyInFlight Code = "submission_already_in_flight"

	// Transport-generic codes.
	CodeBadRequest   Code = "bad_request"
	CodeUnauthorized Code = "unauthorized"
	CodeForbidden    Code = "forbidden"
	CodeNotFound     Code = "not_found"
	CodeConflict     Code = "conflict"
	CodeRemote       Code = "remote_error"
	CodeUnavailable  Code = "unavailable"
	CodeInternal     Code = "internal"
)

// Error is a coded domain error. Construct via New or Wrap.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New creates a coded error with a human-readable message.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying cause. The cause stays
// reachable through errors.Is/As for callers that need the original.
func Wrap(code Code, message string, cause error) error {
	return &Error{Code: code, Message: message, cause: cause}
}

// GetCode extracts the code from err, or CodeInternal when err carries none.
func GetCode(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	return errors.As(err, &de) && de.Code == code
}

// ToHTTPStatus maps a code to the HTTP status the transport layer should emit.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest, CodeAttendanceReasonRequired:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden, CodeLocationNotAuthorized, CodeAttendanceOutOfRange, CodeAttendanceWindowClosed:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict, CodeSubmissionAlreadyInFlight:
		return http.StatusConflict
	case CodeLocationFailed, CodeGeocodingFailed:
		return http.StatusUnprocessableEntity
	case CodeLocationTimeout:
		return http.StatusGatewayTimeout
	case CodeRemote, CodeUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
