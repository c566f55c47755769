// Package policy holds the pure attendance rules: the time-window classifier
// and the geofence gate. No I/O, no side effects; callers inject the clock and
// the sampled fence signal so every rule is testable with plain values.
package policy

import "time"

// Policy defines the symmetric on-time window around session start and the
// extended late-but-acceptable window. Loaded once from config; never mutated
// at runtime.
type Policy struct {
	OnTimeThreshold time.Duration
	LateThreshold   time.Duration
}

// Default mirrors the product's standing thresholds: check-in opens 15 minutes
// before start and closes for good 60 minutes after.
var Default = Policy{
	OnTimeThreshold: 15 * time.Minute,
	LateThreshold:   60 * time.Minute,
}

// Window classifies an instant relative to a session start.
type Window string

const (
	WindowTooEarly Window = "too_early"
	WindowOnTime   Window = "on_time"
	WindowLate     Window = "late_window"
	WindowExpired  Window = "expired"
)

// Classify maps now to a window. Checks run in order with inclusive bounds, so
// a tie at an exact boundary resolves toward the more permissive window:
// now == start-onTime and now == start+onTime are both on time, and
// now == start+late is still the late window, not expired.
func Classify(now, sessionStart time.Time, p Policy) Window {
	if now.Before(sessionStart.Add(-p.OnTimeThreshold)) {
		return WindowTooEarly
	}
	if !now.After(sessionStart.Add(p.OnTimeThreshold)) {
		return WindowOnTime
	}
	if !now.After(sessionStart.Add(p.LateThreshold)) {
		return WindowLate
	}
	return WindowExpired
}
