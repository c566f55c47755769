// Package location defines the port to the device-side location collaborator:
// permission state, the latest coordinate, the sampled geofence signal, and
// reverse geocoding. Raw GPS acquisition and continuous fence monitoring live
// behind this interface; consumers read the latest signal synchronously at the
// moment a gating decision is made.
package location

import (
	"context"

	"rollcall/internal/attendance/models"
)

// Provider is the location collaborator consumed by the challenger service.
//
//go:generate mockgen -destination=../mocks/location_mocks.go -package=mocks rollcall/internal/attendance/location Provider
type Provider interface {
	// Authorized reports whether location permission is granted.
	Authorized() bool
	// Current returns the latest known coordinate. ok is false when no fix
	// is available yet.
	Current() (coord models.Coordinate, ok bool)
	// InsideGeofence is the sampled fence-membership signal for the active
	// session geofence. It can be stale by the time a remote call lands.
	InsideGeofence() bool
	// ReverseGeocode resolves a coordinate into a display address.
	ReverseGeocode(ctx context.Context, coord models.Coordinate) (string, error)
	// StopAllGeofenceMonitoring tears down fence monitoring. Idempotent.
	StopAllGeofenceMonitoring()
}
