package location

import (
	"context"
	"sync"

	"rollcall/internal/attendance/models"
	dErrors "rollcall/pkg/domain-errors"
)

// StaticProvider is a deterministic Provider for tests and local development.
// It derives the fence signal from a fixed coordinate, a fence center, and a
// radius, so scenarios stay reproducible without a device.
type StaticProvider struct {
	mu sync.Mutex

	authorized   bool
	hasFix       bool
	coord        models.Coordinate
	fenceCenter  models.Coordinate
	radiusMeters float64
	address      string

	stopped bool
}

// NewStaticProvider builds a provider that reports coord against the fence
// around center.
func NewStaticProvider(coord, center models.Coordinate, radiusMeters float64, address string) *StaticProvider {
	return &StaticProvider{
		authorized:   true,
		hasFix:       true,
		coord:        coord,
		fenceCenter:  center,
		radiusMeters: radiusMeters,
		address:      address,
	}
}

// Revoke simulates the user denying location permission.
func (p *StaticProvider) Revoke() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.authorized = false
}

// LoseFix simulates losing the GPS fix while keeping permission.
func (p *StaticProvider) LoseFix() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hasFix = false
}

// MoveTo relocates the simulated device.
func (p *StaticProvider) MoveTo(coord models.Coordinate) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.coord = coord
	p.hasFix = true
}

func (p *StaticProvider) Authorized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.authorized
}

func (p *StaticProvider) Current() (models.Coordinate, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.hasFix {
		return models.Coordinate{}, false
	}
	return p.coord, true
}

func (p *StaticProvider) InsideGeofence() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.hasFix {
		return false
	}
	return WithinRadius(p.coord, p.fenceCenter, p.radiusMeters)
}

func (p *StaticProvider) ReverseGeocode(_ context.Context, _ models.Coordinate) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.address == "" {
		return "", dErrors.New(dErrors.CodeGeocodingFailed, "no address configured")
	}
	return p.address, nil
}

// StopAllGeofenceMonitoring is safe to call any number of times.
func (p *StaticProvider) StopAllGeofenceMonitoring() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopped = true
}

// Stopped reports whether monitoring was torn down. Test hook.
func (p *StaticProvider) Stopped() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stopped
}
