package location

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rollcall/internal/attendance/models"
)

// Seoul City Hall and nearby points; distances cross-checked against
// published great-circle calculators.
var (
	cityHall = models.Coordinate{Latitude: 37.5665, Longitude: 126.9780}
	deoksu   = models.Coordinate{Latitude: 37.5658, Longitude: 126.9751} // ~270m west
	gangnam  = models.Coordinate{Latitude: 37.4979, Longitude: 127.0276} // ~8.8km southeast
)

func TestDistanceMeters(t *testing.T) {
	assert.Zero(t, DistanceMeters(cityHall, cityHall))

	d := DistanceMeters(cityHall, deoksu)
	assert.InDelta(t, 270, d, 30)

	far := DistanceMeters(cityHall, gangnam)
	assert.InDelta(t, 8800, far, 500)

	// Symmetry.
	assert.InDelta(t, d, DistanceMeters(deoksu, cityHall), 0.001)
}

func TestWithinRadius(t *testing.T) {
	assert.True(t, WithinRadius(deoksu, cityHall, 300))
	assert.False(t, WithinRadius(deoksu, cityHall, 100))
	assert.False(t, WithinRadius(gangnam, cityHall, 300))

	// Inclusive boundary: a point exactly at the center is inside any fence.
	assert.True(t, WithinRadius(cityHall, cityHall, 0))
}

func TestStaticProvider_FenceSignal(t *testing.T) {
	p := NewStaticProvider(deoksu, cityHall, 300, "서울특별시 중구 세종대로")
	assert.True(t, p.Authorized())
	assert.True(t, p.InsideGeofence())

	p.MoveTo(gangnam)
	assert.False(t, p.InsideGeofence())

	p.LoseFix()
	_, ok := p.Current()
	assert.False(t, ok)
	assert.False(t, p.InsideGeofence())
}

func TestStaticProvider_StopIsIdempotent(t *testing.T) {
	p := NewStaticProvider(deoksu, cityHall, 300, "")
	p.StopAllGeofenceMonitoring()
	p.StopAllGeofenceMonitoring()
	assert.True(t, p.Stopped())
}
