package location

import (
	"math"

	"rollcall/internal/attendance/models"
)

const earthRadiusMeters = 6371000.0

// DistanceMeters returns the great-circle distance between two coordinates
// using the haversine formula. Accurate to well under a meter at geofence
// scales.
func DistanceMeters(a, b models.Coordinate) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}

// WithinRadius reports whether coord lies within radiusMeters of center. The
// boundary is inclusive.
func WithinRadius(coord, center models.Coordinate, radiusMeters float64) bool {
	return DistanceMeters(coord, center) <= radiusMeters
}
