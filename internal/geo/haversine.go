package geo

import (
	"ev-route-service/internal/domain"
	"math"
)

// Mean Earth radius in kilometers.
const earthRadiusKm = 6371

// DistanceKm returns the great-circle distance between two coordinates
// in kilometers using the haversine formula. The function is pure and
// symmetric in its arguments.
func DistanceKm(a, b domain.Coordinate) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*math.Pi/180)*math.Cos(b.Lat*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}
