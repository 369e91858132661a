package domain

// Represents one directions-service segment between two route waypoints.
// Legs are produced by a DirectionsProvider, are immutable, and their
// ordered sequence forms the route.
type RouteLeg struct {
	Start          Coordinate
	End            Coordinate
	DistanceMeters float64
}

// Midpoint returns the point halfway between the leg endpoints.
// Station lookups along the route are issued from leg midpoints.
func (l RouteLeg) Midpoint() Coordinate {
	return Coordinate{
		Lat: (l.Start.Lat + l.End.Lat) / 2,
		Lng: (l.Start.Lng + l.End.Lng) / 2,
	}
}

// TotalDistanceMeters sums the distance of all legs.
func TotalDistanceMeters(legs []RouteLeg) float64 {
	var total float64
	for _, leg := range legs {
		total += leg.DistanceMeters
	}
	return total
}
