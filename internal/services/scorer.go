package services

import (
	"ev-route-service/internal/domain"
	"ev-route-service/internal/geo"
	"strings"
)

// DetourStrategy estimates the extra driving distance incurred by
// diverting from the route to a candidate station and back.
type DetourStrategy interface {
	// DetourKm returns the detour in kilometers for a station visited
	// between prev and next. Implementations must be pure.
	DetourKm(prev, station, next domain.Coordinate) float64
}

// FixedDetour charges every candidate the same detour distance.
type FixedDetour struct {
	Km float64
}

func (f FixedDetour) DetourKm(_, _, _ domain.Coordinate) float64 { return f.Km }

// RouteDeviationDetour measures the real great-circle deviation:
// (prev -> station -> next) minus (prev -> next).
type RouteDeviationDetour struct{}

func (RouteDeviationDetour) DetourKm(prev, station, next domain.Coordinate) float64 {
	via := geo.DistanceKm(prev, station) + geo.DistanceKm(station, next)
	direct := geo.DistanceKm(prev, next)

	d := via - direct
	if d < 0 {
		return 0
	}
	return d
}

// ScoreStation assigns a suitability score to a candidate given its
// detour from the route. Higher is better. The weights favor fast,
// cheap stations reached with a comfortable battery margin; arriving
// critically low is penalized hard enough to sink an otherwise good
// station.
func ScoreStation(c domain.StationCandidate, detourKm float64) float64 {
	var score float64

	speed := strings.ToLower(c.Speed)
	switch {
	case c.Classification == domain.HighPower:
		score += 50
	case strings.Contains(speed, "150"):
		score += 40
	case strings.Contains(speed, "fast"):
		score += 25
	default:
		score += 10
	}

	cost := strings.ToLower(c.Cost)
	switch {
	case strings.Contains(cost, "free"):
		score += 30
	case c.Cost != "" && c.Cost != "N/A":
		score += 15
	default:
		score += 5
	}

	if c.SoCOnArrival != nil {
		soc := *c.SoCOnArrival
		switch {
		case soc >= 15 && soc <= 30:
			score += 20
		case soc >= 8:
			score += 5
		default:
			score -= 30
		}
	}

	score -= detourKm * 3
	return score
}
