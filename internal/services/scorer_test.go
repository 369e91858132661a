package services

import (
	"ev-route-service/internal/domain"
	"math"
	"testing"
)

func socPtr(v float64) *float64 { return &v }

func TestScoreStationHighPowerBeatsStandard(t *testing.T) {
	standard := domain.StationCandidate{Classification: domain.Standard}
	highPower := standard
	highPower.Classification = domain.HighPower

	low := ScoreStation(standard, 0)
	high := ScoreStation(highPower, 0)

	if high <= low {
		t.Fatalf("HighPower score %v not greater than Standard %v", high, low)
	}
	if math.Abs((high-low)-40) > 1e-9 {
		t.Fatalf("speed term delta = %v, want 40 (10 -> 50)", high-low)
	}
}

func TestScoreStationSpeedDescriptorTiers(t *testing.T) {
	base := domain.StationCandidate{Classification: domain.Standard}

	fast150 := base
	fast150.Speed = "Level 3: 150 kW DC"
	fast := base
	fast.Speed = "Fast charger"

	if got := ScoreStation(fast150, 0) - ScoreStation(base, 0); math.Abs(got-30) > 1e-9 {
		t.Fatalf("150kW bonus = %v, want 30 (10 -> 40)", got)
	}
	if got := ScoreStation(fast, 0) - ScoreStation(base, 0); math.Abs(got-15) > 1e-9 {
		t.Fatalf("fast bonus = %v, want 15 (10 -> 25)", got)
	}
}

func TestScoreStationCostTiers(t *testing.T) {
	base := domain.StationCandidate{Classification: domain.Standard}

	free := base
	free.Cost = "Free of charge"
	paid := base
	paid.Cost = "$0.35/kWh"
	na := base
	na.Cost = "N/A"

	if got := ScoreStation(free, 0) - ScoreStation(base, 0); math.Abs(got-25) > 1e-9 {
		t.Fatalf("free bonus = %v, want 25 (5 -> 30)", got)
	}
	if got := ScoreStation(paid, 0) - ScoreStation(base, 0); math.Abs(got-10) > 1e-9 {
		t.Fatalf("paid bonus = %v, want 10 (5 -> 15)", got)
	}
	if got := ScoreStation(na, 0) - ScoreStation(base, 0); math.Abs(got) > 1e-9 {
		t.Fatalf("N/A cost must score like no descriptor, delta = %v", got)
	}
}

func TestScoreStationArrivalSafety(t *testing.T) {
	base := domain.StationCandidate{Classification: domain.Standard}

	comfortable := base
	comfortable.SoCOnArrival = socPtr(20)
	tight := base
	tight.SoCOnArrival = socPtr(10)
	critical := base
	critical.SoCOnArrival = socPtr(5)

	ref := ScoreStation(base, 0)
	if got := ScoreStation(comfortable, 0) - ref; math.Abs(got-20) > 1e-9 {
		t.Fatalf("comfortable arrival bonus = %v, want 20", got)
	}
	if got := ScoreStation(tight, 0) - ref; math.Abs(got-5) > 1e-9 {
		t.Fatalf("tight arrival bonus = %v, want 5", got)
	}
	if got := ScoreStation(critical, 0) - ref; math.Abs(got+30) > 1e-9 {
		t.Fatalf("critical arrival penalty = %v, want -30", got)
	}
}

func TestScoreStationDetourPenalty(t *testing.T) {
	c := domain.StationCandidate{Classification: domain.HighPower}

	near := ScoreStation(c, 2)
	far := ScoreStation(c, 12)
	if math.Abs((near-far)-30) > 1e-9 {
		t.Fatalf("10 extra detour km should cost 30 points, got %v", near-far)
	}
}

func TestFixedDetour(t *testing.T) {
	s := FixedDetour{Km: 5}
	a := domain.Coordinate{Lat: 0, Lng: 0}
	b := domain.Coordinate{Lat: 50, Lng: 50}

	if got := s.DetourKm(a, b, a); got != 5 {
		t.Fatalf("fixed detour = %v, want 5", got)
	}
}

func TestRouteDeviationDetour(t *testing.T) {
	s := RouteDeviationDetour{}
	prev := domain.Coordinate{Lat: 0, Lng: 0}
	next := domain.Coordinate{Lat: 2, Lng: 0}

	// A station on the straight path costs (almost) nothing.
	onPath := domain.Coordinate{Lat: 1, Lng: 0}
	if got := s.DetourKm(prev, onPath, next); got > 0.5 {
		t.Fatalf("on-path detour = %v km, want ~0", got)
	}

	// A station well off the path costs real distance.
	offPath := domain.Coordinate{Lat: 1, Lng: 1}
	if got := s.DetourKm(prev, offPath, next); got < 10 {
		t.Fatalf("off-path detour = %v km, want substantial", got)
	}
}
