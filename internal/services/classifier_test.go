package services

import (
	"ev-route-service/internal/domain"
	"ev-route-service/internal/ports"
	"testing"
)

func TestClassifyTeslaOperator(t *testing.T) {
	rec := ports.RawStationRecord{
		Title:    "Downtown Charging Hub",
		Operator: "Tesla Motors",
	}

	if got := Classify(rec); got != domain.HighPower {
		t.Fatalf("Classify = %v, want HighPower", got)
	}
}

func TestClassifyStandardOperator(t *testing.T) {
	rec := ports.RawStationRecord{
		Title:    "City Lot 4",
		Operator: "ChargePoint",
	}

	if got := Classify(rec); got != domain.Standard {
		t.Fatalf("Classify = %v, want Standard", got)
	}
}

func TestClassifySuperchargerTitle(t *testing.T) {
	rec := ports.RawStationRecord{
		Title: "Supercharger - Melbourne CBD",
	}

	if got := Classify(rec); got != domain.HighPower {
		t.Fatalf("Classify = %v, want HighPower", got)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	rec := ports.RawStationRecord{
		UsageType: "TESLA (only)",
	}

	if got := Classify(rec); got != domain.HighPower {
		t.Fatalf("Classify = %v, want HighPower", got)
	}
}

func TestClassifyEmptyRecord(t *testing.T) {
	// Absent fields must not fail classification.
	if got := Classify(ports.RawStationRecord{}); got != domain.Standard {
		t.Fatalf("Classify = %v, want Standard", got)
	}
}

func TestNewCandidateDefaults(t *testing.T) {
	c := NewCandidate(ports.RawStationRecord{
		Location: domain.Coordinate{Lat: 1.5, Lng: 2.5},
	})

	if c.Title != "Unknown" {
		t.Fatalf("title = %q, want Unknown fallback", c.Title)
	}
	if c.ID == "" {
		t.Fatal("expected a generated candidate id")
	}
	if c.Selected {
		t.Fatal("new candidate must not be pre-selected")
	}
	if c.SoCOnArrival != nil || c.ChargeMinutes != nil {
		t.Fatal("energy annotations must start unset")
	}
}
