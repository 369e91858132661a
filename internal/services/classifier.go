package services

import (
	"ev-route-service/internal/domain"
	"ev-route-service/internal/ports"
	"strconv"
	"strings"
)

// Classify determines whether a raw station record represents a
// Supercharger-class or standard charger. The decision is purely
// textual: any of the record's usage-type, title, address, or operator
// strings containing "tesla" or "supercharger" (case-insensitive)
// marks it high power. Absent fields are treated as empty strings, so
// the function is total.
func Classify(rec ports.RawStationRecord) domain.Classification {
	fields := []string{rec.UsageType, rec.Title, rec.Address, rec.Operator}
	for _, f := range fields {
		lower := strings.ToLower(f)
		if strings.Contains(lower, "tesla") || strings.Contains(lower, "supercharger") {
			return domain.HighPower
		}
	}
	return domain.Standard
}

// NewCandidate builds an unannotated StationCandidate from a raw record.
// Energy annotations (arrival SoC, charge time, detour) are filled in by
// the simulator.
func NewCandidate(rec ports.RawStationRecord) domain.StationCandidate {
	title := rec.Title
	if title == "" {
		title = "Unknown"
	}

	id := rec.ID
	if id == "" {
		// Fall back to a positional key so candidate IDs stay unique
		// within one computation's result set.
		id = "loc:" + strconv.FormatFloat(rec.Location.Lat, 'f', 5, 64) +
			"," + strconv.FormatFloat(rec.Location.Lng, 'f', 5, 64)
	}

	return domain.StationCandidate{
		ID:             id,
		Location:       rec.Location,
		Title:          title,
		Classification: Classify(rec),
		Cost:           rec.Cost,
		Speed:          rec.Speed,
		Address:        rec.Address,
	}
}
