package ports

import (
	"context"
	"ev-route-service/internal/domain"
)

// Raw nearby-station record as returned by a station data source,
// before classification and energy annotation. Textual fields may be
// empty; coordinates are always valid (records with unparsable
// coordinates are dropped at the adapter boundary).
type RawStationRecord struct {
	ID        string
	Location  domain.Coordinate
	Title     string
	Address   string
	UsageType string
	Operator  string
	Speed     string
	Cost      string
}

// Port: a boundary for discovering charging stations near a coordinate.
type StationLocator interface {
	// Return raw station records near the given point. A failure is
	// recoverable: the caller treats it as zero candidates for that
	// query point.
	NearbyStations(ctx context.Context, point domain.Coordinate) ([]RawStationRecord, error)
}
