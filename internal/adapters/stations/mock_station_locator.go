package stations

import (
	"context"
	"ev-route-service/internal/domain"
	"ev-route-service/internal/ports"
	"fmt"
	"sync"
)

// Test double for StationLocator keyed by query point. Lookups may be
// issued concurrently, so the call counter is lock-protected.
type MockStationLocator struct {
	// Records returned per "lat,lng" key (domain.Coordinate.String()).
	ByPoint map[string][]ports.RawStationRecord
	// Points whose lookup should fail.
	FailPoints map[string]struct{}

	mu    sync.Mutex
	calls int
}

func (m *MockStationLocator) NearbyStations(ctx context.Context, point domain.Coordinate) ([]ports.RawStationRecord, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	key := point.String()
	if _, ok := m.FailPoints[key]; ok {
		return nil, fmt.Errorf("mock lookup failure at %s", key)
	}
	return m.ByPoint[key], nil
}

func (m *MockStationLocator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
