package directions

import (
	"context"
	"ev-route-service/internal/domain"
)

// Test double for DirectionsProvider returning a fixed leg sequence.
type MockDirectionsProvider struct {
	Legs  []domain.RouteLeg
	Err   error
	Calls int
}

func (m *MockDirectionsProvider) DrivingRoute(ctx context.Context, origin, destination string) ([]domain.RouteLeg, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Legs, nil
}
