package repositories

import (
	"context"
	"ev-route-service/internal/domain"
	"fmt"
)

// Test double for VehicleRepository backed by an in-memory slice.
type MockVehicleRepository struct {
	Profiles []domain.VehicleProfile
	Err      error
}

func (m *MockVehicleRepository) ListVehicles(ctx context.Context) ([]domain.VehicleProfile, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Profiles, nil
}

func (m *MockVehicleRepository) GetVehicle(ctx context.Context, name string) (domain.VehicleProfile, error) {
	if m.Err != nil {
		return domain.VehicleProfile{}, m.Err
	}
	for _, p := range m.Profiles {
		if p.Name == name {
			return p, nil
		}
	}
	return domain.VehicleProfile{}, fmt.Errorf("vehicle %q not found", name)
}
