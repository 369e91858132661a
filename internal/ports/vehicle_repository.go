package ports

import (
	"context"
	"ev-route-service/internal/domain"
)

// Port: a boundary for retrieving VehicleProfile entities from a data source.
type VehicleRepository interface {
	// Retrieve all vehicle profiles in the catalog.
	ListVehicles(ctx context.Context) ([]domain.VehicleProfile, error)
	// Retrieve a single profile by model name.
	GetVehicle(ctx context.Context, name string) (domain.VehicleProfile, error)
}
