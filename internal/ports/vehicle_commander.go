package ports

import (
	"context"
	"ev-route-service/internal/domain"
)

// Port: a boundary for pushing a navigation target to a vehicle.
// Route computation never depends on this; it is an output-only
// collaborator whose availability cannot affect planning correctness.
type VehicleCommander interface {
	// Send the given destination to the vehicle's navigation system.
	SendNavigation(ctx context.Context, target domain.Coordinate, title string) error
}
