package ports

import (
	"context"
	"ev-route-service/internal/domain"
)

// Contract for resolving a driving route between two free-text endpoints.
type DirectionsProvider interface {
	// Return the ordered legs of a driving route. An error here is fatal
	// to the whole computation; implementations must not return an empty
	// leg sequence together with a nil error.
	DrivingRoute(ctx context.Context, origin string, destination string) ([]domain.RouteLeg, error)
}
