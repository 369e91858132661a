package directions

import (
	"context"
	"errors"
	"ev-route-service/internal/domain"
	"ev-route-service/internal/platform/obs"
	"fmt"

	maps "googlemaps.github.io/maps"
)

// GoogleDirectionsProvider implements DirectionsProvider using the
// Google Maps Directions API. Origin and destination are free-text
// strings resolved by the API itself; the travel mode is always
// driving.
type GoogleDirectionsProvider struct {
	client *maps.Client
}

func NewGoogleDirectionsProvider(apiKey string) (*GoogleDirectionsProvider, error) {
	if apiKey == "" {
		return nil, errors.New("google maps api key is empty")
	}

	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create maps client: %w", err)
	}

	return &GoogleDirectionsProvider{client: client}, nil
}

// DrivingRoute returns the legs of the first route offered by the API.
func (g *GoogleDirectionsProvider) DrivingRoute(
	ctx context.Context,
	origin string,
	destination string,
) (_ []domain.RouteLeg, err error) {
	defer obs.Time(ctx, "directions.DrivingRoute")(&err)

	routes, _, err := g.client.Directions(ctx, &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        maps.TravelModeDriving,
	})
	if err != nil {
		return nil, fmt.Errorf("google directions %q -> %q: %w", origin, destination, err)
	}
	if len(routes) == 0 {
		return nil, fmt.Errorf("google directions %q -> %q: no routes returned", origin, destination)
	}

	legs := mapLegs(routes[0])
	if len(legs) == 0 {
		return nil, fmt.Errorf("google directions %q -> %q: route has no legs", origin, destination)
	}

	return legs, nil
}

func mapLegs(route maps.Route) []domain.RouteLeg {
	legs := make([]domain.RouteLeg, 0, len(route.Legs))
	for _, leg := range route.Legs {
		legs = append(legs, domain.RouteLeg{
			Start:          domain.Coordinate{Lat: leg.StartLocation.Lat, Lng: leg.StartLocation.Lng},
			End:            domain.Coordinate{Lat: leg.EndLocation.Lat, Lng: leg.EndLocation.Lng},
			DistanceMeters: float64(leg.Distance.Meters),
		})
	}
	return legs
}
