package services

import (
	"ev-route-service/internal/domain"
	"net/url"
	"strings"
)

// BuildNavigationURL produces a Google Maps driving deep link for the
// computed route, routing through every candidate marked as a selected
// waypoint ("lat,lng" pairs joined by "|"). Consumption of the link by
// a mapping application is outside this service.
func BuildNavigationURL(origin, destination string, stations []domain.StationCandidate) string {
	waypoints := make([]string, 0, 1)
	for _, s := range stations {
		if s.Selected {
			waypoints = append(waypoints, s.Location.String())
		}
	}

	var b strings.Builder
	b.WriteString("https://www.google.com/maps/dir/?api=1&travelmode=driving")
	b.WriteString("&origin=" + url.QueryEscape(origin))
	b.WriteString("&destination=" + url.QueryEscape(destination))
	if len(waypoints) > 0 {
		b.WriteString("&waypoints=" + url.QueryEscape(strings.Join(waypoints, "|")))
	}
	b.WriteString("&dir_action=navigate")

	return b.String()
}
