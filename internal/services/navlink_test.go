package services

import (
	"ev-route-service/internal/domain"
	"net/url"
	"testing"
)

func TestBuildNavigationURLWithSelectedWaypoint(t *testing.T) {
	stationList := []domain.StationCandidate{
		{ID: "a", Location: domain.Coordinate{Lat: -36.5, Lng: 145.1}},
		{ID: "b", Location: domain.Coordinate{Lat: -35.2, Lng: 147.3}, Selected: true},
	}

	link := BuildNavigationURL("Melbourne VIC", "Sydney NSW", stationList)

	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	q := parsed.Query()
	if got := q.Get("origin"); got != "Melbourne VIC" {
		t.Fatalf("origin = %q", got)
	}
	if got := q.Get("destination"); got != "Sydney NSW" {
		t.Fatalf("destination = %q", got)
	}
	// Only the selected station rides along as a waypoint.
	if got := q.Get("waypoints"); got != "-35.2,147.3" {
		t.Fatalf("waypoints = %q, want selected station only", got)
	}
	if got := q.Get("travelmode"); got != "driving" {
		t.Fatalf("travelmode = %q", got)
	}
	if got := q.Get("dir_action"); got != "navigate" {
		t.Fatalf("dir_action = %q", got)
	}
}

func TestBuildNavigationURLWithoutWaypoints(t *testing.T) {
	link := BuildNavigationURL("A", "B", nil)

	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	if _, present := parsed.Query()["waypoints"]; present {
		t.Fatal("waypoints parameter should be omitted when nothing is selected")
	}
}

func TestBuildNavigationURLJoinsMultipleWaypoints(t *testing.T) {
	stationList := []domain.StationCandidate{
		{ID: "a", Location: domain.Coordinate{Lat: 1, Lng: 2}, Selected: true},
		{ID: "b", Location: domain.Coordinate{Lat: 3, Lng: 4}, Selected: true},
	}

	link := BuildNavigationURL("A", "B", stationList)
	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	if got := parsed.Query().Get("waypoints"); got != "1,2|3,4" {
		t.Fatalf("waypoints = %q, want pipe-joined pairs", got)
	}
}
