package directions

import (
	"testing"

	maps "googlemaps.github.io/maps"
)

func TestMapLegs(t *testing.T) {
	route := maps.Route{
		Legs: []*maps.Leg{
			{
				StartLocation: maps.LatLng{Lat: -37.8136, Lng: 144.9631},
				EndLocation:   maps.LatLng{Lat: -36.7570, Lng: 144.2794},
				Distance:      maps.Distance{Meters: 151000},
			},
			{
				StartLocation: maps.LatLng{Lat: -36.7570, Lng: 144.2794},
				EndLocation:   maps.LatLng{Lat: -33.8688, Lng: 151.2093},
				Distance:      maps.Distance{Meters: 712000},
			},
		},
	}

	legs := mapLegs(route)
	if len(legs) != 2 {
		t.Fatalf("expected 2 legs, got %d", len(legs))
	}
	if legs[0].DistanceMeters != 151000 {
		t.Fatalf("leg 0 distance = %v, want 151000", legs[0].DistanceMeters)
	}
	if legs[1].Start.Lat != -36.7570 || legs[1].Start.Lng != 144.2794 {
		t.Fatalf("leg 1 start = %+v, want previous end", legs[1].Start)
	}
}
