package handlers

import (
	"encoding/json"
	"errors"
	"ev-route-service/internal/adapters/directions"
	"ev-route-service/internal/adapters/repositories"
	"ev-route-service/internal/adapters/stations"
	"ev-route-service/internal/api/dto"
	"ev-route-service/internal/domain"
	"ev-route-service/internal/ports"
	"ev-route-service/internal/services"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

var errFake = errors.New("upstream unavailable")

func newRouteHandler(provider ports.DirectionsProvider, locator ports.StationLocator) *RouteHandler {
	repo := &repositories.MockVehicleRepository{
		Profiles: []domain.VehicleProfile{
			{Name: "Tesla Model 3", BatteryKWh: 60, ConsumptionWhKm: 160},
		},
	}
	return &RouteHandler{
		Vehicles:     repo,
		Orchestrator: services.NewOrchestrator(provider, locator, nil, time.Second),
	}
}

func TestRouteComputeHappyPath(t *testing.T) {
	leg := domain.RouteLeg{
		Start:          domain.Coordinate{Lat: 0, Lng: 0},
		End:            domain.Coordinate{Lat: 2, Lng: 0},
		DistanceMeters: 300000,
	}
	provider := &directions.MockDirectionsProvider{Legs: []domain.RouteLeg{leg}}
	locator := &stations.MockStationLocator{
		ByPoint: map[string][]ports.RawStationRecord{
			leg.Midpoint().String(): {{ID: "s-1", Location: leg.Midpoint(), Title: "Tesla Supercharger"}},
		},
	}
	h := newRouteHandler(provider, locator)

	body := `{"origin":"Melbourne VIC","destination":"Sydney NSW","vehicle":"Tesla Model 3"}`
	req := httptest.NewRequest(http.MethodPost, "/routes", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Compute(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.RouteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.TotalDistanceKm != 300 {
		t.Fatalf("total_distance_km = %v, want 300", res.TotalDistanceKm)
	}
	if !res.LowBattery {
		t.Fatal("expected low_battery for a fully depleting route")
	}
	if res.SelectedStationID != "s-1" {
		t.Fatalf("selected_station_id = %q, want s-1", res.SelectedStationID)
	}
	if len(res.Stations) != 1 || !res.Stations[0].Selected {
		t.Fatalf("stations = %+v, want one selected station", res.Stations)
	}
}

func TestRouteComputeValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing endpoints", `{"vehicle":"Tesla Model 3"}`},
		{"unknown field", `{"origin":"A","destination":"B","vehicle":"Tesla Model 3","bogus":1}`},
		{"trailing object", `{"origin":"A","destination":"B","vehicle":"Tesla Model 3"}{}`},
		{"unknown vehicle", `{"origin":"A","destination":"B","vehicle":"DeLorean"}`},
		{"no profile at all", `{"origin":"A","destination":"B"}`},
		{"battery out of range", `{"origin":"A","destination":"B","vehicle":"Tesla Model 3","start_battery_pct":140}`},
		{"not json", `origin=A`},
	}

	for _, tc := range cases {
		provider := &directions.MockDirectionsProvider{}
		h := newRouteHandler(provider, &stations.MockStationLocator{})

		req := httptest.NewRequest(http.MethodPost, "/routes", strings.NewReader(tc.body))
		rec := httptest.NewRecorder()
		h.Compute(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400 (body %s)", tc.name, rec.Code, rec.Body.String())
		}
		if provider.Calls != 0 {
			t.Fatalf("%s: rejected request must not reach the directions provider", tc.name)
		}
	}
}

func TestRouteComputeInlineProfile(t *testing.T) {
	leg := domain.RouteLeg{
		Start:          domain.Coordinate{Lat: 0, Lng: 0},
		End:            domain.Coordinate{Lat: 1, Lng: 0},
		DistanceMeters: 150000,
	}
	provider := &directions.MockDirectionsProvider{Legs: []domain.RouteLeg{leg}}
	h := newRouteHandler(provider, &stations.MockStationLocator{})

	body := `{"origin":"A","destination":"B","battery_kwh":60,"wh_per_km":160,"start_battery_pct":50}`
	req := httptest.NewRequest(http.MethodPost, "/routes", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Compute(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.RouteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	// 150 km at 160 Wh/km on 60 kWh burns 40%, leaving 10 from 50.
	if res.RemainingBatteryPct != 10 {
		t.Fatalf("remaining_battery_pct = %v, want 10", res.RemainingBatteryPct)
	}
	if res.LowBattery {
		t.Fatal("10% remaining is at the threshold, not below it")
	}
}

func TestRouteComputeUpstreamFailure(t *testing.T) {
	provider := &directions.MockDirectionsProvider{Err: errFake}
	h := newRouteHandler(provider, &stations.MockStationLocator{})

	body := `{"origin":"A","destination":"B","vehicle":"Tesla Model 3"}`
	req := httptest.NewRequest(http.MethodPost, "/routes", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Compute(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
}

func TestRouteComputeMethodNotAllowed(t *testing.T) {
	h := newRouteHandler(&directions.MockDirectionsProvider{}, &stations.MockStationLocator{})

	req := httptest.NewRequest(http.MethodGet, "/routes", nil)
	rec := httptest.NewRecorder()
	h.Compute(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	if got := rec.Header().Get("Allow"); got != http.MethodPost {
		t.Fatalf("Allow = %q, want POST", got)
	}
}
