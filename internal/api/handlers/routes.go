package handlers

import (
	"encoding/json"
	"errors"
	"ev-route-service/internal/api/dto"
	"ev-route-service/internal/domain"
	"ev-route-service/internal/ports"
	"ev-route-service/internal/services"
	"io"
	"log"
	"net/http"
	"strings"
)

type RouteHandler struct {
	Vehicles     ports.VehicleRepository
	Orchestrator *services.Orchestrator
}

// Compute runs one route-computation cycle: directions lookup, energy
// simulation, and charging-stop selection.
func (h *RouteHandler) Compute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if strings.TrimSpace(req.Origin) == "" || strings.TrimSpace(req.Destination) == "" {
		writeError(w, r, http.StatusBadRequest, "origin and destination are required")
		return
	}

	profile, err := h.resolveProfile(r, req)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	startBattery := 80.0
	if req.StartBatteryPct != nil {
		startBattery = *req.StartBatteryPct
	}
	if startBattery < 0 || startBattery > 100 {
		writeError(w, r, http.StatusBadRequest, "start_battery_pct must be between 0 and 100")
		return
	}

	result, err := h.Orchestrator.Compute(r.Context(), services.RouteComputationRequest{
		Origin:          req.Origin,
		Destination:     req.Destination,
		Profile:         profile,
		StartBatteryPct: startBattery,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingEndpoint):
			writeError(w, r, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrSuperseded):
			writeError(w, r, http.StatusConflict, "superseded by a newer route request")
		default:
			log.Printf("route computation failed: %v", err)
			writeError(w, r, http.StatusBadGateway, "route computation failed")
		}
		return
	}

	writeJSON(w, r, http.StatusOK, toRouteResponse(result))
}

// resolveProfile picks the vehicle profile for this computation: a
// catalog lookup when a model name is given, an inline profile
// otherwise.
func (h *RouteHandler) resolveProfile(r *http.Request, req dto.RouteRequest) (domain.VehicleProfile, error) {
	if name := strings.TrimSpace(req.Vehicle); name != "" {
		profile, err := h.Vehicles.GetVehicle(r.Context(), name)
		if err != nil {
			return domain.VehicleProfile{}, errors.New("unknown vehicle " + name)
		}
		return profile, nil
	}

	profile := domain.VehicleProfile{
		Name:            "custom",
		BatteryKWh:      req.BatteryKWh,
		ConsumptionWhKm: req.WhPerKm,
	}
	if err := profile.Validate(); err != nil {
		return domain.VehicleProfile{}, errors.New("vehicle or a positive battery_kwh/wh_per_km pair is required")
	}
	return profile, nil
}

func toRouteResponse(result *services.RouteComputationResult) dto.RouteResponse {
	legs := make([]dto.LegResponse, 0, len(result.Legs))
	for _, l := range result.Legs {
		legs = append(legs, dto.LegResponse{
			StartLat:       l.Start.Lat,
			StartLng:       l.Start.Lng,
			EndLat:         l.End.Lat,
			EndLng:         l.End.Lng,
			DistanceMeters: l.DistanceMeters,
		})
	}

	stations := make([]dto.StationResponse, 0, len(result.Stations))
	for _, s := range result.Stations {
		stations = append(stations, dto.StationResponse{
			ID:             s.ID,
			Lat:            s.Location.Lat,
			Lng:            s.Location.Lng,
			Title:          s.Title,
			Classification: string(s.Classification),
			Cost:           s.Cost,
			Speed:          s.Speed,
			Address:        s.Address,
			Selected:       s.Selected,
			SoCOnArrival:   s.SoCOnArrival,
			ChargeMinutes:  s.ChargeMinutes,
			DetourKm:       s.DetourKm,
		})
	}

	res := dto.RouteResponse{
		Origin:              result.Origin,
		Destination:         result.Destination,
		Legs:                legs,
		Stations:            stations,
		TotalDistanceKm:     result.TotalDistanceKm,
		RemainingBatteryPct: result.RemainingBatteryPct,
		LowBattery:          result.LowBattery,
		Narrative:           result.Narrative,
		NavigationURL:       result.NavigationURL,
	}
	if result.Best != nil {
		res.SelectedStationID = result.Best.Candidate.ID
		score := result.Best.Score
		res.SelectedScore = &score
	}

	return res
}
