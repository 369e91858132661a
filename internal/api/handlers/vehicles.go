package handlers

import (
	"ev-route-service/internal/api/dto"
	"ev-route-service/internal/ports"
	"log"
	"net/http"
)

// VehicleHandler exposes read-only vehicle catalog endpoints.
type VehicleHandler struct {
	Repo ports.VehicleRepository
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	vehicles, err := h.Repo.ListVehicles(r.Context())
	if err != nil {
		log.Printf("list vehicles failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListVehiclesResponse{
		Vehicles: make([]dto.VehicleResponse, 0, len(vehicles)),
	}
	for _, v := range vehicles {
		res.Vehicles = append(res.Vehicles, dto.VehicleResponse{
			Name:       v.Name,
			BatteryKWh: v.BatteryKWh,
			WhPerKm:    v.ConsumptionWhKm,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
