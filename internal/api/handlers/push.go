package handlers

import (
	"encoding/json"
	"ev-route-service/internal/api/dto"
	"ev-route-service/internal/domain"
	"ev-route-service/internal/ports"
	"io"
	"log"
	"net/http"
)

// PushHandler forwards a charging stop to the vehicle's navigation
// system. The commander is optional; without one the endpoint reports
// itself unavailable rather than failing route computation elsewhere.
type PushHandler struct {
	Commander ports.VehicleCommander
}

func (h *PushHandler) Push(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if h.Commander == nil {
		writeError(w, r, http.StatusServiceUnavailable, "vehicle push is not configured")
		return
	}

	var req dto.PushRequest

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

	if req.Lat == nil || req.Lng == nil {
		writeError(w, r, http.StatusBadRequest, "lat and lng are required")
		return
	}
	if *req.Lat < -90 || *req.Lat > 90 || *req.Lng < -180 || *req.Lng > 180 {
		writeError(w, r, http.StatusBadRequest, "lat/lng out of range")
		return
	}

	target := domain.Coordinate{Lat: *req.Lat, Lng: *req.Lng}
	if err := h.Commander.SendNavigation(r.Context(), target, req.Title); err != nil {
		log.Printf("vehicle push failed: %v", err)
		writeError(w, r, http.StatusBadGateway, "vehicle push failed")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "sent"})
}
