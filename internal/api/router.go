package api

import (
	"ev-route-service/internal/api/handlers"
	"ev-route-service/internal/ports"
	"ev-route-service/internal/services"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	vehicles ports.VehicleRepository,
	orchestrator *services.Orchestrator,
	commander ports.VehicleCommander,
) http.Handler {
	mux := http.NewServeMux()

	vehicleHandler := &handlers.VehicleHandler{Repo: vehicles}
	routeHandler := &handlers.RouteHandler{
		Vehicles:     vehicles,
		Orchestrator: orchestrator,
	}
	pushHandler := &handlers.PushHandler{Commander: commander}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/vehicles", vehicleHandler.List)
	mux.HandleFunc("/routes", routeHandler.Compute)
	mux.HandleFunc("/push", pushHandler.Push)

	return loggingMiddleware(mux)
}
