package main

import (
	"database/sql"
	"ev-route-service/internal/adapters/cache"
	"ev-route-service/internal/adapters/directions"
	"ev-route-service/internal/adapters/repositories"
	"ev-route-service/internal/adapters/stations"
	"ev-route-service/internal/adapters/vehiclecmd"
	"ev-route-service/internal/api"
	"ev-route-service/internal/config"
	"ev-route-service/internal/platform/db"
	"ev-route-service/internal/ports"
	"ev-route-service/internal/services"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Google Maps, OpenChargeMap, Tesla)
// behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/vehicles.json")
	port := config.Get("PORT", "8080")

	mapsKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	if strings.TrimSpace(mapsKey) == "" {
		log.Fatal("GOOGLE_MAPS_API_KEY is required")
	}

	ocmKey := os.Getenv("OPENCHARGEMAP_API_KEY")
	if strings.TrimSpace(ocmKey) == "" {
		log.Fatal("OPENCHARGEMAP_API_KEY is required")
	}

	sqldb, err := db.OpenSqlite(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sqldb.Close()

	// Initialize schema and seed the vehicle catalog on startup for local runs.
	if err := initAndSeed(sqldb, seedPath); err != nil {
		log.Fatal(err)
	}

	// The station locator uses a persistent SQLite cache to avoid
	// re-querying OpenChargeMap for the same route points.
	stationCache := cache.NewSqliteStationCache(sqldb)
	locator, err := stations.NewOCMStationLocator(ocmKey, stationCache)
	if err != nil {
		log.Fatal(err)
	}

	provider, err := directions.NewGoogleDirectionsProvider(mapsKey)
	if err != nil {
		log.Fatal(err)
	}

	// Vehicle push is optional: the planner works without a paired car.
	var commander ports.VehicleCommander
	teslaToken := os.Getenv("TESLA_BEARER_TOKEN")
	teslaVehicleID := os.Getenv("TESLA_VEHICLE_ID")
	if teslaToken != "" && teslaVehicleID != "" {
		commander, err = vehiclecmd.NewTeslaCommander(teslaToken, teslaVehicleID)
		if err != nil {
			log.Fatal(err)
		}
		log.Println("Vehicle push enabled")
	}

	repo := repositories.NewSqliteVehicleRepository(sqldb)
	orchestrator := services.NewOrchestrator(provider, locator, services.FixedDetour{Km: 5}, 10*time.Second)
	router := api.NewRouter(repo, orchestrator, commander)

	// Timeouts are tuned for cold-cache route computation (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func initAndSeed(sqldb *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(sqldb); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(sqldb, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
