package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createVehiclesQuery := `
	CREATE TABLE IF NOT EXISTS vehicles (
		name TEXT PRIMARY KEY,
		battery_kwh REAL NOT NULL,
		wh_per_km REAL NOT NULL
	);
	`

	createStationCacheQuery := `
	CREATE TABLE IF NOT EXISTS station_cache (
		query_key TEXT NOT NULL,
		position INTEGER NOT NULL,
		station_id TEXT NOT NULL,
		lat REAL NOT NULL,
		lng REAL NOT NULL,
		title TEXT NOT NULL,
		address TEXT NOT NULL,
		usage_type TEXT NOT NULL,
		operator TEXT NOT NULL,
		speed TEXT NOT NULL,
		cost TEXT NOT NULL,
		PRIMARY KEY (query_key, position)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_station_cache_station_id
	ON station_cache(station_id);
	`

	statements := []string{
		createVehiclesQuery,
		createStationCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type VehicleSeed struct {
	Name       string  `json:"name"`
	BatteryKWh float64 `json:"battery_kwh"`
	WhPerKm    float64 `json:"wh_per_km"`
}

// Populate the vehicle catalog from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed vehicles: read %q: %w", jsonPath, err)
	}

	var data []VehicleSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed vehicles: parse json: %w", err)
	}

	rows := make([]VehicleSeed, 0, len(data))
	for i, item := range data {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return fmt.Errorf("seed vehicles: item at index %d: name cannot be empty", i+1)
		}
		if item.BatteryKWh <= 0 || item.WhPerKm <= 0 {
			return fmt.Errorf("seed vehicles: %q: battery_kwh and wh_per_km must be positive", name)
		}
		rows = append(rows, VehicleSeed{Name: name, BatteryKWh: item.BatteryKWh, WhPerKm: item.WhPerKm})
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed vehicles: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT OR REPLACE INTO vehicles (
		name,
		battery_kwh,
		wh_per_km
	)
	VALUES (?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed vehicles: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, v := range rows {
		if _, err := stmt.Exec(v.Name, v.BatteryKWh, v.WhPerKm); err != nil {
			return fmt.Errorf("seed vehicles: insert %q: %w", v.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed vehicles: commit tx: %w", err)
	}

	return nil
}
