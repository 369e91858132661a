package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Postgres flavor of the schema and the catalog seeding, used by the
// dbtool when deploying against a shared database instead of the local
// SQLite file.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init pg schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init pg schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		`
		CREATE TABLE IF NOT EXISTS vehicles (
			name TEXT PRIMARY KEY,
			battery_kwh DOUBLE PRECISION NOT NULL,
			wh_per_km DOUBLE PRECISION NOT NULL
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS station_cache (
			query_key TEXT NOT NULL,
			position INTEGER NOT NULL,
			station_id TEXT NOT NULL,
			lat DOUBLE PRECISION NOT NULL,
			lng DOUBLE PRECISION NOT NULL,
			title TEXT NOT NULL,
			address TEXT NOT NULL,
			usage_type TEXT NOT NULL,
			operator TEXT NOT NULL,
			speed TEXT NOT NULL,
			cost TEXT NOT NULL,
			PRIMARY KEY (query_key, position)
		);
		`,
		`
		CREATE INDEX IF NOT EXISTS idx_station_cache_station_id
		ON station_cache(station_id);
		`,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init pg schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init pg schema: commit tx: %w", err)
	}

	return nil
}

// Populate the Postgres vehicle catalog from a JSON file.
func SeedPostgresFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed pg vehicles: read %q: %w", jsonPath, err)
	}

	var data []VehicleSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed pg vehicles: parse json: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed pg vehicles: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
	INSERT INTO vehicles (name, battery_kwh, wh_per_km)
	VALUES ($1, $2, $3)
	ON CONFLICT (name) DO UPDATE
	SET battery_kwh = EXCLUDED.battery_kwh,
		wh_per_km = EXCLUDED.wh_per_km;
	`)
	if err != nil {
		return fmt.Errorf("seed pg vehicles: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, v := range data {
		name := strings.TrimSpace(v.Name)
		if name == "" {
			return fmt.Errorf("seed pg vehicles: item at index %d: name cannot be empty", i+1)
		}
		if v.BatteryKWh <= 0 || v.WhPerKm <= 0 {
			return fmt.Errorf("seed pg vehicles: %q: battery_kwh and wh_per_km must be positive", name)
		}
		if _, err := stmt.Exec(name, v.BatteryKWh, v.WhPerKm); err != nil {
			return fmt.Errorf("seed pg vehicles: insert %q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed pg vehicles: commit tx: %w", err)
	}

	return nil
}
