package repositories

import (
	"context"
	"database/sql"
	"errors"
	"ev-route-service/internal/domain"
	"fmt"
)

// SQLite-backed implementation of the VehicleRepository port.
type SqliteVehicleRepository struct{ DB *sql.DB }

func NewSqliteVehicleRepository(db *sql.DB) *SqliteVehicleRepository {
	return &SqliteVehicleRepository{DB: db}
}

// Return all vehicle profiles in the catalog.
func (s *SqliteVehicleRepository) ListVehicles(ctx context.Context) ([]domain.VehicleProfile, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite vehicle repository: DB is nil")
	}

	query := `
	SELECT
		name,
		battery_kwh,
		wh_per_km
	FROM vehicles
	ORDER BY name;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: query vehicles table: %w", err)
	}
	defer rows.Close()

	vehicles := make([]domain.VehicleProfile, 0, 8)
	for rows.Next() {
		var v domain.VehicleProfile
		if err := rows.Scan(&v.Name, &v.BatteryKWh, &v.ConsumptionWhKm); err != nil {
			return nil, fmt.Errorf("list vehicles: scan row: %w", err)
		}
		vehicles = append(vehicles, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list vehicles: row iteration: %w", err)
	}

	return vehicles, nil
}

// Return a single vehicle profile by model name.
func (s *SqliteVehicleRepository) GetVehicle(ctx context.Context, name string) (domain.VehicleProfile, error) {
	if s.DB == nil {
		return domain.VehicleProfile{}, errors.New("sqlite vehicle repository: DB is nil")
	}

	query := `
	SELECT
		name,
		battery_kwh,
		wh_per_km
	FROM vehicles
	WHERE name = ?;
	`

	var v domain.VehicleProfile
	err := s.DB.QueryRowContext(ctx, query, name).Scan(&v.Name, &v.BatteryKWh, &v.ConsumptionWhKm)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.VehicleProfile{}, fmt.Errorf("get vehicle: unknown vehicle %q", name)
	}
	if err != nil {
		return domain.VehicleProfile{}, fmt.Errorf("get vehicle %q: %w", name, err)
	}

	return v, nil
}
