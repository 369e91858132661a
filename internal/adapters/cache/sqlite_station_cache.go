package cache

import (
	"context"
	"database/sql"
	"errors"
	"ev-route-service/internal/domain"
	"ev-route-service/internal/ports"
	"fmt"
	"strings"
)

// SQLite-backed cache for per-query-point station lookups. Keys are
// expected to be consistent (e.g., already bucketed) by the caller.
// Rows preserve the upstream result order so cached and fresh lookups
// feed the simulator identically.
type SqliteStationCache struct {
	DB *sql.DB
}

func NewSqliteStationCache(db *sql.DB) *SqliteStationCache {
	return &SqliteStationCache{DB: db}
}

// Fetch the cached records for one query key, in stored order.
// A key with no rows returns an empty slice.
func (s *SqliteStationCache) Get(ctx context.Context, key string) ([]ports.RawStationRecord, error) {
	if s.DB == nil {
		return nil, errors.New("station cache: DB is nil")
	}
	if strings.TrimSpace(key) == "" {
		return nil, errors.New("get station cache: key must not be empty")
	}

	q := `
	SELECT station_id, lat, lng, title, address, usage_type, operator, speed, cost
	FROM station_cache
	WHERE query_key = ?
	ORDER BY position;
	`

	rows, err := s.DB.QueryContext(ctx, q, key)
	if err != nil {
		return nil, fmt.Errorf("get station cache: query station_cache table: %w", err)
	}
	defer rows.Close()

	out := make([]ports.RawStationRecord, 0, 10)
	for rows.Next() {
		var rec ports.RawStationRecord
		var lat, lng float64
		if err := rows.Scan(
			&rec.ID, &lat, &lng,
			&rec.Title, &rec.Address, &rec.UsageType, &rec.Operator, &rec.Speed, &rec.Cost,
		); err != nil {
			return nil, fmt.Errorf("get station cache: scan row: %w", err)
		}
		rec.Location = domain.Coordinate{Lat: lat, Lng: lng}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get station cache: row iteration: %w", err)
	}

	return out, nil
}

// Store the records for one query key, replacing any prior rows.
func (s *SqliteStationCache) Put(ctx context.Context, key string, records []ports.RawStationRecord) error {
	if s.DB == nil {
		return errors.New("station cache: DB is nil")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("insert station cache: key must not be empty")
	}
	if len(records) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert station cache: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM station_cache WHERE query_key = ?;`, key); err != nil {
		return fmt.Errorf("insert station cache: clear key: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO station_cache (
		query_key, position, station_id, lat, lng, title, address, usage_type, operator, speed, cost
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("insert station cache: db prepare: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		if _, err := stmt.ExecContext(ctx,
			key, i, rec.ID, rec.Location.Lat, rec.Location.Lng,
			rec.Title, rec.Address, rec.UsageType, rec.Operator, rec.Speed, rec.Cost,
		); err != nil {
			return fmt.Errorf("insert station cache station_id=%q: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert station cache commit: %w", err)
	}

	return nil
}
