package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/fueleu/internal/models"
	"github.com/mmynk/fueleu/internal/storage"
)

const routeColumns = `id, route_id, vessel_type, fuel_type, year, ghg_intensity,
	fuel_consumption, distance, total_emissions, is_baseline`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoute(row rowScanner) (*models.Route, error) {
	r := &models.Route{}
	err := row.Scan(&r.ID, &r.RouteID, &r.VesselType, &r.FuelType, &r.Year, &r.GHGIntensity,
		&r.FuelConsumption, &r.Distance, &r.TotalEmissions, &r.IsBaseline)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// CreateRoute persists a new route to the database.
func (s *SQLiteStore) CreateRoute(ctx context.Context, route *models.Route) error {
	if route.ID == "" {
		route.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO routes (`+routeColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		route.ID, route.RouteID, route.VesselType, route.FuelType, route.Year, route.GHGIntensity,
		route.FuelConsumption, route.Distance, route.TotalEmissions, route.IsBaseline,
	)
	if err != nil {
		return fmt.Errorf("failed to insert route: %w", err)
	}

	return nil
}

// ListRoutes retrieves all routes.
func (s *SQLiteStore) ListRoutes(ctx context.Context) ([]*models.Route, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+routeColumns+` FROM routes ORDER BY route_id, year`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}
	defer rows.Close()

	var routes []*models.Route
	for rows.Next() {
		route, err := scanRoute(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan route: %w", err)
		}
		routes = append(routes, route)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate routes: %w", err)
	}

	return routes, nil
}

// GetRoute retrieves a route by its row ID.
func (s *SQLiteStore) GetRoute(ctx context.Context, id string) (*models.Route, error) {
	route, err := scanRoute(s.db.QueryRowContext(ctx,
		`SELECT `+routeColumns+` FROM routes WHERE id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("route %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get route: %w", err)
	}
	return route, nil
}

// FindRoute retrieves the route a ship sailed in a given year.
func (s *SQLiteStore) FindRoute(ctx context.Context, routeID string, year int) (*models.Route, error) {
	route, err := scanRoute(s.db.QueryRowContext(ctx,
		`SELECT `+routeColumns+` FROM routes WHERE route_id = ? AND year = ?`, routeID, year,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("route %s for %d: %w", routeID, year, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find route: %w", err)
	}
	return route, nil
}

// SetBaseline clears the current baseline and marks the given route, in one transaction.
func (s *SQLiteStore) SetBaseline(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "UPDATE routes SET is_baseline = 0 WHERE is_baseline = 1"); err != nil {
		return fmt.Errorf("failed to clear baseline: %w", err)
	}

	result, err := tx.ExecContext(ctx, "UPDATE routes SET is_baseline = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to set baseline: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("route %s: %w", id, storage.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetBaseline retrieves the current baseline route.
func (s *SQLiteStore) GetBaseline(ctx context.Context) (*models.Route, error) {
	route, err := scanRoute(s.db.QueryRowContext(ctx,
		`SELECT `+routeColumns+` FROM routes WHERE is_baseline = 1`,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("baseline route: %w", storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get baseline: %w", err)
	}
	return route, nil
}
