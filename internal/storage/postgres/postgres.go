// Package postgres provides a PostgreSQL-backed implementation of the storage.Store interface.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mmynk/fueleu/internal/models"
	"github.com/mmynk/fueleu/internal/storage"
)

var _ storage.Store = (*PostgresStore)(nil)

// Advisory lock classes, used as the first key of pg_advisory_xact_lock(int, int).
const (
	lockClassBaseline int32 = 1
	lockClassLedger   int32 = 2
)

// PostgresStore implements storage.Store on a pgx connection pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// New connects to databaseURL and runs migrations.
func New(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func notFound(err error, format string, args ...any) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf(format+": %w", append(args, storage.ErrNotFound)...)
	}
	return nil
}

const routeColumns = `id, route_id, vessel_type, fuel_type, year, ghg_intensity,
	fuel_consumption, distance, total_emissions, is_baseline`

func scanRoute(row pgx.Row) (*models.Route, error) {
	r := &models.Route{}
	err := row.Scan(&r.ID, &r.RouteID, &r.VesselType, &r.FuelType, &r.Year, &r.GHGIntensity,
		&r.FuelConsumption, &r.Distance, &r.TotalEmissions, &r.IsBaseline)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// CreateRoute persists a new route.
func (s *PostgresStore) CreateRoute(ctx context.Context, route *models.Route) error {
	if route.ID == "" {
		route.ID = uuid.New().String()
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO routes (`+routeColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		route.ID, route.RouteID, route.VesselType, route.FuelType, route.Year, route.GHGIntensity,
		route.FuelConsumption, route.Distance, route.TotalEmissions, route.IsBaseline,
	)
	if err != nil {
		return fmt.Errorf("failed to insert route: %w", err)
	}
	return nil
}

// ListRoutes retrieves all routes.
func (s *PostgresStore) ListRoutes(ctx context.Context) ([]*models.Route, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+routeColumns+` FROM routes ORDER BY route_id, year`)
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
func (s *PostgresStore) GetRoute(ctx context.Context, id string) (*models.Route, error) {
	route, err := scanRoute(s.pool.QueryRow(ctx, `SELECT `+routeColumns+` FROM routes WHERE id = $1`, id))
	if nf := notFound(err, "route %s", id); nf != nil {
		return nil, nf
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get route: %w", err)
	}
	return route, nil
}

// FindRoute retrieves the route a ship sailed in a given year.
func (s *PostgresStore) FindRoute(ctx context.Context, routeID string, year int) (*models.Route, error) {
	route, err := scanRoute(s.pool.QueryRow(ctx,
		`SELECT `+routeColumns+` FROM routes WHERE route_id = $1 AND year = $2`, routeID, year))
	if nf := notFound(err, "route %s for %d", routeID, year); nf != nil {
		return nil, nf
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find route: %w", err)
	}
	return route, nil
}

// SetBaseline clears the current baseline and marks the given route, in one transaction.
func (s *PostgresStore) SetBaseline(ctx context.Context, id string) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		// Baseline changes run one at a time; interleaved clears would trip
		// the single-baseline index.
		if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1, 0)", lockClassBaseline); err != nil {
			return fmt.Errorf("failed to lock baseline: %w", err)
		}

		if _, err := tx.Exec(ctx, "UPDATE routes SET is_baseline = FALSE WHERE is_baseline"); err != nil {
			return fmt.Errorf("failed to clear baseline: %w", err)
		}

		tag, err := tx.Exec(ctx, "UPDATE routes SET is_baseline = TRUE WHERE id = $1", id)
		if err != nil {
			return fmt.Errorf("failed to set baseline: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("route %s: %w", id, storage.ErrNotFound)
		}
		return nil
	})
}

// GetBaseline retrieves the current baseline route.
func (s *PostgresStore) GetBaseline(ctx context.Context) (*models.Route, error) {
	route, err := scanRoute(s.pool.QueryRow(ctx, `SELECT `+routeColumns+` FROM routes WHERE is_baseline`))
	if nf := notFound(err, "baseline route"); nf != nil {
		return nil, nf
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get baseline: %w", err)
	}
	return route, nil
}

// SaveCompliance appends a compliance balance record.
func (s *PostgresStore) SaveCompliance(ctx context.Context, cb *models.ComplianceBalance) error {
	if cb.CreatedAt.IsZero() {
		cb.CreatedAt = time.Now().UTC()
	}

	_, err := s.pool.Exec(ctx,
		"INSERT INTO ship_compliance (ship_id, year, cb, created_at) VALUES ($1, $2, $3, $4)",
		cb.ShipID, cb.Year, cb.CB, cb.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert compliance: %w", err)
	}
	return nil
}

// GetCompliance retrieves the most recently saved balance for a ship and year.
func (s *PostgresStore) GetCompliance(ctx context.Context, shipID string, year int) (*models.ComplianceBalance, error) {
	cb := &models.ComplianceBalance{}
	var createdAt int64

	err := s.pool.QueryRow(ctx,
		`SELECT ship_id, year, cb, created_at FROM ship_compliance
		 WHERE ship_id = $1 AND year = $2 ORDER BY seq DESC LIMIT 1`,
		shipID, year,
	).Scan(&cb.ShipID, &cb.Year, &cb.CB, &createdAt)
	if nf := notFound(err, "compliance for %s in %d", shipID, year); nf != nil {
		return nil, nf
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get compliance: %w", err)
	}

	cb.Status = models.StatusOf(cb.CB)
	cb.CreatedAt = time.Unix(0, createdAt).UTC()
	return cb, nil
}

// SavePool persists a pool and its members in a single transaction.
// Members are sent as one batch inside the transaction.
func (s *PostgresStore) SavePool(ctx context.Context, pool *models.Pool) error {
	if pool.ID == "" {
		pool.ID = uuid.New().String()
	}
	if pool.CreatedAt.IsZero() {
		pool.CreatedAt = time.Now().UTC()
	}

	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			"INSERT INTO pools (id, year, created_at) VALUES ($1, $2, $3)",
			pool.ID, pool.Year, pool.CreatedAt.UnixNano(),
		); err != nil {
			return fmt.Errorf("failed to insert pool: %w", err)
		}

		batch := &pgx.Batch{}
		for i, m := range pool.Members {
			batch.Queue(
				`INSERT INTO pool_members (pool_id, position, ship_id, cb_before, cb_after)
				 VALUES ($1, $2, $3, $4, $5)`,
				pool.ID, i, m.ShipID, m.CBBefore, m.CBAfter,
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to insert pool members: %w", err)
		}
		return nil
	})
}

// FindAllPools retrieves every pool for a year with its members.
func (s *PostgresStore) FindAllPools(ctx context.Context, year int) ([]*models.Pool, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT p.id, p.created_at, m.ship_id, m.cb_before, m.cb_after
		 FROM pools p JOIN pool_members m ON m.pool_id = p.id
		 WHERE p.year = $1
		 ORDER BY p.created_at DESC, p.id, m.position`,
		year,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list pools: %w", err)
	}
	defer rows.Close()

	var pools []*models.Pool
	var current *models.Pool
	for rows.Next() {
		var id string
		var createdAt int64
		var m models.PoolMember
		if err := rows.Scan(&id, &createdAt, &m.ShipID, &m.CBBefore, &m.CBAfter); err != nil {
			return nil, fmt.Errorf("failed to scan pool: %w", err)
		}
		if current == nil || current.ID != id {
			current = &models.Pool{ID: id, Year: year, CreatedAt: time.Unix(0, createdAt).UTC()}
			pools = append(pools, current)
		}
		current.Members = append(current.Members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pools: %w", err)
	}
	return pools, nil
}
