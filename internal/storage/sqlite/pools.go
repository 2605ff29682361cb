package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/fueleu/internal/models"
)

// SavePool persists a pool and its members in a single transaction.
func (s *SQLiteStore) SavePool(ctx context.Context, pool *models.Pool) error {
	if pool.ID == "" {
		pool.ID = uuid.New().String()
	}
	if pool.CreatedAt.IsZero() {
		pool.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO pools (id, year, created_at) VALUES (?, ?, ?)",
		pool.ID, pool.Year, toUnix(pool.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert pool: %w", err)
	}

	for i, m := range pool.Members {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO pool_members (pool_id, position, ship_id, cb_before, cb_after)
			 VALUES (?, ?, ?, ?, ?)`,
			pool.ID, i, m.ShipID, m.CBBefore, m.CBAfter,
		)
		if err != nil {
			return fmt.Errorf("failed to insert pool member: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// FindAllPools retrieves every pool for a year with its members.
func (s *SQLiteStore) FindAllPools(ctx context.Context, year int) ([]*models.Pool, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, year, created_at FROM pools WHERE year = ? ORDER BY created_at DESC, id",
		year,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list pools: %w", err)
	}

	var pools []*models.Pool
	byID := make(map[string]*models.Pool)
	for rows.Next() {
		pool := &models.Pool{}
		var createdAt int64
		if err := rows.Scan(&pool.ID, &pool.Year, &createdAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan pool: %w", err)
		}
		pool.CreatedAt = fromUnix(createdAt)
		pool.Members = []models.PoolMember{}
		pools = append(pools, pool)
		byID[pool.ID] = pool
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pools: %w", err)
	}

	if len(pools) == 0 {
		return pools, nil
	}

	// Members for all pools of the year in one query; the store runs on a single connection.
	memberRows, err := s.db.QueryContext(ctx,
		`SELECT m.pool_id, m.ship_id, m.cb_before, m.cb_after
		 FROM pool_members m JOIN pools p ON p.id = m.pool_id
		 WHERE p.year = ? ORDER BY m.pool_id, m.position`,
		year,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get pool members: %w", err)
	}
	defer memberRows.Close()

	for memberRows.Next() {
		var poolID string
		var m models.PoolMember
		if err := memberRows.Scan(&poolID, &m.ShipID, &m.CBBefore, &m.CBAfter); err != nil {
			return nil, fmt.Errorf("failed to scan pool member: %w", err)
		}
		if pool, ok := byID[poolID]; ok {
			pool.Members = append(pool.Members, m)
		}
	}
	if err := memberRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pool members: %w", err)
	}

	return pools, nil
}
