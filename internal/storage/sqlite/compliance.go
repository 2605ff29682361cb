package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mmynk/fueleu/internal/models"
	"github.com/mmynk/fueleu/internal/storage"
)

// SaveCompliance appends a compliance balance record.
func (s *SQLiteStore) SaveCompliance(ctx context.Context, cb *models.ComplianceBalance) error {
	if cb.CreatedAt.IsZero() {
		cb.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO ship_compliance (ship_id, year, cb, created_at) VALUES (?, ?, ?, ?)",
		cb.ShipID, cb.Year, cb.CB, toUnix(cb.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert compliance: %w", err)
	}

	return nil
}

// GetCompliance retrieves the most recently saved balance for a ship and year.
func (s *SQLiteStore) GetCompliance(ctx context.Context, shipID string, year int) (*models.ComplianceBalance, error) {
	cb := &models.ComplianceBalance{}
	var createdAt int64

	err := s.db.QueryRowContext(ctx,
		`SELECT ship_id, year, cb, created_at FROM ship_compliance
		 WHERE ship_id = ? AND year = ? ORDER BY seq DESC LIMIT 1`,
		shipID, year,
	).Scan(&cb.ShipID, &cb.Year, &cb.CB, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("compliance for %s in %d: %w", shipID, year, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get compliance: %w", err)
	}

	cb.Status = models.StatusOf(cb.CB)
	cb.CreatedAt = fromUnix(createdAt)
	return cb, nil
}
