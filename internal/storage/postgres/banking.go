package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mmynk/fueleu/internal/models"
	"github.com/mmynk/fueleu/internal/storage"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// SaveBankEntry appends a bank entry to the ledger.
func (s *PostgresStore) SaveBankEntry(ctx context.Context, entry *models.BankEntry) error {
	return insertBankEntry(ctx, s.pool, entry)
}

// GetBankEntries retrieves a ship's bank entries, oldest first.
func (s *PostgresStore) GetBankEntries(ctx context.Context, shipID string) ([]*models.BankEntry, error) {
	return queryBankEntries(ctx, s.pool, shipID)
}

// SaveBankApplication appends an application of banked surplus.
func (s *PostgresStore) SaveBankApplication(ctx context.Context, app *models.BankApplication) error {
	return insertBankApplication(ctx, s.pool, app)
}

// GetBankApplications retrieves a ship's bank applications, oldest first.
func (s *PostgresStore) GetBankApplications(ctx context.Context, shipID string) ([]*models.BankApplication, error) {
	return queryBankApplications(ctx, s.pool, shipID)
}

// UpdateLedger reads and appends to a ship's ledger in one transaction.
// A transaction-scoped advisory lock on the ship serializes concurrent updates;
// reads after the lock see everything the previous holder committed.
func (s *PostgresStore) UpdateLedger(ctx context.Context, shipID string, fn storage.LedgerUpdateFunc) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1, hashtext($2))", lockClassLedger, shipID); err != nil {
			return fmt.Errorf("failed to lock ledger for %s: %w", shipID, err)
		}

		entries, err := queryBankEntries(ctx, tx, shipID)
		if err != nil {
			return err
		}
		apps, err := queryBankApplications(ctx, tx, shipID)
		if err != nil {
			return err
		}

		change, err := fn(&storage.Ledger{Entries: entries, Applications: apps})
		if err != nil {
			return err
		}
		if change == nil {
			return nil
		}

		if change.Entry != nil {
			if err := insertBankEntry(ctx, tx, change.Entry); err != nil {
				return err
			}
		}
		if change.Application != nil {
			if err := insertBankApplication(ctx, tx, change.Application); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertBankEntry(ctx context.Context, q querier, entry *models.BankEntry) error {
	if entry.Amount <= 0 {
		return fmt.Errorf("bank entry amount must be positive, got %f", entry.Amount)
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := q.Exec(ctx,
		"INSERT INTO bank_entries (id, ship_id, year, amount, created_at) VALUES ($1, $2, $3, $4, $5)",
		entry.ID, entry.ShipID, entry.Year, entry.Amount, entry.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert bank entry: %w", err)
	}
	return nil
}

func queryBankEntries(ctx context.Context, q querier, shipID string) ([]*models.BankEntry, error) {
	rows, err := q.Query(ctx,
		`SELECT id, ship_id, year, amount, created_at FROM bank_entries
		 WHERE ship_id = $1 ORDER BY created_at, id`,
		shipID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get bank entries: %w", err)
	}
	defer rows.Close()

	var entries []*models.BankEntry
	for rows.Next() {
		entry := &models.BankEntry{}
		var createdAt int64
		if err := rows.Scan(&entry.ID, &entry.ShipID, &entry.Year, &entry.Amount, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan bank entry: %w", err)
		}
		entry.CreatedAt = time.Unix(0, createdAt).UTC()
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bank entries: %w", err)
	}
	return entries, nil
}

func insertBankApplication(ctx context.Context, q querier, app *models.BankApplication) error {
	if app.Amount <= 0 {
		return fmt.Errorf("bank application amount must be positive, got %f", app.Amount)
	}
	if app.ID == "" {
		app.ID = uuid.New().String()
	}
	if app.CreatedAt.IsZero() {
		app.CreatedAt = time.Now().UTC()
	}

	_, err := q.Exec(ctx,
		"INSERT INTO bank_applications (id, ship_id, year, amount, created_at) VALUES ($1, $2, $3, $4, $5)",
		app.ID, app.ShipID, app.Year, app.Amount, app.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert bank application: %w", err)
	}
	return nil
}

func queryBankApplications(ctx context.Context, q querier, shipID string) ([]*models.BankApplication, error) {
	rows, err := q.Query(ctx,
		`SELECT id, ship_id, year, amount, created_at FROM bank_applications
		 WHERE ship_id = $1 ORDER BY created_at, id`,
		shipID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get bank applications: %w", err)
	}
	defer rows.Close()

	var apps []*models.BankApplication
	for rows.Next() {
		app := &models.BankApplication{}
		var createdAt int64
		if err := rows.Scan(&app.ID, &app.ShipID, &app.Year, &app.Amount, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan bank application: %w", err)
		}
		app.CreatedAt = time.Unix(0, createdAt).UTC()
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bank applications: %w", err)
	}
	return apps, nil
}
