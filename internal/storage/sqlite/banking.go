package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/fueleu/internal/models"
	"github.com/mmynk/fueleu/internal/storage"
)

// execQuerier is satisfied by both *sql.DB and *sql.Tx.
type execQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// SaveBankEntry appends a bank entry to the ledger.
func (s *SQLiteStore) SaveBankEntry(ctx context.Context, entry *models.BankEntry) error {
	return insertBankEntry(ctx, s.db, entry)
}

// GetBankEntries retrieves a ship's bank entries, oldest first.
func (s *SQLiteStore) GetBankEntries(ctx context.Context, shipID string) ([]*models.BankEntry, error) {
	return queryBankEntries(ctx, s.db, shipID)
}

// SaveBankApplication appends an application of banked surplus.
func (s *SQLiteStore) SaveBankApplication(ctx context.Context, app *models.BankApplication) error {
	return insertBankApplication(ctx, s.db, app)
}

// GetBankApplications retrieves a ship's bank applications, oldest first.
func (s *SQLiteStore) GetBankApplications(ctx context.Context, shipID string) ([]*models.BankApplication, error) {
	return queryBankApplications(ctx, s.db, shipID)
}

// UpdateLedger reads and appends to a ship's ledger in one transaction.
// The store holds a single connection, so the transaction also serializes
// concurrent updates.
func (s *SQLiteStore) UpdateLedger(ctx context.Context, shipID string, fn storage.LedgerUpdateFunc) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

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

	if change != nil && change.Entry != nil {
		if err := insertBankEntry(ctx, tx, change.Entry); err != nil {
			return err
		}
	}
	if change != nil && change.Application != nil {
		if err := insertBankApplication(ctx, tx, change.Application); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func insertBankEntry(ctx context.Context, q execQuerier, entry *models.BankEntry) error {
	if entry.Amount <= 0 {
		return fmt.Errorf("bank entry amount must be positive, got %f", entry.Amount)
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := q.ExecContext(ctx,
		"INSERT INTO bank_entries (id, ship_id, year, amount, created_at) VALUES (?, ?, ?, ?, ?)",
		entry.ID, entry.ShipID, entry.Year, entry.Amount, toUnix(entry.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert bank entry: %w", err)
	}

	return nil
}

func queryBankEntries(ctx context.Context, q execQuerier, shipID string) ([]*models.BankEntry, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT id, ship_id, year, amount, created_at FROM bank_entries
		 WHERE ship_id = ? ORDER BY created_at, id`,
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
		entry.CreatedAt = fromUnix(createdAt)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bank entries: %w", err)
	}

	return entries, nil
}

func insertBankApplication(ctx context.Context, q execQuerier, app *models.BankApplication) error {
	if app.Amount <= 0 {
		return fmt.Errorf("bank application amount must be positive, got %f", app.Amount)
	}
	if app.ID == "" {
		app.ID = uuid.New().String()
	}
	if app.CreatedAt.IsZero() {
		app.CreatedAt = time.Now().UTC()
	}

	_, err := q.ExecContext(ctx,
		"INSERT INTO bank_applications (id, ship_id, year, amount, created_at) VALUES (?, ?, ?, ?, ?)",
		app.ID, app.ShipID, app.Year, app.Amount, toUnix(app.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert bank application: %w", err)
	}

	return nil
}

func queryBankApplications(ctx context.Context, q execQuerier, shipID string) ([]*models.BankApplication, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT id, ship_id, year, amount, created_at FROM bank_applications
		 WHERE ship_id = ? ORDER BY created_at, id`,
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
		app.CreatedAt = fromUnix(createdAt)
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bank applications: %w", err)
	}

	return apps, nil
}
