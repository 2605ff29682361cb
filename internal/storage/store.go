// Package storage provides abstractions for persistent data storage.
package storage

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

import (
	"context"
	"errors"

	"github.com/mmynk/fueleu/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// RouteStore holds voyage routes and the baseline marker.
type RouteStore interface {
	// ListRoutes returns every route ordered by route ID, then year.
	ListRoutes(ctx context.Context) ([]*models.Route, error)

	// GetRoute retrieves a route by its row ID.
	// Returns ErrNotFound if no such route exists.
	GetRoute(ctx context.Context, id string) (*models.Route, error)

	// FindRoute retrieves the route sailed by a ship in a year.
	// Returns ErrNotFound if no such route exists.
	FindRoute(ctx context.Context, routeID string, year int) (*models.Route, error)

	// CreateRoute persists a new route. The route.ID field will be populated by the store.
	CreateRoute(ctx context.Context, route *models.Route) error

	// SetBaseline makes the given route the only baseline.
	// Returns ErrNotFound if the route does not exist, leaving the previous baseline in place.
	SetBaseline(ctx context.Context, id string) error

	// GetBaseline returns the current baseline route.
	// Returns ErrNotFound if none is set.
	GetBaseline(ctx context.Context) (*models.Route, error)
}

// ComplianceStore holds compliance balances and the banking ledger.
type ComplianceStore interface {
	// SaveCompliance appends a balance record. The newest record for a
	// (ship, year) supersedes older ones.
	SaveCompliance(ctx context.Context, cb *models.ComplianceBalance) error

	// GetCompliance returns the latest balance for a ship and year.
	// Returns ErrNotFound if none was ever calculated.
	GetCompliance(ctx context.Context, shipID string, year int) (*models.ComplianceBalance, error)

	// SaveBankEntry appends a bank entry. The entry.ID field will be populated by the store.
	SaveBankEntry(ctx context.Context, entry *models.BankEntry) error

	// GetBankEntries returns a ship's bank entries, oldest first.
	GetBankEntries(ctx context.Context, shipID string) ([]*models.BankEntry, error)

	// SaveBankApplication appends an application of banked surplus.
	SaveBankApplication(ctx context.Context, app *models.BankApplication) error

	// GetBankApplications returns a ship's bank applications, oldest first.
	GetBankApplications(ctx context.Context, shipID string) ([]*models.BankApplication, error)

	// UpdateLedger loads the ship's ledger, hands it to fn and appends what fn
	// returns, all in one transaction. Updates for the same ship run one at a
	// time. If fn fails, its error is returned as is and nothing is written.
	// fn must not call back into the store.
	UpdateLedger(ctx context.Context, shipID string, fn LedgerUpdateFunc) error
}

// Ledger is a ship's banking history.
type Ledger struct {
	Entries      []*models.BankEntry
	Applications []*models.BankApplication
}

// LedgerAppend holds the records a ledger update writes. Nil fields are skipped.
type LedgerAppend struct {
	Entry       *models.BankEntry
	Application *models.BankApplication
}

// LedgerUpdateFunc decides what to append given the current ledger.
type LedgerUpdateFunc func(ledger *Ledger) (*LedgerAppend, error)

// PoolStore holds pool allocation results.
type PoolStore interface {
	// SavePool persists a pool and all of its members in one transaction.
	// The pool.ID and pool.CreatedAt fields will be populated by the store if unset.
	SavePool(ctx context.Context, pool *models.Pool) error

	// FindAllPools returns the pools for a year, newest first, members in allocation order.
	FindAllPools(ctx context.Context, year int) ([]*models.Pool, error)
}

// Store defines the full persistence surface.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL)
// without changing the service layer.
type Store interface {
	RouteStore
	ComplianceStore
	PoolStore

	// Close releases any resources held by the store.
	Close() error
}
