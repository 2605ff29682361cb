package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/mmynk/fueleu/internal/calculator"
	"github.com/mmynk/fueleu/internal/config"
	"github.com/mmynk/fueleu/internal/metrics"
	"github.com/mmynk/fueleu/internal/models"
	"github.com/mmynk/fueleu/internal/storage"
)

var epsilon = decimal.NewFromFloat(calculator.Epsilon)

// ComplianceService computes compliance balances and runs the banking ledger.
type ComplianceService struct {
	routes  storage.RouteStore
	store   storage.ComplianceStore
	regime  *config.Regime
	metrics *metrics.Metrics
}

// NewComplianceService creates a ComplianceService. m may be nil.
func NewComplianceService(routes storage.RouteStore, store storage.ComplianceStore, regime *config.Regime, m *metrics.Metrics) *ComplianceService {
	return &ComplianceService{routes: routes, store: store, regime: regime, metrics: m}
}

// CalculateCompliance computes a ship's balance from its route for the year,
// stores it as the latest record and returns it.
func (s *ComplianceService) CalculateCompliance(ctx context.Context, shipID string, year int) (*models.ComplianceBalance, error) {
	slog.Info("CalculateCompliance request received", "ship_id", shipID, "year", year)

	if err := validateShipYear(shipID, year); err != nil {
		return nil, err
	}

	route, err := s.routes.FindRoute(ctx, shipID, year)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("route for ship %s in %d: %w", shipID, year, storage.ErrNotFound)
	}
	if err != nil {
		slog.Error("CalculateCompliance failed", "ship_id", shipID, "error", err)
		return nil, fmt.Errorf("failed to find route: %w", err)
	}

	target, err := s.regime.TargetFor(year)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	cbValue, err := calculator.CalculateComplianceBalance(
		calculator.RouteUsage{GHGIntensity: route.GHGIntensity, FuelConsumption: route.FuelConsumption},
		calculator.ComplianceParams{TargetIntensity: target, EnergyDensity: s.regime.EnergyDensity},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate compliance balance: %w", err)
	}

	cb := models.NewComplianceBalance(shipID, year, cbValue)
	if err := s.store.SaveCompliance(ctx, cb); err != nil {
		slog.Error("CalculateCompliance save failed", "ship_id", shipID, "error", err)
		return nil, fmt.Errorf("failed to save compliance: %w", err)
	}

	slog.Info("Compliance calculated", "ship_id", shipID, "year", year, "cb", cb.CB, "status", cb.Status)
	return cb, nil
}

// GetCompliance returns the latest stored balance for a ship and year.
func (s *ComplianceService) GetCompliance(ctx context.Context, shipID string, year int) (*models.ComplianceBalance, error) {
	if err := validateShipYear(shipID, year); err != nil {
		return nil, err
	}
	return s.latestCompliance(ctx, shipID, year)
}

// BankSurplus banks the part of a ship's surplus for the year that is not banked yet.
func (s *ComplianceService) BankSurplus(ctx context.Context, shipID string, year int) (*models.BankEntry, error) {
	slog.Info("BankSurplus request received", "ship_id", shipID, "year", year)

	if err := validateShipYear(shipID, year); err != nil {
		return nil, err
	}

	cb, err := s.latestCompliance(ctx, shipID, year)
	if err != nil {
		return nil, err
	}

	// The read of what is already banked and the append happen under one
	// ledger update, so concurrent requests cannot bank the same surplus twice.
	var entry *models.BankEntry
	err = s.store.UpdateLedger(ctx, shipID, func(l *storage.Ledger) (*storage.LedgerAppend, error) {
		banked := newBankLedger(l).bankedFor(year)
		remaining := decimal.NewFromFloat(cb.CB).Sub(banked)
		if remaining.LessThanOrEqual(epsilon) {
			slog.Warn("BankSurplus rejected", "ship_id", shipID, "year", year, "cb", cb.CB, "banked", banked.InexactFloat64())
			return nil, ErrNothingToBank
		}

		entry = &models.BankEntry{ShipID: shipID, Year: year, Amount: remaining.InexactFloat64()}
		return &storage.LedgerAppend{Entry: entry}, nil
	})
	if errors.Is(err, ErrNothingToBank) {
		return nil, err
	}
	if err != nil {
		slog.Error("BankSurplus save failed", "ship_id", shipID, "error", err)
		return nil, fmt.Errorf("failed to save bank entry: %w", err)
	}

	s.metrics.AddBanked(entry.Amount)
	slog.Info("Surplus banked", "ship_id", shipID, "year", year, "amount", entry.Amount, "entry_id", entry.ID)
	return entry, nil
}

// ListBankEntries returns a ship's bank entries, oldest first.
func (s *ComplianceService) ListBankEntries(ctx context.Context, shipID string) ([]*models.BankEntry, error) {
	if shipID == "" {
		return nil, invalidf("shipId is required")
	}

	entries, err := s.store.GetBankEntries(ctx, shipID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bank entries: %w", err)
	}
	if entries == nil {
		entries = []*models.BankEntry{}
	}
	return entries, nil
}

// ApplyBanked spends surplus banked in earlier years against the ship's deficit
// for year. With a nil amount, as much as possible is applied. The applied
// amount never exceeds what is available or what the deficit needs.
func (s *ComplianceService) ApplyBanked(ctx context.Context, shipID string, year int, amount *float64) (*models.BankApplication, error) {
	slog.Info("ApplyBanked request received", "ship_id", shipID, "year", year)

	if err := validateShipYear(shipID, year); err != nil {
		return nil, err
	}
	if amount != nil && *amount <= 0 {
		return nil, invalidf("amount must be positive, got %f", *amount)
	}

	cb, err := s.latestCompliance(ctx, shipID, year)
	if err != nil {
		return nil, err
	}

	var app *models.BankApplication
	err = s.store.UpdateLedger(ctx, shipID, func(l *storage.Ledger) (*storage.LedgerAppend, error) {
		ledger := newBankLedger(l)

		adjusted := decimal.NewFromFloat(cb.CB).Add(ledger.appliedTo(year))
		if adjusted.GreaterThanOrEqual(epsilon.Neg()) {
			return nil, ErrNotInDeficit
		}

		available := ledger.availableFor(year)
		if available.LessThanOrEqual(epsilon) {
			return nil, ErrNoBankedSurplus
		}

		apply := decimal.Min(available, adjusted.Neg())
		if amount != nil {
			apply = decimal.Min(apply, decimal.NewFromFloat(*amount))
		}

		app = &models.BankApplication{ShipID: shipID, Year: year, Amount: apply.InexactFloat64()}
		return &storage.LedgerAppend{Application: app}, nil
	})
	if errors.Is(err, ErrNotInDeficit) || errors.Is(err, ErrNoBankedSurplus) {
		slog.Warn("ApplyBanked rejected", "ship_id", shipID, "year", year, "error", err)
		return nil, err
	}
	if err != nil {
		slog.Error("ApplyBanked save failed", "ship_id", shipID, "error", err)
		return nil, fmt.Errorf("failed to save bank application: %w", err)
	}

	s.metrics.AddApplied(app.Amount)
	slog.Info("Banked surplus applied", "ship_id", shipID, "year", year, "amount", app.Amount)
	return app, nil
}

// GetAdjustedCompliance returns the ship's balance after banked surplus applied to the year.
func (s *ComplianceService) GetAdjustedCompliance(ctx context.Context, shipID string, year int) (*models.AdjustedCompliance, error) {
	slog.Info("GetAdjustedCompliance request received", "ship_id", shipID, "year", year)

	if err := validateShipYear(shipID, year); err != nil {
		return nil, err
	}

	cb, err := s.latestCompliance(ctx, shipID, year)
	if err != nil {
		return nil, err
	}

	ledger, err := s.loadLedger(ctx, shipID)
	if err != nil {
		return nil, err
	}

	applied := ledger.appliedTo(year)
	after := decimal.NewFromFloat(cb.CB).Add(applied).InexactFloat64()

	return &models.AdjustedCompliance{
		ShipID:   shipID,
		Year:     year,
		CBBefore: cb.CB,
		Applied:  applied.InexactFloat64(),
		CBAfter:  after,
		Status:   models.StatusOf(after),
	}, nil
}

func (s *ComplianceService) latestCompliance(ctx context.Context, shipID string, year int) (*models.ComplianceBalance, error) {
	cb, err := s.store.GetCompliance(ctx, shipID, year)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, &MissingComplianceError{Year: year, ShipIDs: []string{shipID}}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get compliance: %w", err)
	}
	return cb, nil
}

// bankLedger is a ship's full banking history.
type bankLedger struct {
	entries []*models.BankEntry
	apps    []*models.BankApplication
}

func newBankLedger(l *storage.Ledger) *bankLedger {
	return &bankLedger{entries: l.Entries, apps: l.Applications}
}

func (s *ComplianceService) loadLedger(ctx context.Context, shipID string) (*bankLedger, error) {
	entries, err := s.store.GetBankEntries(ctx, shipID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bank entries: %w", err)
	}
	apps, err := s.store.GetBankApplications(ctx, shipID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bank applications: %w", err)
	}
	return &bankLedger{entries: entries, apps: apps}, nil
}

// bankedFor sums the surplus banked from year.
func (l *bankLedger) bankedFor(year int) decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.entries {
		if e.Year == year {
			total = total.Add(decimal.NewFromFloat(e.Amount))
		}
	}
	return total
}

// appliedTo sums the applications made against year.
func (l *bankLedger) appliedTo(year int) decimal.Decimal {
	total := decimal.Zero
	for _, a := range l.apps {
		if a.Year == year {
			total = total.Add(decimal.NewFromFloat(a.Amount))
		}
	}
	return total
}

// availableFor is surplus banked before year minus everything already applied.
func (l *bankLedger) availableFor(year int) decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.entries {
		if e.Year < year {
			total = total.Add(decimal.NewFromFloat(e.Amount))
		}
	}
	for _, a := range l.apps {
		total = total.Sub(decimal.NewFromFloat(a.Amount))
	}
	return total
}

func validateShipYear(shipID string, year int) error {
	if shipID == "" {
		return invalidf("shipId is required")
	}
	if year <= 0 {
		return invalidf("year must be positive, got %d", year)
	}
	return nil
}
