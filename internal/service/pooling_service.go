package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mmynk/fueleu/internal/calculator"
	"github.com/mmynk/fueleu/internal/metrics"
	"github.com/mmynk/fueleu/internal/models"
	"github.com/mmynk/fueleu/internal/storage"
)

const (
	defaultFetchTimeout     = 5 * time.Second
	defaultFetchConcurrency = 8
)

// ComplianceReader is the read side of the compliance store used by pooling.
type ComplianceReader interface {
	GetCompliance(ctx context.Context, shipID string, year int) (*models.ComplianceBalance, error)
}

// PoolingService forms pools: it fetches each ship's balance, runs the
// allocation and persists the result.
type PoolingService struct {
	compliance ComplianceReader
	pools      storage.PoolStore

	metrics          *metrics.Metrics
	fetchTimeout     time.Duration
	fetchConcurrency int
}

// PoolingOption configures a PoolingService.
type PoolingOption func(*PoolingService)

// WithFetchTimeout bounds the compliance fetch fan-out.
func WithFetchTimeout(d time.Duration) PoolingOption {
	return func(s *PoolingService) {
		if d > 0 {
			s.fetchTimeout = d
		}
	}
}

// WithFetchConcurrency caps the number of concurrent compliance lookups.
func WithFetchConcurrency(n int) PoolingOption {
	return func(s *PoolingService) {
		if n > 0 {
			s.fetchConcurrency = n
		}
	}
}

// WithPoolingMetrics records pool outcomes and fetch latency.
func WithPoolingMetrics(m *metrics.Metrics) PoolingOption {
	return func(s *PoolingService) {
		s.metrics = m
	}
}

// NewPoolingService creates a PoolingService.
func NewPoolingService(compliance ComplianceReader, pools storage.PoolStore, opts ...PoolingOption) (*PoolingService, error) {
	if compliance == nil {
		return nil, errors.New("compliance store is required")
	}
	if pools == nil {
		return nil, errors.New("pool store is required")
	}

	s := &PoolingService{
		compliance:       compliance,
		pools:            pools,
		fetchTimeout:     defaultFetchTimeout,
		fetchConcurrency: defaultFetchConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// CreatePool allocates surplus across the given ships for a year and persists the pool.
// Nothing is persisted unless every step succeeds.
func (s *PoolingService) CreatePool(ctx context.Context, shipIDs []string, year int) (*models.Pool, error) {
	slog.Info("CreatePool request received", "year", year, "ships_count", len(shipIDs))

	if err := validatePoolRequest(shipIDs, year); err != nil {
		s.metrics.IncrementPoolOutcome(metrics.OutcomeInvalid)
		slog.Warn("CreatePool rejected", "year", year, "error", err)
		return nil, err
	}

	balances, err := s.fetchBalances(ctx, shipIDs, year)
	if err != nil {
		var missing *MissingComplianceError
		if errors.As(err, &missing) {
			s.metrics.IncrementPoolOutcome(metrics.OutcomeMissing)
			slog.Warn("CreatePool missing compliance", "year", year, "ship_ids", missing.ShipIDs)
		} else {
			s.metrics.IncrementPoolOutcome(metrics.OutcomeError)
			slog.Error("CreatePool fetch failed", "year", year, "error", err)
		}
		return nil, err
	}

	alloc, err := calculator.AllocatePool(balances)
	if err != nil {
		var infeasible *calculator.InfeasiblePoolError
		if errors.As(err, &infeasible) {
			s.metrics.IncrementPoolOutcome(metrics.OutcomeInfeasible)
			slog.Warn("CreatePool infeasible", "year", year, "total_cb", infeasible.Total)
		} else {
			s.metrics.IncrementPoolOutcome(metrics.OutcomeInvariantError)
			slog.Error("CreatePool allocation invariant violated", "year", year, "error", err)
		}
		return nil, err
	}

	pool := &models.Pool{
		Year:    year,
		Members: make([]models.PoolMember, len(alloc.Members)),
	}
	for i, m := range alloc.Members {
		pool.Members[i] = models.PoolMember{ShipID: m.ShipID, CBBefore: m.CBBefore, CBAfter: m.CBAfter}
	}

	if err := s.pools.SavePool(ctx, pool); err != nil {
		s.metrics.IncrementPoolOutcome(metrics.OutcomeError)
		slog.Error("CreatePool save failed", "year", year, "error", err)
		return nil, fmt.Errorf("failed to save pool: %w", err)
	}

	s.metrics.IncrementPoolOutcome(metrics.OutcomeCreated)
	s.metrics.ObservePoolSize(len(pool.Members))
	slog.Info("Pool created",
		"pool_id", pool.ID,
		"year", year,
		"members", len(pool.Members),
		"transfers", len(alloc.Transfers),
		"total_before", pool.TotalBefore(),
		"total_after", pool.TotalAfter(),
	)

	return pool, nil
}

// ListPools returns the pools formed for a year.
func (s *PoolingService) ListPools(ctx context.Context, year int) ([]*models.Pool, error) {
	slog.Info("ListPools request received", "year", year)

	if year <= 0 {
		return nil, invalidf("year must be positive, got %d", year)
	}

	pools, err := s.pools.FindAllPools(ctx, year)
	if err != nil {
		slog.Error("ListPools failed", "year", year, "error", err)
		return nil, fmt.Errorf("failed to list pools: %w", err)
	}
	if pools == nil {
		pools = []*models.Pool{}
	}

	slog.Info("ListPools successful", "year", year, "count", len(pools))
	return pools, nil
}

func validatePoolRequest(shipIDs []string, year int) error {
	if len(shipIDs) == 0 {
		return invalidf("at least one ship is required")
	}
	if year <= 0 {
		return invalidf("year must be positive, got %d", year)
	}

	seen := make(map[string]bool, len(shipIDs))
	for _, id := range shipIDs {
		if id == "" {
			return invalidf("ship ID must not be empty")
		}
		if seen[id] {
			return invalidf("duplicate ship ID %s", id)
		}
		seen[id] = true
	}
	return nil
}

// fetchBalances loads every ship's balance concurrently under the fetch timeout.
// The result is indexed like shipIDs.
func (s *PoolingService) fetchBalances(ctx context.Context, shipIDs []string, year int) ([]calculator.ShipBalance, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveFetchLatency(time.Since(start)) }()

	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	balances := make([]calculator.ShipBalance, len(shipIDs))
	resolved := make([]bool, len(shipIDs))

	var mu sync.Mutex
	var missing []string

	g, gctx := errgroup.WithContext(fetchCtx)
	g.SetLimit(s.fetchConcurrency)

	for i, id := range shipIDs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			cb, err := s.compliance.GetCompliance(gctx, id, year)
			if errors.Is(err, storage.ErrNotFound) {
				mu.Lock()
				missing = append(missing, id)
				resolved[i] = true
				mu.Unlock()
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to get compliance for %s: %w", id, err)
			}

			mu.Lock()
			balances[i] = calculator.ShipBalance{ShipID: id, CB: cb.CB}
			resolved[i] = true
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		// The fetch deadline expired while the caller's context is still live.
		if errors.Is(fetchCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			unresolved := append([]string(nil), missing...)
			for i, ok := range resolved {
				if !ok {
					unresolved = append(unresolved, shipIDs[i])
				}
			}
			sort.Strings(unresolved)
			return nil, &MissingComplianceError{Year: year, ShipIDs: unresolved, Cause: err}
		}
		return nil, err
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &MissingComplianceError{Year: year, ShipIDs: missing}
	}

	return balances, nil
}
