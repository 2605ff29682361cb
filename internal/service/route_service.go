package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mmynk/fueleu/internal/calculator"
	"github.com/mmynk/fueleu/internal/config"
	"github.com/mmynk/fueleu/internal/models"
	"github.com/mmynk/fueleu/internal/storage"
)

// RouteService lists routes and compares them against the baseline.
type RouteService struct {
	store  storage.RouteStore
	regime *config.Regime
}

// NewRouteService creates a RouteService.
func NewRouteService(store storage.RouteStore, regime *config.Regime) *RouteService {
	return &RouteService{store: store, regime: regime}
}

// ListRoutes returns all routes.
func (s *RouteService) ListRoutes(ctx context.Context) ([]*models.Route, error) {
	slog.Info("ListRoutes request received")

	routes, err := s.store.ListRoutes(ctx)
	if err != nil {
		slog.Error("ListRoutes failed", "error", err)
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}
	if routes == nil {
		routes = []*models.Route{}
	}

	slog.Info("ListRoutes successful", "count", len(routes))
	return routes, nil
}

// SetBaseline makes the route with the given ID the baseline.
func (s *RouteService) SetBaseline(ctx context.Context, id string) error {
	slog.Info("SetBaseline request received", "route_id", id)

	if id == "" {
		return invalidf("route id is required")
	}

	if err := s.store.SetBaseline(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return err
		}
		slog.Error("SetBaseline failed", "route_id", id, "error", err)
		return fmt.Errorf("failed to set baseline: %w", err)
	}

	slog.Info("Baseline set", "route_id", id)
	return nil
}

// GetComparison compares every route's intensity with the baseline and the target for its year.
func (s *RouteService) GetComparison(ctx context.Context) ([]models.RouteComparison, error) {
	slog.Info("GetComparison request received")

	baseline, err := s.store.GetBaseline(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNoBaseline
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get baseline: %w", err)
	}

	routes, err := s.store.ListRoutes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}

	comparisons := make([]models.RouteComparison, 0, len(routes))
	for _, route := range routes {
		diff, err := calculator.PercentDiff(route.GHGIntensity, baseline.GHGIntensity)
		if err != nil {
			return nil, fmt.Errorf("failed to compare route %s: %w", route.RouteID, err)
		}

		target, err := s.regime.TargetFor(route.Year)
		if err != nil {
			return nil, fmt.Errorf("failed to get target for %d: %w", route.Year, err)
		}

		comparisons = append(comparisons, models.RouteComparison{
			Route:       *route,
			PercentDiff: diff,
			IsCompliant: route.GHGIntensity <= target,
		})
	}

	slog.Info("GetComparison successful", "baseline", baseline.RouteID, "count", len(comparisons))
	return comparisons, nil
}
