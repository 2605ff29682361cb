package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/fueleu/internal/models"
)

// SeedRoutes is the reference dataset loaded into an empty route table.
func SeedRoutes() []models.Route {
	return []models.Route{
		{RouteID: "R001", VesselType: "Container", FuelType: "HFO", Year: 2024, GHGIntensity: 91.0, FuelConsumption: 5000, Distance: 12000, TotalEmissions: 4500},
		{RouteID: "R002", VesselType: "BulkCarrier", FuelType: "LNG", Year: 2024, GHGIntensity: 88.0, FuelConsumption: 4800, Distance: 11500, TotalEmissions: 4200},
		{RouteID: "R003", VesselType: "Tanker", FuelType: "MGO", Year: 2024, GHGIntensity: 93.5, FuelConsumption: 5100, Distance: 12500, TotalEmissions: 4700},
		{RouteID: "R004", VesselType: "RoRo", FuelType: "HFO", Year: 2025, GHGIntensity: 89.2, FuelConsumption: 4900, Distance: 11800, TotalEmissions: 4300, IsBaseline: true},
		{RouteID: "R005", VesselType: "Container", FuelType: "LNG", Year: 2025, GHGIntensity: 90.5, FuelConsumption: 4950, Distance: 11900, TotalEmissions: 4400},
	}
}

// Seed inserts the reference routes if the store has none.
// It returns the number of routes inserted.
func Seed(ctx context.Context, store RouteStore) (int, error) {
	existing, err := store.ListRoutes(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list routes: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	routes := SeedRoutes()
	for i := range routes {
		if err := store.CreateRoute(ctx, &routes[i]); err != nil {
			return i, fmt.Errorf("failed to seed route %s: %w", routes[i].RouteID, err)
		}
	}

	slog.Info("Seeded routes", "count", len(routes))
	return len(routes), nil
}
