package calculator

import (
	"fmt"
)

// RouteUsage is the telemetry needed to compute a compliance balance.
type RouteUsage struct {
	GHGIntensity    float64 // gCO2e/MJ
	FuelConsumption float64 // tonnes
}

// ComplianceParams are the regulatory constants for one year.
type ComplianceParams struct {
	TargetIntensity float64 // gCO2e/MJ
	EnergyDensity   float64 // MJ/t
}

// CalculateComplianceBalance computes a ship's balance in gCO2e.
// Based on: cb = (target - actual) × fuel × energy_density
func CalculateComplianceBalance(usage RouteUsage, params ComplianceParams) (float64, error) {
	if params.EnergyDensity <= 0 {
		return 0, fmt.Errorf("energy density must be positive")
	}
	if params.TargetIntensity <= 0 {
		return 0, fmt.Errorf("target intensity must be positive")
	}
	if usage.FuelConsumption < 0 {
		return 0, fmt.Errorf("fuel consumption cannot be negative")
	}

	energyInScope := usage.FuelConsumption * params.EnergyDensity
	return (params.TargetIntensity - usage.GHGIntensity) * energyInScope, nil
}

// PercentDiff compares an intensity against the baseline: ((comparison / baseline) - 1) × 100.
func PercentDiff(comparison, baseline float64) (float64, error) {
	if baseline == 0 {
		return 0, fmt.Errorf("baseline intensity cannot be zero")
	}
	return ((comparison / baseline) - 1) * 100, nil
}
