package models

// Route represents one voyage profile used to compute a ship's compliance balance.
type Route struct {
	// ID is the unique identifier for the route row (UUID format).
	ID string `json:"id"`

	// RouteID is the business identifier (e.g., "R001").
	// A route stands for one ship, so RouteID is also the ship ID.
	RouteID string `json:"routeId"`

	VesselType string `json:"vesselType"`
	FuelType   string `json:"fuelType"`

	// Year is the compliance period the route was sailed in.
	Year int `json:"year"`

	// GHGIntensity is the well-to-wake intensity in gCO2e/MJ.
	GHGIntensity float64 `json:"ghgIntensity"`

	// FuelConsumption is the fuel burned, in tonnes.
	FuelConsumption float64 `json:"fuelConsumption"`

	// Distance is the sailed distance in km.
	Distance float64 `json:"distance"`

	// TotalEmissions is the reported emissions in tonnes.
	TotalEmissions float64 `json:"totalEmissions"`

	// IsBaseline marks the reference route for comparisons.
	// At most one route is the baseline at any time.
	IsBaseline bool `json:"isBaseline"`
}

// RouteComparison compares one route against the baseline route.
type RouteComparison struct {
	Route Route `json:"route"`

	// PercentDiff is ((route / baseline) - 1) * 100 over GHG intensity.
	PercentDiff float64 `json:"percentDiff"`

	// IsCompliant reports whether the route meets the target for its year.
	IsCompliant bool `json:"isCompliant"`
}
