package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrUnknownYear is returned when no target applies to a year.
var ErrUnknownYear = errors.New("no regulatory target for year")

// Period sets the intensity target from a year onwards.
type Period struct {
	FromYear        int     `yaml:"from_year"`
	TargetIntensity float64 `yaml:"target_intensity"` // gCO2e/MJ
}

// Regime holds the regulatory constants used by the compliance calculator.
type Regime struct {
	EnergyDensity float64  `yaml:"energy_density_mj_per_tonne"`
	Periods       []Period `yaml:"periods"`
}

// DefaultRegime returns the FuelEU Maritime targets: 91.16 gCO2e/MJ reduced by
// 2%, 6%, 14.5%, 31%, 62% and 80% in five-year steps from 2025.
func DefaultRegime() *Regime {
	return &Regime{
		EnergyDensity: 41000,
		Periods: []Period{
			{FromYear: 2025, TargetIntensity: 89.3368},
			{FromYear: 2030, TargetIntensity: 85.6904},
			{FromYear: 2035, TargetIntensity: 77.9418},
			{FromYear: 2040, TargetIntensity: 62.9004},
			{FromYear: 2045, TargetIntensity: 34.6408},
			{FromYear: 2050, TargetIntensity: 18.232},
		},
	}
}

// LoadRegime reads a regime from a YAML file.
func LoadRegime(path string) (*Regime, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read regulatory config: %w", err)
	}
	return ParseRegime(data)
}

// ParseRegime decodes and validates a YAML regime.
func ParseRegime(data []byte) (*Regime, error) {
	var r Regime
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse regulatory config: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Validate checks the regime and sorts its periods by year.
func (r *Regime) Validate() error {
	if r.EnergyDensity <= 0 {
		return fmt.Errorf("energy density must be positive, got %v", r.EnergyDensity)
	}
	if len(r.Periods) == 0 {
		return fmt.Errorf("at least one regulatory period is required")
	}
	sort.Slice(r.Periods, func(i, j int) bool { return r.Periods[i].FromYear < r.Periods[j].FromYear })
	for i, p := range r.Periods {
		if p.TargetIntensity <= 0 {
			return fmt.Errorf("period from %d: target intensity must be positive", p.FromYear)
		}
		if i > 0 && r.Periods[i-1].FromYear == p.FromYear {
			return fmt.Errorf("duplicate period for year %d", p.FromYear)
		}
	}
	return nil
}

// TargetFor returns the intensity target that applies to year.
// Years before the first period use the first period's target.
func (r *Regime) TargetFor(year int) (float64, error) {
	if len(r.Periods) == 0 {
		return 0, fmt.Errorf("%w %d", ErrUnknownYear, year)
	}
	target := r.Periods[0].TargetIntensity
	for _, p := range r.Periods {
		if p.FromYear > year {
			break
		}
		target = p.TargetIntensity
	}
	return target, nil
}
