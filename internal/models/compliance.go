package models

import "time"

// ComplianceStatus classifies a compliance balance.
type ComplianceStatus string

const (
	StatusSurplus ComplianceStatus = "SURPLUS"
	StatusDeficit ComplianceStatus = "DEFICIT"
)

// StatusOf derives the status for a balance. Zero counts as surplus.
func StatusOf(cb float64) ComplianceStatus {
	if cb >= 0 {
		return StatusSurplus
	}
	return StatusDeficit
}

// ComplianceBalance is one ship's standing for one year.
// Records are immutable; a recalculation stores a newer record that supersedes it.
type ComplianceBalance struct {
	ShipID string `json:"shipId"`
	Year   int    `json:"year"`

	// CB is the balance in gCO2e. Positive = surplus, negative = deficit.
	CB float64 `json:"cb"`

	Status ComplianceStatus `json:"status"`

	// CreatedAt is when the balance was calculated. Used to pick the latest record.
	CreatedAt time.Time `json:"createdAt"`
}

// NewComplianceBalance builds a balance with its derived status.
func NewComplianceBalance(shipID string, year int, cb float64) *ComplianceBalance {
	return &ComplianceBalance{
		ShipID:    shipID,
		Year:      year,
		CB:        cb,
		Status:    StatusOf(cb),
		CreatedAt: time.Now().UTC(),
	}
}

// AdjustedCompliance is a ship's balance after banked surplus was applied.
type AdjustedCompliance struct {
	ShipID   string           `json:"shipId"`
	Year     int              `json:"year"`
	CBBefore float64          `json:"cbBefore"`
	Applied  float64          `json:"applied"`
	CBAfter  float64          `json:"cbAfter"`
	Status   ComplianceStatus `json:"status"`
}
