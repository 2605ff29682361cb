package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput marks a request the caller must correct.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNothingToBank is returned when a ship has no unbanked surplus for the year.
	ErrNothingToBank = errors.New("no surplus available to bank")

	// ErrNotInDeficit is returned when banked surplus is applied to a ship that has no deficit.
	ErrNotInDeficit = errors.New("ship is not in deficit")

	// ErrNoBankedSurplus is returned when a ship has nothing banked from earlier years.
	ErrNoBankedSurplus = errors.New("no banked surplus available")

	// ErrNoBaseline is returned by comparisons when no baseline route is set.
	ErrNoBaseline = errors.New("no baseline route set")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// MissingComplianceError reports ships without a compliance record for the year.
// Cause is set when the lookup did not finish, e.g. on fetch timeout.
type MissingComplianceError struct {
	Year    int
	ShipIDs []string
	Cause   error
}

func (e *MissingComplianceError) Error() string {
	msg := fmt.Sprintf("no compliance record for year %d: %s", e.Year, strings.Join(e.ShipIDs, ", "))
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *MissingComplianceError) Unwrap() error {
	return e.Cause
}
