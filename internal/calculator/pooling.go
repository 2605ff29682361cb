package calculator

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Epsilon is the absolute tolerance for balance comparisons, in gCO2e.
const Epsilon = 1e-9

var (
	epsilon    = decimal.NewFromFloat(Epsilon)
	negEpsilon = epsilon.Neg()
)

// ShipBalance is one ship's compliance balance fed into an allocation run.
type ShipBalance struct {
	ShipID string
	CB     float64
}

// MemberAllocation is one ship's outcome of an allocation run.
type MemberAllocation struct {
	ShipID   string
	CBBefore float64
	CBAfter  float64
}

// Transfer is a single movement of balance from a donor to a receiver.
type Transfer struct {
	From   string
	To     string
	Amount float64
}

// PoolAllocation is the result of AllocatePool.
type PoolAllocation struct {
	// Members are in allocation order: cb descending, ship ID ascending.
	Members   []MemberAllocation
	Transfers []Transfer
	Total     float64
}

// InfeasiblePoolError reports that the pool's total balance is negative.
type InfeasiblePoolError struct {
	Total float64
}

func (e *InfeasiblePoolError) Error() string {
	return fmt.Sprintf("pool total compliance balance is negative: %.6f", e.Total)
}

// Invariant rules checked after allocation.
const (
	RuleDeficitWorsened = "deficit ship exits worse than it entered"
	RuleSurplusNegative = "surplus ship exits with negative balance"
	RuleConservation    = "pool total not conserved"
	RuleDuplicateShip   = "ship allocated more than once"
	RuleEmptyAllocation = "no ships to allocate"
)

// AllocationInvariantError reports a broken post-condition. It signals a defect
// in the allocation routine, not a condition the caller can correct.
type AllocationInvariantError struct {
	ShipID string
	Before float64
	After  float64
	Rule   string
}

func (e *AllocationInvariantError) Error() string {
	if e.ShipID == "" {
		return fmt.Sprintf("allocation invariant violated: %s (before=%.6f after=%.6f)", e.Rule, e.Before, e.After)
	}
	return fmt.Sprintf("allocation invariant violated for ship %s: %s (before=%.6f after=%.6f)",
		e.ShipID, e.Rule, e.Before, e.After)
}

// allocState is the running state of one member during the greedy pass.
// The slice of states is owned exclusively by AllocatePool.
type allocState struct {
	shipID string
	before decimal.Decimal
	after  decimal.Decimal
}

// AllocatePool redistributes surplus to deficits within a pool.
//
// Algorithm:
// - Feasibility: the sum of all balances must not be negative
// - Order members by cb descending, ties broken by ship ID ascending
// - Each donor (front to back) pays the deficits from the back of the order
//   inward until it is exhausted; a single pass, no backtracking
// - Verify conservation and that no ship exits worse off
//
// Arithmetic runs in fixed decimal so transfers are exact; comparisons against
// zero use Epsilon.
func AllocatePool(balances []ShipBalance) (*PoolAllocation, error) {
	if len(balances) == 0 {
		return nil, &AllocationInvariantError{Rule: RuleEmptyAllocation}
	}

	states := make([]allocState, len(balances))
	seen := make(map[string]bool, len(balances))
	total := decimal.Zero
	for i, b := range balances {
		if seen[b.ShipID] {
			return nil, &AllocationInvariantError{ShipID: b.ShipID, Before: b.CB, After: b.CB, Rule: RuleDuplicateShip}
		}
		seen[b.ShipID] = true

		cb := decimal.NewFromFloat(b.CB)
		states[i] = allocState{shipID: b.ShipID, before: cb, after: cb}
		total = total.Add(cb)
	}

	if total.LessThan(negEpsilon) {
		return nil, &InfeasiblePoolError{Total: total.InexactFloat64()}
	}

	sort.SliceStable(states, func(i, j int) bool {
		if c := states[i].before.Cmp(states[j].before); c != 0 {
			return c > 0
		}
		return states[i].shipID < states[j].shipID
	})

	transfers := distribute(states)

	if err := verify(states); err != nil {
		return nil, err
	}

	members := make([]MemberAllocation, len(states))
	for i, s := range states {
		members[i] = MemberAllocation{
			ShipID:   s.shipID,
			CBBefore: s.before.InexactFloat64(),
			CBAfter:  s.after.InexactFloat64(),
		}
	}

	return &PoolAllocation{
		Members:   members,
		Transfers: transfers,
		Total:     total.InexactFloat64(),
	}, nil
}

// distribute runs the greedy donor/receiver pass over states sorted by cb descending.
func distribute(states []allocState) []Transfer {
	var transfers []Transfer

	for i := range states {
		donor := &states[i]
		if !donor.after.GreaterThan(epsilon) {
			continue
		}

		for j := len(states) - 1; j > i; j-- {
			receiver := &states[j]
			if !receiver.after.LessThan(negEpsilon) {
				continue
			}

			amount := decimal.Min(donor.after, receiver.after.Neg())
			donor.after = donor.after.Sub(amount)
			receiver.after = receiver.after.Add(amount)

			transfers = append(transfers, Transfer{
				From:   donor.shipID,
				To:     receiver.shipID,
				Amount: amount.InexactFloat64(),
			})

			// Donor exhausted
			if donor.after.LessThanOrEqual(epsilon) {
				break
			}
		}
	}

	return transfers
}

// verify checks the per-member exit rules and conservation of the pool total.
func verify(states []allocState) error {
	sumBefore, sumAfter := decimal.Zero, decimal.Zero

	for _, s := range states {
		sumBefore = sumBefore.Add(s.before)
		sumAfter = sumAfter.Add(s.after)

		if s.before.IsNegative() && s.after.LessThan(s.before.Sub(epsilon)) {
			return newInvariantError(s, RuleDeficitWorsened)
		}
		if s.before.IsPositive() && s.after.LessThan(negEpsilon) {
			return newInvariantError(s, RuleSurplusNegative)
		}
	}

	if sumBefore.Sub(sumAfter).Abs().GreaterThan(epsilon) {
		return &AllocationInvariantError{
			Before: sumBefore.InexactFloat64(),
			After:  sumAfter.InexactFloat64(),
			Rule:   RuleConservation,
		}
	}
	return nil
}

func newInvariantError(s allocState, rule string) *AllocationInvariantError {
	return &AllocationInvariantError{
		ShipID: s.shipID,
		Before: s.before.InexactFloat64(),
		After:  s.after.InexactFloat64(),
		Rule:   rule,
	}
}
