package models

import "time"

// Pool is the result of one allocation run over a group of ships.
// Pools own their members and are immutable once persisted.
type Pool struct {
	// ID is the unique identifier for the pool (UUID format).
	ID string `json:"id"`

	Year int `json:"year"`

	CreatedAt time.Time `json:"createdAt"`

	// Members holds one entry per ship, in allocation order
	// (cb descending, ship ID ascending).
	Members []PoolMember `json:"members"`
}

// PoolMember is one ship's allocation within a pool.
type PoolMember struct {
	ShipID string `json:"shipId"`

	// CBBefore is the balance snapshot taken when the pool was created.
	CBBefore float64 `json:"cbBefore"`

	// CBAfter is the balance after redistribution.
	CBAfter float64 `json:"cbAfter"`
}

// TotalBefore sums the members' balances before pooling.
func (p *Pool) TotalBefore() float64 {
	var total float64
	for _, m := range p.Members {
		total += m.CBBefore
	}
	return total
}

// TotalAfter sums the members' balances after pooling.
func (p *Pool) TotalAfter() float64 {
	var total float64
	for _, m := range p.Members {
		total += m.CBAfter
	}
	return total
}
