package models

import "time"

// BankEntry records surplus a ship set aside for later use.
// Entries are append-only and Amount is always positive.
type BankEntry struct {
	// ID is the unique identifier for the entry (UUID format).
	ID string `json:"id"`

	ShipID string `json:"shipId"`

	// Year is the compliance period the surplus was earned in.
	Year int `json:"year"`

	Amount float64 `json:"amount"`

	CreatedAt time.Time `json:"createdAt"`
}

// BankApplication records banked surplus spent against a deficit.
// Applications are append-only and Amount is always positive.
type BankApplication struct {
	ID     string `json:"id"`
	ShipID string `json:"shipId"`

	// Year is the compliance period whose deficit was offset.
	Year int `json:"year"`

	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}
