// Package models defines the core domain models for FuelEU compliance tracking.
//
// # Models
//
//   - Route: a voyage with its measured GHG intensity and fuel use. One route
//     stands for one ship in one year (the route ID doubles as the ship ID).
//   - ComplianceBalance: a ship's surplus or deficit against the regulatory
//     intensity target for one year.
//   - BankEntry / BankApplication: the append-only banking ledger. Entries set
//     surplus aside, applications spend it against a later deficit.
//   - Pool / PoolMember: the outcome of one pooling allocation run.
//
// # Design Principles
//
// 1. **Snapshots, not references**: a PoolMember copies the balance it started
// from, so later recalculations never rewrite pool history.
// 2. **Append-only ledgers**: compliance records, bank entries and applications
// are superseded by newer rows, never updated in place.
// 3. **IDs as strings**: relationships use ship and pool IDs, not pointers.
package models
