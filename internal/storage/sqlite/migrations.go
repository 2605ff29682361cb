package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// pools must be created BEFORE pool_members due to the foreign key constraint.
const schema = `
CREATE TABLE IF NOT EXISTS routes (
    id TEXT PRIMARY KEY,
    route_id TEXT NOT NULL,
    vessel_type TEXT NOT NULL,
    fuel_type TEXT NOT NULL,
    year INTEGER NOT NULL,
    ghg_intensity REAL NOT NULL,
    fuel_consumption REAL NOT NULL,
    distance REAL NOT NULL,
    total_emissions REAL NOT NULL,
    is_baseline INTEGER NOT NULL DEFAULT 0,
    UNIQUE (route_id, year)
);

CREATE TABLE IF NOT EXISTS ship_compliance (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    ship_id TEXT NOT NULL,
    year INTEGER NOT NULL,
    cb REAL NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS bank_entries (
    id TEXT PRIMARY KEY,
    ship_id TEXT NOT NULL,
    year INTEGER NOT NULL,
    amount REAL NOT NULL CHECK (amount > 0),
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS bank_applications (
    id TEXT PRIMARY KEY,
    ship_id TEXT NOT NULL,
    year INTEGER NOT NULL,
    amount REAL NOT NULL CHECK (amount > 0),
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS pools (
    id TEXT PRIMARY KEY,
    year INTEGER NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS pool_members (
    pool_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    ship_id TEXT NOT NULL,
    cb_before REAL NOT NULL,
    cb_after REAL NOT NULL,
    PRIMARY KEY (pool_id, position),
    UNIQUE (pool_id, ship_id),
    FOREIGN KEY (pool_id) REFERENCES pools(id) ON DELETE CASCADE
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_routes_single_baseline ON routes(is_baseline) WHERE is_baseline = 1;
CREATE INDEX IF NOT EXISTS idx_ship_compliance_ship_year ON ship_compliance(ship_id, year);
CREATE INDEX IF NOT EXISTS idx_bank_entries_ship_id ON bank_entries(ship_id);
CREATE INDEX IF NOT EXISTS idx_bank_applications_ship_id ON bank_applications(ship_id);
CREATE INDEX IF NOT EXISTS idx_pools_year ON pools(year);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
