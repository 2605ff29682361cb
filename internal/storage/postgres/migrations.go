package postgres

// schema mirrors the SQLite schema with PostgreSQL types.
// Timestamps are stored as Unix nanoseconds in both backends.
const schema = `
CREATE TABLE IF NOT EXISTS routes (
    id TEXT PRIMARY KEY,
    route_id TEXT NOT NULL,
    vessel_type TEXT NOT NULL,
    fuel_type TEXT NOT NULL,
    year INTEGER NOT NULL,
    ghg_intensity DOUBLE PRECISION NOT NULL,
    fuel_consumption DOUBLE PRECISION NOT NULL,
    distance DOUBLE PRECISION NOT NULL,
    total_emissions DOUBLE PRECISION NOT NULL,
    is_baseline BOOLEAN NOT NULL DEFAULT FALSE,
    UNIQUE (route_id, year)
);

CREATE TABLE IF NOT EXISTS ship_compliance (
    seq BIGSERIAL PRIMARY KEY,
    ship_id TEXT NOT NULL,
    year INTEGER NOT NULL,
    cb DOUBLE PRECISION NOT NULL,
    created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS bank_entries (
    id TEXT PRIMARY KEY,
    ship_id TEXT NOT NULL,
    year INTEGER NOT NULL,
    amount DOUBLE PRECISION NOT NULL CHECK (amount > 0),
    created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS bank_applications (
    id TEXT PRIMARY KEY,
    ship_id TEXT NOT NULL,
    year INTEGER NOT NULL,
    amount DOUBLE PRECISION NOT NULL CHECK (amount > 0),
    created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS pools (
    id TEXT PRIMARY KEY,
    year INTEGER NOT NULL,
    created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS pool_members (
    pool_id TEXT NOT NULL REFERENCES pools(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    ship_id TEXT NOT NULL,
    cb_before DOUBLE PRECISION NOT NULL,
    cb_after DOUBLE PRECISION NOT NULL,
    PRIMARY KEY (pool_id, position),
    UNIQUE (pool_id, ship_id)
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_routes_single_baseline ON routes(is_baseline) WHERE is_baseline;
CREATE INDEX IF NOT EXISTS idx_ship_compliance_ship_year ON ship_compliance(ship_id, year);
CREATE INDEX IF NOT EXISTS idx_bank_entries_ship_id ON bank_entries(ship_id);
CREATE INDEX IF NOT EXISTS idx_bank_applications_ship_id ON bank_applications(ship_id);
CREATE INDEX IF NOT EXISTS idx_pools_year ON pools(year);
`
