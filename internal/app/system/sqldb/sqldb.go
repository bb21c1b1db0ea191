// Package sqldb opens the SQL backends the stats store can run on and
// creates their schema.
package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Default DSNs used when none is configured.
const (
	DefaultSQLiteDSN   = "file:mediaindex.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
	DefaultPostgresDSN = "postgres://localhost:5432/mediaindex?sslmode=disable"
)

// Open opens a DB for the driver, pings it and ensures the schema exists.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = DefaultSQLiteDSN
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = DefaultPostgresDSN
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if driver == DriverSQLite {
		// SQLite allows one writer; serialize through a single connection.
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	if err := EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure %s schema: %w", driver, err)
	}
	return db, nil
}

// EnsureSchema creates the tables and indexes if they do not exist. The
// statements are valid on both SQLite and Postgres.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS organization_stats (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL DEFAULT '',
  name_ci TEXT NOT NULL DEFAULT '',
  classroom_count BIGINT NOT NULL DEFAULT 0,
  lectures BIGINT NOT NULL DEFAULT 0,
  labs BIGINT NOT NULL DEFAULT 0,
  practicals BIGINT NOT NULL DEFAULT 0,
  survey_count BIGINT NOT NULL DEFAULT 0,
  technical_index INTEGER NOT NULL DEFAULT 0,
  created_at BIGINT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_orgstats_created__id ON organization_stats (created_at DESC, id DESC)`,
}
