package db

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/tsenart/nap"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

type DB struct {
	*nap.DB
	Driver string
}

// Open connects to dsn and migrates the schema. Replica dsns are separated
// by ";" as nap expects.
func Open(driver, dsn string) (*DB, error) {
	switch driver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}

	conn, err := nap.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	if driver == DriverSQLite {
		// a single writer avoids "database is locked" errors
		conn.SetMaxOpenConns(1)
	}

	if err := Migrate(conn.Master(), driver); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &DB{DB: conn, Driver: driver}, nil
}

// Builder returns a statement builder with the placeholder format of the driver.
func (db *DB) Builder() sq.StatementBuilderType {
	if db.Driver == DriverPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}

	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}
