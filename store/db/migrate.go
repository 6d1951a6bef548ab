package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed schema
var embedFiles embed.FS

// Migrate runs the embedded schema migrations for driver.
func Migrate(db *sql.DB, driver string) error {
	d, err := iofs.New(embedFiles, "schema/"+driver)
	if err != nil {
		return err
	}

	var instance database.Driver
	switch driver {
	case DriverPostgres:
		instance, err = postgres.WithInstance(db, &postgres.Config{})
	case DriverSQLite:
		instance, err = sqlite3.WithInstance(db, &sqlite3.Config{})
	default:
		return fmt.Errorf("unsupported driver %q", driver)
	}

	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", d, driver, instance)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
