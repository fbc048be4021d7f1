// Package dbmigrate applies the SQL migrations under migrations/ through
// golang-migrate's pgx driver.
package dbmigrate

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5"
	pgxstd "github.com/jackc/pgx/v5/stdlib"
)

// Up applies every pending migration. Running it against an up-to-date
// database is not an error.
func Up(dsn, source string) error {
	return withMigrate(dsn, source, func(m *migrate.Migrate) error {
		return m.Up()
	})
}

// Down rolls back the given number of migrations, or all of them when steps
// is zero.
func Down(dsn, source string, steps int) error {
	return withMigrate(dsn, source, func(m *migrate.Migrate) error {
		if steps == 0 {
			return m.Down()
		}
		return m.Steps(-steps)
	})
}

// Version reports the current schema version and whether it is dirty. An
// empty database reports version zero.
func Version(dsn, source string) (uint, bool, error) {
	var (
		version uint
		dirty   bool
	)

	err := withMigrate(dsn, source, func(m *migrate.Migrate) error {
		var err error
		version, dirty, err = m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			return nil
		}
		return err
	})

	return version, dirty, err
}

func withMigrate(dsn, source string, fn func(m *migrate.Migrate) error) error {
	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	db := pgxstd.OpenDB(*config)
	defer db.Close()

	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	if err != nil {
		return fmt.Errorf("pgx migration driver error: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(source, "pgx", driver)
	if err != nil {
		return fmt.Errorf("migrate.New error: %w", err)
	}

	err = fn(m)
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}
