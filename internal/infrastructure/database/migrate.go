package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrations embed.FS

// Dialect names accepted by the migration helpers.
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// Migrator applies the embedded schema migrations for one dialect.
type Migrator struct {
	m       *migrate.Migrate
	src     source.Driver
	dialect string
}

// NewMigrator builds a Migrator over db.
//
// The postgres driver pins a dedicated connection and closes db on Close,
// so pass a *sql.DB opened only for migrating (see OpenPostgresForMigrations).
// The sqlite driver shares db and Close leaves it open.
func NewMigrator(db *sql.DB, dialect string) (*Migrator, error) {
	src, err := iofs.New(migrations, "migrations/"+dialect)
	if err != nil {
		return nil, fmt.Errorf("load %s migrations: %w", dialect, err)
	}

	var driver database.Driver
	switch dialect {
	case DialectPostgres:
		driver, err = pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	case DialectSQLite:
		driver, err = sqlitemigrate.WithInstance(db, &sqlitemigrate.Config{})
	default:
		err = fmt.Errorf("unsupported dialect %q", dialect)
	}
	if err != nil {
		src.Close()
		return nil, fmt.Errorf("create %s migration driver: %w", dialect, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, dialect, driver)
	if err != nil {
		src.Close()
		return nil, fmt.Errorf("create migrator: %w", err)
	}

	return &Migrator{m: m, src: src, dialect: dialect}, nil
}

// Up applies all pending migrations.
func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// Down rolls back the most recent migration.
func (mg *Migrator) Down() error {
	if err := mg.m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate down: %w", err)
	}
	return nil
}

// Version returns the current schema version. ok is false when no
// migration has been applied yet.
func (mg *Migrator) Version() (version uint, dirty bool, ok bool, err error) {
	version, dirty, err = mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, false, nil
	}
	if err != nil {
		return 0, false, false, fmt.Errorf("migrate version: %w", err)
	}
	return version, dirty, true, nil
}

// Close releases migration resources.
func (mg *Migrator) Close() error {
	if mg.dialect == DialectPostgres {
		srcErr, dbErr := mg.m.Close()
		return errors.Join(srcErr, dbErr)
	}
	return mg.src.Close()
}

// OpenPostgresForMigrations opens a short-lived *sql.DB for a Migrator.
func OpenPostgresForMigrations(cfg PoolConfig) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open postgres for migrations: %w", err)
	}
	return db, nil
}

// MigrateUp is a convenience wrapper that applies all pending migrations
// and releases the migrator.
func MigrateUp(db *sql.DB, dialect string) error {
	mg, err := NewMigrator(db, dialect)
	if err != nil {
		return err
	}
	defer mg.Close()
	return mg.Up()
}
