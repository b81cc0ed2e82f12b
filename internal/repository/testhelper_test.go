package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"superheroes-api/internal/infrastructure/database"
)

// TestDB holds a migrated test database and whatever backs it.
type TestDB struct {
	DB        *sql.DB
	Dialect   string
	Pool      *pgxpool.Pool
	Container testcontainers.Container
}

// SetupSQLiteDB opens a migrated in-memory SQLite database.
func SetupSQLiteDB(t *testing.T) *TestDB {
	t.Helper()

	db, err := database.NewSQLite(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}

	if err := database.MigrateUp(db, database.DialectSQLite); err != nil {
		db.Close()
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return &TestDB{DB: db, Dialect: database.DialectSQLite}
}

// SetupPostgresDB creates a PostgreSQL container and applies migrations
func SetupPostgresDB(t *testing.T) *TestDB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("Failed to start postgres container: %v", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("Failed to get connection string: %v", err)
	}

	// The migration driver closes its *sql.DB, so it gets its own.
	migrationDB, err := sql.Open("pgx", connStr)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("Failed to open migration connection: %v", err)
	}
	if err := database.MigrateUp(migrationDB, database.DialectPostgres); err != nil {
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("Failed to run migrations: %v", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("Failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("Failed to ping database: %v", err)
	}

	return &TestDB{
		DB:        stdlib.OpenDBFromPool(pool),
		Dialect:   database.DialectPostgres,
		Pool:      pool,
		Container: pgContainer,
	}
}

// Cleanup closes connections and terminates the container, if any.
func (tdb *TestDB) Cleanup(t *testing.T) {
	t.Helper()
	if tdb.DB != nil {
		tdb.DB.Close()
	}
	if tdb.Pool != nil {
		tdb.Pool.Close()
	}
	if tdb.Container != nil {
		if err := tdb.Container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	}
}

// TruncateHeroes clears the superheroes table for test isolation.
func (tdb *TestDB) TruncateHeroes(t *testing.T) {
	t.Helper()
	query := "DELETE FROM superheroes"
	if tdb.Dialect == database.DialectPostgres {
		query = "TRUNCATE TABLE superheroes RESTART IDENTITY"
	}
	if _, err := tdb.DB.ExecContext(context.Background(), query); err != nil {
		t.Fatalf("Failed to truncate superheroes: %v", err)
	}
}
