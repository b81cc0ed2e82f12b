package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"superheroes-api/internal/config"
	"superheroes-api/internal/infrastructure/database"
	"superheroes-api/internal/logger"
	"superheroes-api/internal/metrics"
)

const poolStatsInterval = 15 * time.Second

// store is an open database handle for the configured backend.
type store struct {
	db      *sql.DB
	pool    *pgxpool.Pool
	dialect string
}

func poolConfig(cfg *config.Config) database.PoolConfig {
	return database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	}
}

func openStore(ctx context.Context, cfg *config.Config) (*store, error) {
	switch cfg.DBType {
	case config.DBTypePostgres:
		pool, db, err := database.OpenPostgres(ctx, poolConfig(cfg))
		if err != nil {
			return nil, err
		}
		return &store{db: db, pool: pool, dialect: database.DialectPostgres}, nil
	case config.DBTypeSQLite:
		db, err := database.NewSQLite(ctx, cfg.DBName)
		if err != nil {
			return nil, err
		}
		return &store{db: db, dialect: database.DialectSQLite}, nil
	default:
		return nil, fmt.Errorf("unsupported DB_TYPE %q", cfg.DBType)
	}
}

// newMigrator returns a Migrator for cfg. For postgres it opens a dedicated
// connection which the Migrator closes.
func newMigrator(cfg *config.Config, s *store) (*database.Migrator, error) {
	if s.dialect == database.DialectPostgres {
		db, err := database.OpenPostgresForMigrations(poolConfig(cfg))
		if err != nil {
			return nil, err
		}
		mg, err := database.NewMigrator(db, database.DialectPostgres)
		if err != nil {
			db.Close()
			return nil, err
		}
		return mg, nil
	}
	return database.NewMigrator(s.db, s.dialect)
}

func (s *store) migrateUp(cfg *config.Config) error {
	mg, err := newMigrator(cfg, s)
	if err != nil {
		return err
	}
	defer mg.Close()

	if err := mg.Up(); err != nil {
		return err
	}
	if version, _, ok, err := mg.Version(); err == nil && ok {
		logger.Info("Database schema up to date", slog.Uint64("version", uint64(version)))
	}
	return nil
}

func (s *store) statsCollector() *metrics.PoolStatsCollector {
	if s.pool != nil {
		return metrics.NewPoolStatsCollector(s.pool)
	}
	return metrics.NewSQLStatsCollector(s.db)
}

func (s *store) Close() error {
	err := s.db.Close()
	if s.pool != nil {
		s.pool.Close()
	}
	return err
}
