package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"superheroes-api/internal/config"
	"superheroes-api/internal/handler"
	"superheroes-api/internal/infrastructure/cache"
	"superheroes-api/internal/logger"
	"superheroes-api/internal/repository"
	"superheroes-api/internal/service"
	"superheroes-api/internal/validator"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), configFrom(cmd))
		},
	}
}

// runServe serves until ctx is cancelled, then shuts down gracefully.
func runServe(ctx context.Context, cfg *config.Config) error {
	s, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer s.Close()
	logger.Info("Connected to database", slog.String("type", cfg.DBType), slog.String("database", cfg.DBName))

	if cfg.DBAutoMigrate {
		if err := s.migrateUp(cfg); err != nil {
			return err
		}
	}

	collector := s.statsCollector()
	collector.Start(poolStatsInterval)
	defer collector.Stop()

	dialect, err := repository.NewDialect(s.dialect)
	if err != nil {
		return err
	}
	heroRepo := repository.NewSQLHeroRepository(s.db, dialect)

	var statsCache service.StatsCache
	var cachePinger handler.Pinger
	if cfg.RedisAddr != "" {
		redisCache := cache.NewRedisStatsCache(
			cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB),
			cfg.StatsCacheTTL,
		)
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			logger.Warn("Redis unavailable, stats will be computed per request", slog.String("error", err.Error()))
		}
		statsCache = redisCache
		cachePinger = handler.PingFunc(redisCache.Ping)
	}

	heroService := service.NewHeroService(heroRepo, validator.NewValidator(), statsCache)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := newRouter(cfg.CORSOrigins,
		handler.NewHeroHandler(heroService),
		handler.NewHealthHandler(s.db, cachePinger),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("start server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server exited")
	return nil
}
