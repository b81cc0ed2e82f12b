package service

import (
	"context"

	"superheroes-api/internal/domain"
)

// HeroServiceInterface defines the interface for hero operations.
// Used for dependency injection and mocking in tests.
type HeroServiceInterface interface {
	// Create validates and stores a new hero.
	Create(ctx context.Context, in domain.CreateHeroInput) (*HeroResponse, error)
	// FindAll returns one page of heroes matching filter and the filtered total.
	FindAll(ctx context.Context, filter domain.HeroFilter) (*HeroPage, error)
	// FindOne returns the hero with id or domain.ErrHeroNotFound.
	FindOne(ctx context.Context, id int64) (*HeroResponse, error)
	// FindByAlias returns active heroes whose alias contains term.
	FindByAlias(ctx context.Context, term string) ([]HeroResponse, error)
	// Update applies a partial update and returns the stored result.
	Update(ctx context.Context, id int64, in domain.UpdateHeroInput) (*HeroResponse, error)
	// HardDelete removes the hero permanently and returns a confirmation message.
	HardDelete(ctx context.Context, id int64) (string, error)
	// GetStats aggregates counts over all heroes.
	GetStats(ctx context.Context) (*domain.HeroStats, error)
}

// StatsCache stores the computed stats between mutations.
//
// Get reports found=false on a miss. Invalidate advances the generation
// returned by Generation, and Set stores stats only while the generation
// still equals the one read before the stats were computed.
type StatsCache interface {
	Get(ctx context.Context) (stats *domain.HeroStats, found bool, err error)
	Generation(ctx context.Context) (int64, error)
	Set(ctx context.Context, generation int64, stats *domain.HeroStats) error
	Invalidate(ctx context.Context) error
}

// NoopStatsCache is used when no cache is configured.
type NoopStatsCache struct{}

func (NoopStatsCache) Get(context.Context) (*domain.HeroStats, bool, error) { return nil, false, nil }
func (NoopStatsCache) Generation(context.Context) (int64, error)            { return 0, nil }
func (NoopStatsCache) Set(context.Context, int64, *domain.HeroStats) error  { return nil }
func (NoopStatsCache) Invalidate(context.Context) error                     { return nil }
