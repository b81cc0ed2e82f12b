package repository

import (
	"context"

	"superheroes-api/internal/domain"
)

// HeroRepository defines methods for hero data access.
type HeroRepository interface {
	// Create inserts hero and fills in its ID and timestamps.
	Create(ctx context.Context, hero *domain.Hero) error
	// FindByID returns nil, nil when no hero has the id.
	FindByID(ctx context.Context, id int64) (*domain.Hero, error)
	// FindByAlias looks up an exact alias match; nil, nil when absent.
	FindByAlias(ctx context.Context, alias string) (*domain.Hero, error)
	// Search returns heroes matching filter, newest first, honoring Limit and Offset.
	Search(ctx context.Context, filter domain.HeroFilter) ([]domain.Hero, error)
	// SearchActiveByAlias returns active heroes whose alias contains term, newest first.
	SearchActiveByAlias(ctx context.Context, term string) ([]domain.Hero, error)
	// Count returns the number of heroes matching filter, ignoring Limit and Offset.
	Count(ctx context.Context, filter domain.HeroFilter) (int, error)
	// Update writes changes and reports the number of affected rows.
	Update(ctx context.Context, id int64, changes domain.HeroChanges) (int64, error)
	// Delete removes the hero and reports the number of affected rows.
	Delete(ctx context.Context, id int64) (int64, error)
	// CountByPowerLevel groups heroes by power level.
	CountByPowerLevel(ctx context.Context) (map[int]int, error)
	// TopCities returns the cities with the most heroes, at most limit entries.
	TopCities(ctx context.Context, limit int) (map[string]int, error)
}
