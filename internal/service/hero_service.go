package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"superheroes-api/internal/domain"
	"superheroes-api/internal/logger"
	"superheroes-api/internal/metrics"
	"superheroes-api/internal/repository"
	"superheroes-api/internal/validator"
)

// TopCitiesLimit caps the number of cities reported by GetStats.
const TopCitiesLimit = 10

// HeroService implements the hero use cases on top of a HeroRepository.
type HeroService struct {
	repo      repository.HeroRepository
	validator *validator.Validator
	cache     StatsCache
	now       func() time.Time
}

// NewHeroService creates a new HeroService. A nil cache disables stats caching.
func NewHeroService(repo repository.HeroRepository, v *validator.Validator, cache StatsCache) *HeroService {
	if cache == nil {
		cache = NoopStatsCache{}
	}
	return &HeroService{
		repo:      repo,
		validator: v,
		cache:     cache,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Create validates in, enforces alias uniqueness and stores the hero.
func (s *HeroService) Create(ctx context.Context, in domain.CreateHeroInput) (resp *HeroResponse, err error) {
	defer s.observe("create", metrics.NewTimer(), &err)

	if err := s.validator.ValidateCreate(&in); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByAlias(ctx, in.Alias)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to check alias", slog.String("alias", in.Alias), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", domain.ErrCreateFailed, err)
	}
	if existing != nil {
		return nil, domain.ErrAliasConflict
	}

	hero := &domain.Hero{
		Name:        in.Name,
		Alias:       in.Alias,
		Powers:      domain.JoinPowers(in.Powers),
		City:        in.City,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		PowerLevel:  *in.PowerLevel,
		IsActive:    true,
	}
	if in.IsActive != nil {
		hero.IsActive = *in.IsActive
	}

	if err := s.repo.Create(ctx, hero); err != nil {
		if errors.Is(err, domain.ErrAliasConflict) {
			return nil, err
		}
		logger.FromContext(ctx).Error("Failed to create hero", slog.String("alias", in.Alias), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", domain.ErrCreateFailed, err)
	}

	logger.FromContext(ctx).Info("Hero created", slog.Int64("hero_id", hero.ID), slog.String("alias", hero.Alias))
	s.invalidateStats(ctx)

	out := ProjectHero(hero)
	return &out, nil
}

// FindAll returns one page of heroes and the total matching filter.
func (s *HeroService) FindAll(ctx context.Context, filter domain.HeroFilter) (page *HeroPage, err error) {
	defer s.observe("find_all", metrics.NewTimer(), &err)

	heroes, err := s.repo.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list heroes: %w", err)
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list heroes: %w", err)
	}

	return &HeroPage{Data: ProjectHeroes(heroes), Total: total}, nil
}

// FindOne returns the hero with id.
func (s *HeroService) FindOne(ctx context.Context, id int64) (resp *HeroResponse, err error) {
	defer s.observe("find_one", metrics.NewTimer(), &err)

	hero, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get hero: %w", err)
	}
	if hero == nil {
		return nil, domain.ErrHeroNotFound
	}

	out := ProjectHero(hero)
	return &out, nil
}

// FindByAlias returns active heroes whose alias contains term, ignoring case.
func (s *HeroService) FindByAlias(ctx context.Context, term string) (resp []HeroResponse, err error) {
	defer s.observe("find_by_alias", metrics.NewTimer(), &err)

	term = strings.TrimSpace(term)
	if term == "" {
		return nil, domain.NewValidationError("alias", "alias is required")
	}

	heroes, err := s.repo.SearchActiveByAlias(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search heroes: %w", err)
	}
	return ProjectHeroes(heroes), nil
}

// Update applies the provided fields of in to the hero with id.
func (s *HeroService) Update(ctx context.Context, id int64, in domain.UpdateHeroInput) (resp *HeroResponse, err error) {
	defer s.observe("update", metrics.NewTimer(), &err)
	log := logger.FromContext(ctx).With(slog.Int64("hero_id", id))

	if in.IsEmpty() {
		return nil, domain.NewValidationError("body", "at least one field must be provided")
	}
	if err := s.validator.ValidateUpdate(&in); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.Error("Failed to load hero for update", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", domain.ErrUpdateFailed, err)
	}
	if existing == nil {
		return nil, domain.ErrHeroNotFound
	}

	if in.Alias != nil && *in.Alias != existing.Alias {
		holder, err := s.repo.FindByAlias(ctx, *in.Alias)
		if err != nil {
			log.Error("Failed to check alias", slog.String("error", err.Error()))
			return nil, fmt.Errorf("%w: %w", domain.ErrUpdateFailed, err)
		}
		if holder != nil {
			return nil, domain.ErrAliasConflict
		}
	}

	changes := domain.HeroChanges{
		Name:        in.Name,
		Alias:       in.Alias,
		City:        in.City,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		PowerLevel:  in.PowerLevel,
		IsActive:    in.IsActive,
		UpdatedAt:   s.now(),
	}
	if in.Powers != nil {
		joined := domain.JoinPowers(*in.Powers)
		changes.Powers = &joined
	}

	affected, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		if errors.Is(err, domain.ErrAliasConflict) {
			return nil, err
		}
		log.Error("Failed to update hero", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", domain.ErrUpdateFailed, err)
	}
	if affected == 0 {
		return nil, domain.ErrHeroNotFound
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.Error("Failed to reload hero", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", domain.ErrUpdateFailed, err)
	}
	if updated == nil {
		return nil, domain.ErrHeroNotFound
	}

	log.Info("Hero updated")
	s.invalidateStats(ctx)

	out := ProjectHero(updated)
	return &out, nil
}

// HardDelete removes the hero with id permanently.
func (s *HeroService) HardDelete(ctx context.Context, id int64) (msg string, err error) {
	defer s.observe("delete", metrics.NewTimer(), &err)

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return "", fmt.Errorf("delete hero: %w", err)
	}
	if affected == 0 {
		return "", domain.ErrHeroNotFound
	}

	logger.FromContext(ctx).Info("Hero deleted", slog.Int64("hero_id", id))
	s.invalidateStats(ctx)

	return fmt.Sprintf("Superhero %d permanently deleted", id), nil
}

// GetStats returns aggregate counts, served from the cache when possible.
func (s *HeroService) GetStats(ctx context.Context) (stats *domain.HeroStats, err error) {
	defer s.observe("stats", metrics.NewTimer(), &err)
	log := logger.FromContext(ctx)

	cached, found, err := s.cache.Get(ctx)
	switch {
	case err != nil:
		metrics.ObserveStatsCache("error")
		log.Warn("Stats cache read failed", slog.String("error", err.Error()))
	case found:
		metrics.ObserveStatsCache("hit")
		return cached, nil
	default:
		metrics.ObserveStatsCache("miss")
	}

	// Read before the store so an Invalidate racing with this computation
	// makes the Set below a no-op.
	generation, genErr := s.cache.Generation(ctx)
	if genErr != nil {
		log.Warn("Stats cache generation read failed", slog.String("error", genErr.Error()))
	}

	total, err := s.repo.Count(ctx, domain.HeroFilter{})
	if err != nil {
		return nil, fmt.Errorf("count heroes: %w", err)
	}
	active, err := s.repo.Count(ctx, domain.HeroFilter{IsActive: boolPtr(true)})
	if err != nil {
		return nil, fmt.Errorf("count active heroes: %w", err)
	}
	byPowerLevel, err := s.repo.CountByPowerLevel(ctx)
	if err != nil {
		return nil, err
	}
	byCities, err := s.repo.TopCities(ctx, TopCitiesLimit)
	if err != nil {
		return nil, err
	}

	stats = &domain.HeroStats{
		Total:        total,
		Active:       active,
		Inactive:     total - active,
		ByPowerLevel: byPowerLevel,
		ByCities:     byCities,
	}

	if genErr == nil {
		if err := s.cache.Set(ctx, generation, stats); err != nil {
			log.Warn("Stats cache write failed", slog.String("error", err.Error()))
		}
	}
	return stats, nil
}

func (s *HeroService) invalidateStats(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.FromContext(ctx).Warn("Stats cache invalidation failed", slog.String("error", err.Error()))
	}
}

func (s *HeroService) observe(operation string, timer *metrics.Timer, errp *error) {
	metrics.ObserveHeroOperation(operation, resultOf(*errp), timer.Seconds())
}

func resultOf(err error) string {
	var ve *domain.ValidationError
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case errors.Is(err, domain.ErrHeroNotFound):
		return metrics.ResultNotFound
	case errors.Is(err, domain.ErrAliasConflict):
		return metrics.ResultConflict
	case errors.As(err, &ve):
		return metrics.ResultInvalid
	default:
		return metrics.ResultError
	}
}
