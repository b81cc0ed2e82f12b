package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"superheroes-api/internal/domain"
)

const heroColumns = `id, name, alias, powers, city, description, image_url, power_level, is_active, created_at, updated_at`

// SQLHeroRepository implements HeroRepository over database/sql. The same
// code serves SQLite and PostgreSQL; dialect differences live in Dialect.
type SQLHeroRepository struct {
	db      *sql.DB
	dialect Dialect
	now     func() time.Time
}

// NewSQLHeroRepository creates a new SQLHeroRepository.
func NewSQLHeroRepository(db *sql.DB, dialect Dialect) *SQLHeroRepository {
	return &SQLHeroRepository{
		db:      db,
		dialect: dialect,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Dialect returns the dialect the repository was built with.
func (r *SQLHeroRepository) Dialect() Dialect {
	return r.dialect
}

// Create inserts hero and fills in its ID and timestamps.
// A duplicate alias is reported as domain.ErrAliasConflict.
func (r *SQLHeroRepository) Create(ctx context.Context, hero *domain.Hero) error {
	now := r.now()
	hero.CreatedAt = now
	hero.UpdatedAt = now

	p := r.dialect.Placeholder
	query := fmt.Sprintf(`
		INSERT INTO superheroes (name, alias, powers, city, description, image_url, power_level, is_active, created_at, updated_at)
		VALUES (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		RETURNING id`,
		p(1), p(2), p(3), p(4), p(5), p(6), p(7), p(8), p(9), p(10))

	err := r.db.QueryRowContext(ctx, query,
		hero.Name, hero.Alias, hero.Powers, hero.City, hero.Description, hero.ImageURL,
		hero.PowerLevel, hero.IsActive, hero.CreatedAt, hero.UpdatedAt,
	).Scan(&hero.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAliasConflict
		}
		return fmt.Errorf("insert hero: %w", err)
	}

	return nil
}

// FindByID returns nil, nil when no hero has the id.
func (r *SQLHeroRepository) FindByID(ctx context.Context, id int64) (*domain.Hero, error) {
	query := `SELECT ` + heroColumns + ` FROM superheroes WHERE id = ` + r.dialect.Placeholder(1)

	hero, err := scanHero(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get hero %d: %w", id, err)
	}
	return hero, nil
}

// FindByAlias looks up an exact, case-sensitive alias match.
func (r *SQLHeroRepository) FindByAlias(ctx context.Context, alias string) (*domain.Hero, error) {
	query := `SELECT ` + heroColumns + ` FROM superheroes WHERE alias = ` + r.dialect.Placeholder(1)

	hero, err := scanHero(r.db.QueryRowContext(ctx, query, alias))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get hero by alias: %w", err)
	}
	return hero, nil
}

// applyFilter adds the filter's predicates. Limit and Offset are not WHERE
// conditions and are handled by the caller.
func (r *SQLHeroRepository) applyFilter(w *whereBuilder, filter domain.HeroFilter) {
	if filter.Name != nil {
		w.ContainsFold("name", *filter.Name)
	}
	if filter.City != nil {
		w.ContainsFold("city", *filter.City)
	}
	if filter.IsActive != nil {
		w.Equal("is_active", *filter.IsActive)
	}
	if filter.PowerLevel != nil {
		w.Equal("power_level", *filter.PowerLevel)
	}
}

// Search returns heroes matching filter, newest first.
func (r *SQLHeroRepository) Search(ctx context.Context, filter domain.HeroFilter) ([]domain.Hero, error) {
	w := newWhereBuilder(r.dialect)
	r.applyFilter(w, filter)

	var sb strings.Builder
	sb.WriteString(`SELECT ` + heroColumns + ` FROM superheroes`)
	sb.WriteString(w.Clause())
	sb.WriteString(` ORDER BY created_at DESC, id DESC`)

	switch {
	case filter.Limit != nil:
		sb.WriteString(` LIMIT ` + w.Arg(*filter.Limit))
	case filter.Offset != nil && r.dialect.Name() == "sqlite":
		// SQLite only accepts OFFSET after a LIMIT; -1 means no limit.
		sb.WriteString(` LIMIT -1`)
	}
	if filter.Offset != nil {
		sb.WriteString(` OFFSET ` + w.Arg(*filter.Offset))
	}

	return r.queryHeroes(ctx, sb.String(), w.Args()...)
}

// SearchActiveByAlias returns active heroes whose alias contains term.
func (r *SQLHeroRepository) SearchActiveByAlias(ctx context.Context, term string) ([]domain.Hero, error) {
	w := newWhereBuilder(r.dialect)
	w.ContainsFold("alias", term)
	w.Equal("is_active", true)

	query := `SELECT ` + heroColumns + ` FROM superheroes` + w.Clause() + ` ORDER BY created_at DESC, id DESC`
	return r.queryHeroes(ctx, query, w.Args()...)
}

// Count returns the number of heroes matching filter, ignoring Limit and Offset.
func (r *SQLHeroRepository) Count(ctx context.Context, filter domain.HeroFilter) (int, error) {
	w := newWhereBuilder(r.dialect)
	r.applyFilter(w, filter)

	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM superheroes`+w.Clause(), w.Args()...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count heroes: %w", err)
	}
	return count, nil
}

// Update writes the provided columns plus updated_at.
func (r *SQLHeroRepository) Update(ctx context.Context, id int64, changes domain.HeroChanges) (int64, error) {
	if changes.UpdatedAt.IsZero() {
		changes.UpdatedAt = r.now()
	}

	var sets []string
	var args []any
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = "+r.dialect.Placeholder(len(args)))
	}

	if changes.Name != nil {
		set("name", *changes.Name)
	}
	if changes.Alias != nil {
		set("alias", *changes.Alias)
	}
	if changes.Powers != nil {
		set("powers", *changes.Powers)
	}
	if changes.City != nil {
		set("city", *changes.City)
	}
	if changes.Description != nil {
		set("description", *changes.Description)
	}
	if changes.ImageURL != nil {
		set("image_url", *changes.ImageURL)
	}
	if changes.PowerLevel != nil {
		set("power_level", *changes.PowerLevel)
	}
	if changes.IsActive != nil {
		set("is_active", *changes.IsActive)
	}
	set("updated_at", changes.UpdatedAt)

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE superheroes SET %s WHERE id = %s`,
		strings.Join(sets, ", "), r.dialect.Placeholder(len(args)))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrAliasConflict
		}
		return 0, fmt.Errorf("update hero %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update hero %d: rows affected: %w", id, err)
	}
	return affected, nil
}

// Delete removes the hero permanently.
func (r *SQLHeroRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM superheroes WHERE id = `+r.dialect.Placeholder(1), id)
	if err != nil {
		return 0, fmt.Errorf("delete hero %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete hero %d: rows affected: %w", id, err)
	}
	return affected, nil
}

// CountByPowerLevel groups heroes by power level.
func (r *SQLHeroRepository) CountByPowerLevel(ctx context.Context) (map[int]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT power_level, COUNT(*)
		FROM superheroes
		GROUP BY power_level
		ORDER BY power_level`)
	if err != nil {
		return nil, fmt.Errorf("count by power level: %w", err)
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var level, count int
		if err := rows.Scan(&level, &count); err != nil {
			return nil, fmt.Errorf("scan power level count: %w", err)
		}
		counts[level] = count
	}
	return counts, rows.Err()
}

// TopCities returns the cities with the most heroes, ties broken by name.
func (r *SQLHeroRepository) TopCities(ctx context.Context, limit int) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT city, COUNT(*) AS hero_count
		FROM superheroes
		GROUP BY city
		ORDER BY hero_count DESC, city ASC
		LIMIT `+r.dialect.Placeholder(1), limit)
	if err != nil {
		return nil, fmt.Errorf("count by city: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var city string
		var count int
		if err := rows.Scan(&city, &count); err != nil {
			return nil, fmt.Errorf("scan city count: %w", err)
		}
		counts[city] = count
	}
	return counts, rows.Err()
}

func (r *SQLHeroRepository) queryHeroes(ctx context.Context, query string, args ...any) ([]domain.Hero, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query heroes: %w", err)
	}
	defer rows.Close()

	heroes := make([]domain.Hero, 0)
	for rows.Next() {
		hero, err := scanHero(rows)
		if err != nil {
			return nil, fmt.Errorf("scan hero: %w", err)
		}
		heroes = append(heroes, *hero)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate heroes: %w", err)
	}
	return heroes, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHero(row rowScanner) (*domain.Hero, error) {
	var h domain.Hero
	var description, imageURL sql.NullString
	err := row.Scan(&h.ID, &h.Name, &h.Alias, &h.Powers, &h.City, &description, &imageURL,
		&h.PowerLevel, &h.IsActive, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if description.Valid {
		h.Description = &description.String
	}
	if imageURL.Valid {
		h.ImageURL = &imageURL.String
	}
	h.CreatedAt = h.CreatedAt.UTC()
	h.UpdatedAt = h.UpdatedAt.UTC()
	return &h, nil
}
