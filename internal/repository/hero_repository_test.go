package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"superheroes-api/internal/domain"
	"superheroes-api/internal/repository"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func newHero(name, alias, city string, level int, active bool) *domain.Hero {
	return &domain.Hero{
		Name:       name,
		Alias:      alias,
		Powers:     "Flight, Strength",
		City:       city,
		PowerLevel: level,
		IsActive:   active,
	}
}

func TestSQLiteHeroRepository(t *testing.T) {
	testDB := SetupSQLiteDB(t)
	defer testDB.Cleanup(t)

	runHeroRepositoryTests(t, testDB)
}

func TestPostgresHeroRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupPostgresDB(t)
	defer testDB.Cleanup(t)

	runHeroRepositoryTests(t, testDB)
}

func runHeroRepositoryTests(t *testing.T, testDB *TestDB) {
	dialect, err := repository.NewDialect(testDB.Dialect)
	require.NoError(t, err)

	repo := repository.NewSQLHeroRepository(testDB.DB, dialect)
	ctx := context.Background()

	seed := func(t *testing.T, heroes ...*domain.Hero) {
		t.Helper()
		for _, h := range heroes {
			require.NoError(t, repo.Create(ctx, h))
		}
	}

	t.Run("create and get hero", func(t *testing.T) {
		testDB.TruncateHeroes(t)

		hero := newHero("Clark Kent", "Superman", "Metropolis", 10, true)
		hero.Description = strPtr("Last son of Krypton")

		err := repo.Create(ctx, hero)
		require.NoError(t, err)
		assert.NotZero(t, hero.ID)
		assert.False(t, hero.CreatedAt.IsZero())
		assert.Equal(t, hero.CreatedAt, hero.UpdatedAt)

		retrieved, err := repo.FindByID(ctx, hero.ID)
		require.NoError(t, err)
		require.NotNil(t, retrieved)

		assert.Equal(t, hero.Name, retrieved.Name)
		assert.Equal(t, hero.Alias, retrieved.Alias)
		assert.Equal(t, "Flight, Strength", retrieved.Powers)
		assert.Equal(t, 10, retrieved.PowerLevel)
		assert.True(t, retrieved.IsActive)
		require.NotNil(t, retrieved.Description)
		assert.Equal(t, "Last son of Krypton", *retrieved.Description)
		assert.Nil(t, retrieved.ImageURL)
		assert.WithinDuration(t, hero.CreatedAt, retrieved.CreatedAt, time.Millisecond)
		assert.Equal(t, time.UTC, retrieved.CreatedAt.Location())
	})

	t.Run("get non-existent hero", func(t *testing.T) {
		testDB.TruncateHeroes(t)

		retrieved, err := repo.FindByID(ctx, 999)
		require.NoError(t, err)
		assert.Nil(t, retrieved)
	})

	t.Run("find by alias is exact", func(t *testing.T) {
		testDB.TruncateHeroes(t)
		seed(t, newHero("Bruce Wayne", "Batman", "Gotham", 8, true))

		found, err := repo.FindByAlias(ctx, "Batman")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Bruce Wayne", found.Name)

		missing, err := repo.FindByAlias(ctx, "Bat")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("duplicate alias is a conflict", func(t *testing.T) {
		testDB.TruncateHeroes(t)
		seed(t, newHero("Bruce Wayne", "Batman", "Gotham", 8, true))

		err := repo.Create(ctx, newHero("Someone Else", "Batman", "Gotham", 3, true))
		assert.ErrorIs(t, err, domain.ErrAliasConflict)
	})

	t.Run("search filters are case-insensitive and combined", func(t *testing.T) {
		testDB.TruncateHeroes(t)
		seed(t,
			newHero("Bruce Wayne", "Batman", "Gotham", 8, true),
			newHero("Selina Kyle", "Catwoman", "Gotham", 6, false),
			newHero("Clark Kent", "Superman", "Metropolis", 10, true),
		)

		heroes, err := repo.Search(ctx, domain.HeroFilter{City: strPtr("gOtHaM")})
		require.NoError(t, err)
		assert.Len(t, heroes, 2)

		heroes, err = repo.Search(ctx, domain.HeroFilter{City: strPtr("gotham"), IsActive: boolPtr(true)})
		require.NoError(t, err)
		require.Len(t, heroes, 1)
		assert.Equal(t, "Batman", heroes[0].Alias)

		heroes, err = repo.Search(ctx, domain.HeroFilter{Name: strPtr("KENT"), PowerLevel: intPtr(10)})
		require.NoError(t, err)
		require.Len(t, heroes, 1)
		assert.Equal(t, "Superman", heroes[0].Alias)

		count, err := repo.Count(ctx, domain.HeroFilter{City: strPtr("gotham")})
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("search terms match wildcards literally", func(t *testing.T) {
		testDB.TruncateHeroes(t)
		seed(t,
			newHero("Percent Man", "100% Hero", "Metropolis", 5, true),
			newHero("Plain Man", "Plain", "Metropolis", 5, true),
		)

		heroes, err := repo.Search(ctx, domain.HeroFilter{Name: strPtr("%")})
		require.NoError(t, err)
		assert.Empty(t, heroes)

		heroes, err = repo.SearchActiveByAlias(ctx, "0%")
		require.NoError(t, err)
		require.Len(t, heroes, 1)
		assert.Equal(t, "100% Hero", heroes[0].Alias)
	})

	t.Run("search orders newest first and paginates", func(t *testing.T) {
		testDB.TruncateHeroes(t)
		for i, alias := range []string{"A", "B", "C", "D", "E"} {
			h := newHero("Hero "+alias, alias, "Metropolis", i+1, true)
			seed(t, h)
		}

		all, err := repo.Search(ctx, domain.HeroFilter{})
		require.NoError(t, err)
		require.Len(t, all, 5)
		assert.Equal(t, "E", all[0].Alias)
		assert.Equal(t, "A", all[4].Alias)

		page, err := repo.Search(ctx, domain.HeroFilter{Limit: intPtr(2), Offset: intPtr(1)})
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, "D", page[0].Alias)
		assert.Equal(t, "C", page[1].Alias)

		tail, err := repo.Search(ctx, domain.HeroFilter{Offset: intPtr(3)})
		require.NoError(t, err)
		require.Len(t, tail, 2)
		assert.Equal(t, "B", tail[0].Alias)

		count, err := repo.Count(ctx, domain.HeroFilter{Limit: intPtr(2), Offset: intPtr(1)})
		require.NoError(t, err)
		assert.Equal(t, 5, count)
	})

	t.Run("search active by alias skips inactive heroes", func(t *testing.T) {
		testDB.TruncateHeroes(t)
		seed(t,
			newHero("Peter Parker", "Spider-Man", "New York", 7, true),
			newHero("Miles Morales", "Spider-Man 2", "New York", 6, false),
			newHero("Tony Stark", "Iron Man", "New York", 8, true),
		)

		heroes, err := repo.SearchActiveByAlias(ctx, "spider")
		require.NoError(t, err)
		require.Len(t, heroes, 1)
		assert.Equal(t, "Spider-Man", heroes[0].Alias)

		heroes, err = repo.SearchActiveByAlias(ctx, "MAN")
		require.NoError(t, err)
		assert.Len(t, heroes, 2)
	})

	t.Run("update writes only provided fields", func(t *testing.T) {
		testDB.TruncateHeroes(t)
		hero := newHero("Barry Allen", "Flash", "Central City", 7, true)
		seed(t, hero)

		later := hero.UpdatedAt.Add(time.Minute)
		affected, err := repo.Update(ctx, hero.ID, domain.HeroChanges{
			City:       strPtr("Keystone"),
			PowerLevel: intPtr(9),
			IsActive:   boolPtr(false),
			UpdatedAt:  later,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		retrieved, err := repo.FindByID(ctx, hero.ID)
		require.NoError(t, err)
		require.NotNil(t, retrieved)
		assert.Equal(t, "Barry Allen", retrieved.Name)
		assert.Equal(t, "Keystone", retrieved.City)
		assert.Equal(t, 9, retrieved.PowerLevel)
		assert.False(t, retrieved.IsActive)
		assert.WithinDuration(t, later, retrieved.UpdatedAt, time.Millisecond)
		assert.WithinDuration(t, hero.CreatedAt, retrieved.CreatedAt, time.Millisecond)
	})

	t.Run("update missing hero affects nothing", func(t *testing.T) {
		testDB.TruncateHeroes(t)

		affected, err := repo.Update(ctx, 42, domain.HeroChanges{Name: strPtr("Nobody")})
		require.NoError(t, err)
		assert.Zero(t, affected)
	})

	t.Run("update to taken alias is a conflict", func(t *testing.T) {
		testDB.TruncateHeroes(t)
		first := newHero("Hal Jordan", "Green Lantern", "Coast City", 8, true)
		second := newHero("John Stewart", "Lantern", "Detroit", 8, true)
		seed(t, first, second)

		_, err := repo.Update(ctx, second.ID, domain.HeroChanges{Alias: strPtr("Green Lantern")})
		assert.ErrorIs(t, err, domain.ErrAliasConflict)
	})

	t.Run("delete hero", func(t *testing.T) {
		testDB.TruncateHeroes(t)
		hero := newHero("Arthur Curry", "Aquaman", "Atlantis", 7, true)
		seed(t, hero)

		affected, err := repo.Delete(ctx, hero.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		affected, err = repo.Delete(ctx, hero.ID)
		require.NoError(t, err)
		assert.Zero(t, affected)

		retrieved, err := repo.FindByID(ctx, hero.ID)
		require.NoError(t, err)
		assert.Nil(t, retrieved)
	})

	t.Run("aggregates", func(t *testing.T) {
		testDB.TruncateHeroes(t)
		seed(t,
			newHero("A", "A", "Gotham", 8, true),
			newHero("B", "B", "Gotham", 8, false),
			newHero("C", "C", "Metropolis", 10, true),
			newHero("D", "D", "Atlantis", 3, true),
			newHero("E", "E", "Zenith", 3, true),
		)

		levels, err := repo.CountByPowerLevel(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[int]int{3: 2, 8: 2, 10: 1}, levels)

		cities, err := repo.TopCities(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"Gotham": 2, "Atlantis": 1}, cities)
	})

	t.Run("aggregates on empty table", func(t *testing.T) {
		testDB.TruncateHeroes(t)

		levels, err := repo.CountByPowerLevel(ctx)
		require.NoError(t, err)
		assert.Empty(t, levels)

		cities, err := repo.TopCities(ctx, 5)
		require.NoError(t, err)
		assert.Empty(t, cities)
	})
}
