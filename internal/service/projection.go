package service

import (
	"time"

	"superheroes-api/internal/domain"
)

// TimestampFormat is ISO-8601 with milliseconds; times are rendered in UTC.
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// HeroResponse is the client-facing representation of a hero.
type HeroResponse struct {
	ID                    int64    `json:"id"`
	Name                  string   `json:"name"`
	Alias                 string   `json:"alias"`
	Powers                []string `json:"powers"`
	City                  string   `json:"city"`
	Description           *string  `json:"description"`
	ImageURL              *string  `json:"imageUrl"`
	PowerLevel            int      `json:"powerLevel"`
	IsActive              bool     `json:"isActive"`
	CreatedAt             string   `json:"createdAt"`
	UpdatedAt             string   `json:"updatedAt"`
	PowerCount            int      `json:"powerCount"`
	PowerLevelDescription string   `json:"powerLevelDescription"`
}

// HeroPage is one page of a list query plus the unpaginated total.
type HeroPage struct {
	Data  []HeroResponse
	Total int
}

// ProjectHero maps a stored hero to its response shape.
func ProjectHero(h *domain.Hero) HeroResponse {
	powers := domain.SplitPowers(h.Powers)
	return HeroResponse{
		ID:                    h.ID,
		Name:                  h.Name,
		Alias:                 h.Alias,
		Powers:                powers,
		City:                  h.City,
		Description:           h.Description,
		ImageURL:              h.ImageURL,
		PowerLevel:            h.PowerLevel,
		IsActive:              h.IsActive,
		CreatedAt:             formatTimestamp(h.CreatedAt),
		UpdatedAt:             formatTimestamp(h.UpdatedAt),
		PowerCount:            len(powers),
		PowerLevelDescription: domain.PowerLevelDescription(h.PowerLevel),
	}
}

// ProjectHeroes maps a slice of stored heroes, never returning nil.
func ProjectHeroes(heroes []domain.Hero) []HeroResponse {
	out := make([]HeroResponse, 0, len(heroes))
	for i := range heroes {
		out = append(out, ProjectHero(&heroes[i]))
	}
	return out
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampFormat)
}
