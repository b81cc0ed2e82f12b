package domain

import "time"

// Hero represents a superhero record as stored in the database.
// Powers holds the comma-joined storage form; use SplitPowers to expand it.
type Hero struct {
	ID          int64
	Name        string
	Alias       string
	Powers      string
	City        string
	Description *string
	ImageURL    *string
	PowerLevel  int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Power level bounds.
const (
	MinPowerLevel = 1
	MaxPowerLevel = 10
)

// Column length limits.
const (
	MaxNameLength     = 100
	MaxAliasLength    = 100
	MaxCityLength     = 100
	MaxImageURLLength = 255
)

// CreateHeroInput is the payload accepted by the create operation.
type CreateHeroInput struct {
	Name        string    `json:"name"`
	Alias       string    `json:"alias"`
	Powers      PowerList `json:"powers"`
	City        string    `json:"city"`
	Description *string   `json:"description,omitempty"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	PowerLevel  *int      `json:"powerLevel"`
	IsActive    *bool     `json:"isActive,omitempty"`
}

// UpdateHeroInput is the partial payload accepted by the update operation.
// A nil field means "leave unchanged".
type UpdateHeroInput struct {
	Name        *string    `json:"name,omitempty"`
	Alias       *string    `json:"alias,omitempty"`
	Powers      *PowerList `json:"powers,omitempty"`
	City        *string    `json:"city,omitempty"`
	Description *string    `json:"description,omitempty"`
	ImageURL    *string    `json:"imageUrl,omitempty"`
	PowerLevel  *int       `json:"powerLevel,omitempty"`
	IsActive    *bool      `json:"isActive,omitempty"`
}

// IsEmpty reports whether no field was provided.
func (u UpdateHeroInput) IsEmpty() bool {
	return u.Name == nil && u.Alias == nil && u.Powers == nil && u.City == nil &&
		u.Description == nil && u.ImageURL == nil && u.PowerLevel == nil && u.IsActive == nil
}

// HeroChanges is the set of column values to write on update.
// Powers is already in its storage form.
type HeroChanges struct {
	Name        *string
	Alias       *string
	Powers      *string
	City        *string
	Description *string
	ImageURL    *string
	PowerLevel  *int
	IsActive    *bool
	UpdatedAt   time.Time
}

// HeroFilter is the normalized set of list filters. Nil fields are not applied.
type HeroFilter struct {
	Name       *string
	City       *string
	IsActive   *bool
	PowerLevel *int
	Limit      *int
	Offset     *int
}

// HeroStats aggregates counts over all heroes.
type HeroStats struct {
	Total        int            `json:"total"`
	Active       int            `json:"active"`
	Inactive     int            `json:"inactive"`
	ByPowerLevel map[int]int    `json:"byPowerLevel"`
	ByCities     map[string]int `json:"byCities"`
}

// PowerLevelDescription returns the label for a power level band.
func PowerLevelDescription(level int) string {
	switch {
	case level <= 3:
		return "Beginner"
	case level <= 6:
		return "Intermediate"
	case level <= 8:
		return "Advanced"
	default:
		return "Elite"
	}
}
