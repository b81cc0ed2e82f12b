package service

import (
	"net/url"
	"strconv"
	"strings"

	"superheroes-api/internal/domain"
)

// Pagination bounds for list queries.
const (
	MinLimit = 1
	MaxLimit = 100
)

// ParseHeroFilter normalizes raw list query parameters. Text filters are
// trimmed and dropped when blank; numeric and boolean filters are parsed
// strictly. Every malformed parameter is reported in one
// *domain.ValidationError.
func ParseHeroFilter(values url.Values) (domain.HeroFilter, error) {
	var filter domain.HeroFilter
	invalid := make(map[string]string)

	filter.Name = trimmedParam(values, "name")
	filter.City = trimmedParam(values, "city")

	if raw, ok := rawParam(values, "isActive"); ok {
		switch raw {
		case "true":
			filter.IsActive = boolPtr(true)
		case "false":
			filter.IsActive = boolPtr(false)
		default:
			invalid["isActive"] = "invalid boolean value"
		}
	}

	if raw, ok := nonEmptyParam(values, "powerLevel"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n < domain.MinPowerLevel || n > domain.MaxPowerLevel {
			invalid["powerLevel"] = "must be an integer between 1 and 10"
		} else {
			filter.PowerLevel = &n
		}
	}

	if raw, ok := nonEmptyParam(values, "limit"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n < MinLimit || n > MaxLimit {
			invalid["limit"] = "must be an integer between 1 and 100"
		} else {
			filter.Limit = &n
		}
	}

	if raw, ok := nonEmptyParam(values, "offset"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			invalid["offset"] = "must be a non-negative integer"
		} else {
			filter.Offset = &n
		}
	}

	if len(invalid) > 0 {
		return domain.HeroFilter{}, &domain.ValidationError{Fields: invalid}
	}
	return filter, nil
}

func rawParam(values url.Values, key string) (string, bool) {
	if _, ok := values[key]; !ok {
		return "", false
	}
	return values.Get(key), true
}

func nonEmptyParam(values url.Values, key string) (string, bool) {
	raw, ok := rawParam(values, key)
	if !ok || raw == "" {
		return "", false
	}
	return raw, true
}

func trimmedParam(values url.Values, key string) *string {
	v := strings.TrimSpace(values.Get(key))
	if v == "" {
		return nil
	}
	return &v
}

func boolPtr(b bool) *bool { return &b }
