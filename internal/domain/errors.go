package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrHeroNotFound is returned when an operation targets a missing hero.
	ErrHeroNotFound = errors.New("hero not found")
	// ErrAliasConflict is returned when another hero already holds the alias.
	ErrAliasConflict = errors.New("alias already exists")
	// ErrCreateFailed wraps unexpected store failures during create.
	ErrCreateFailed = errors.New("failed to create hero")
	// ErrUpdateFailed wraps unexpected store failures during update.
	ErrUpdateFailed = errors.New("failed to update hero")
)

// ValidationError reports malformed input, keyed by field name.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return strings.Join(parts, "; ")
}
