package validator

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"superheroes-api/internal/domain"
)

// Validator provides validation methods for hero payloads.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCreate validates a create payload. It returns a
// *domain.ValidationError or nil.
func (v *Validator) ValidateCreate(in *domain.CreateHeroInput) error {
	err := validation.ValidateStruct(in,
		validation.Field(&in.Name,
			validation.Required.Error("name is required"),
			validation.RuneLength(1, domain.MaxNameLength),
		),
		validation.Field(&in.Alias,
			validation.Required.Error("alias is required"),
			validation.RuneLength(1, domain.MaxAliasLength),
		),
		validation.Field(&in.Powers,
			validation.Required.Error("at least one power is required"),
			validation.By(powersRule),
		),
		validation.Field(&in.City,
			validation.Required.Error("city is required"),
			validation.RuneLength(1, domain.MaxCityLength),
		),
		validation.Field(&in.ImageURL,
			validation.RuneLength(0, domain.MaxImageURLLength),
			is.URL.Error("must be a valid URL"),
		),
		validation.Field(&in.PowerLevel,
			validation.NotNil.Error("powerLevel is required"),
			validation.By(powerLevelRule),
		),
	)
	return ToValidationError(err)
}

// ValidateUpdate validates the fields present in a partial payload.
func (v *Validator) ValidateUpdate(in *domain.UpdateHeroInput) error {
	err := validation.ValidateStruct(in,
		validation.Field(&in.Name,
			validation.NilOrNotEmpty.Error("name cannot be empty"),
			validation.RuneLength(0, domain.MaxNameLength),
		),
		validation.Field(&in.Alias,
			validation.NilOrNotEmpty.Error("alias cannot be empty"),
			validation.RuneLength(0, domain.MaxAliasLength),
		),
		validation.Field(&in.Powers,
			validation.NilOrNotEmpty.Error("at least one power is required"),
			validation.By(powersRule),
		),
		validation.Field(&in.City,
			validation.NilOrNotEmpty.Error("city cannot be empty"),
			validation.RuneLength(0, domain.MaxCityLength),
		),
		validation.Field(&in.ImageURL,
			validation.RuneLength(0, domain.MaxImageURLLength),
			is.URL.Error("must be a valid URL"),
		),
		validation.Field(&in.PowerLevel,
			validation.By(powerLevelRule),
		),
	)
	return ToValidationError(err)
}

// powerLevelRule checks the range on *int. ozzo's Min skips zero values,
// so the bounds are checked here.
func powerLevelRule(value interface{}) error {
	level, ok := value.(*int)
	if !ok || level == nil {
		return nil
	}
	if *level < domain.MinPowerLevel || *level > domain.MaxPowerLevel {
		return validation.NewError("validation_power_level_range",
			fmt.Sprintf("must be between %d and %d", domain.MinPowerLevel, domain.MaxPowerLevel))
	}
	return nil
}

// powersRule rejects lists made only of blank entries and entries holding
// the storage separator, which would split into extra powers when read back.
func powersRule(value interface{}) error {
	var powers domain.PowerList
	switch v := value.(type) {
	case domain.PowerList:
		powers = v
	case *domain.PowerList:
		if v == nil {
			return nil
		}
		powers = *v
	default:
		return nil
	}
	if len(powers) > 0 && len(domain.NormalizePowers(powers)) == 0 {
		return validation.NewError("validation_powers_blank", "at least one power is required")
	}
	for _, p := range powers {
		if strings.Contains(p, ",") {
			return validation.NewError("validation_powers_comma", "powers must not contain commas")
		}
	}
	return nil
}

// ToValidationError converts ozzo validation errors to a *domain.ValidationError.
// Other errors are returned unchanged.
func ToValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ve validation.Errors
	if !errors.As(err, &ve) {
		return err
	}

	fields := make(map[string]string, len(ve))
	for field, fieldErr := range ve {
		if fieldErr != nil {
			fields[field] = fieldErr.Error()
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return &domain.ValidationError{Fields: fields}
}
