package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/devpoints/codecasino/internal/zodiac"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Register custom validations
	_ = v.RegisterValidation("zodiac", validateZodiacSign)
	_ = v.RegisterValidation("betoption", validateBetOption)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// validateZodiacSign accepts one of the twelve known signs
func validateZodiacSign(fl validator.FieldLevel) bool {
	return zodiac.IsValid(fl.Field().String())
}

// validateBetOption accepts exactly option 1 or 2
func validateBetOption(fl validator.FieldLevel) bool {
	v := fl.Field().Int()
	return v == 1 || v == 2
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = fmt.Sprintf("%s is required", field)
		case "min":
			errs[field] = fmt.Sprintf("%s must be at least %s", field, e.Param())
		case "max":
			errs[field] = fmt.Sprintf("%s must be at most %s", field, e.Param())
		case "zodiac":
			errs[field] = fmt.Sprintf("%s must be a valid zodiac sign", field)
		case "betoption":
			errs[field] = fmt.Sprintf("%s must be 1 or 2", field)
		case "oneof":
			errs[field] = fmt.Sprintf("%s must be one of: %s", field, e.Param())
		default:
			errs[field] = fmt.Sprintf("%s is invalid", field)
		}
	}

	return errs
}
