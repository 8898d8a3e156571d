package validation

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterCustomValidators installs the binding validators the DTOs rely on.
// Call once at startup with gin's binding validator engine.
func RegisterCustomValidators(v *validator.Validate) error {
	return v.RegisterValidation("decimalgt0", decimalGreaterThanZero)
}

// decimalGreaterThanZero validates that a decimal.Decimal field is strictly
// positive. Zero and negative amounts never post; direction carries the sign.
func decimalGreaterThanZero(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return value.GreaterThan(decimal.Zero)
}
