// Package identifiers validates South African company registration, income
// tax and VAT numbers.
package identifiers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validation tags registered by RegisterValidations.
const (
	TagRegistrationNumber = "company_reg"
	TagTaxNumber          = "tax_ref"
	TagVATNumber          = "vat_number"
)

var (
	registrationPattern = regexp.MustCompile(`^\d{4}/\d{6}/\d{2}$`)
	taxPattern          = regexp.MustCompile(`^[01239]\d{9}$`)
	vatPattern          = regexp.MustCompile(`^4\d{9}$`)
)

// ValidRegistrationNumber reports whether s looks like "2019/123456/07".
func ValidRegistrationNumber(s string) bool {
	return registrationPattern.MatchString(strings.TrimSpace(s))
}

// ValidTaxNumber reports whether s is a ten digit income tax reference
// starting with 0, 1, 2, 3 or 9.
func ValidTaxNumber(s string) bool {
	return taxPattern.MatchString(strings.TrimSpace(s))
}

// ValidVATNumber reports whether s is a ten digit VAT number starting with 4.
func ValidVATNumber(s string) bool {
	return vatPattern.MatchString(strings.TrimSpace(s))
}

// RegisterValidations adds the identifier tags to v.
func RegisterValidations(v *validator.Validate) error {
	checks := map[string]func(string) bool{
		TagRegistrationNumber: ValidRegistrationNumber,
		TagTaxNumber:          ValidTaxNumber,
		TagVATNumber:          ValidVATNumber,
	}
	for tag, check := range checks {
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return check(fl.Field().String())
		})
		if err != nil {
			return fmt.Errorf("registering %s validation: %w", tag, err)
		}
	}
	return nil
}

// NewValidator returns a validator with the identifier tags registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	if err := RegisterValidations(v); err != nil {
		panic(err)
	}
	return v
}
