package identifiers

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidRegistrationNumber(t *testing.T) {
	assert.True(t, ValidRegistrationNumber("2019/123456/07"))
	assert.True(t, ValidRegistrationNumber(" 1999/000001/23 "))
	assert.False(t, ValidRegistrationNumber("2019/12345/07"))
	assert.False(t, ValidRegistrationNumber("2019-123456-07"))
	assert.False(t, ValidRegistrationNumber(""))
}

func TestValidTaxNumber(t *testing.T) {
	for _, ok := range []string{"0123456789", "1234567890", "2000000000", "3999999999", "9876543210"} {
		assert.True(t, ValidTaxNumber(ok), ok)
	}
	for _, bad := range []string{"4123456789", "5123456789", "123456789", "12345678901", "12345abcde"} {
		assert.False(t, ValidTaxNumber(bad), bad)
	}
}

func TestValidVATNumber(t *testing.T) {
	assert.True(t, ValidVATNumber("4123456789"))
	assert.False(t, ValidVATNumber("1123456789"))
	assert.False(t, ValidVATNumber("412345678"))
}

func TestRegisterValidations(t *testing.T) {
	type business struct {
		Registration string `validate:"omitempty,company_reg"`
		TaxNumber    string `validate:"omitempty,tax_ref"`
		VATNumber    string `validate:"omitempty,vat_number"`
	}

	v := NewValidator()
	require.NoError(t, v.Struct(business{}))
	require.NoError(t, v.Struct(business{
		Registration: "2019/123456/07",
		TaxNumber:    "9123456789",
		VATNumber:    "4123456789",
	}))

	err := v.Struct(business{Registration: "bad", VATNumber: "5123456789"})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 2)
	assert.Equal(t, "Registration", verrs[0].Field())
	assert.Equal(t, TagRegistrationNumber, verrs[0].Tag())
	assert.Equal(t, TagVATNumber, verrs[1].Tag())
}
