// Package money holds the decimal helpers shared by the financial engines:
// zero defaulting, sign checks and the rounding conventions used for billing.
package money

import (
	"fmt"

	"github.com/jvamontagens/assembly_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// ZeroIfNil treats a missing amount as zero.
func ZeroIfNil(value *decimal.Decimal) decimal.Decimal {
	if value == nil {
		return decimal.Zero
	}
	return *value
}

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(value decimal.Decimal) decimal.Decimal {
	return value.Round(2)
}

// Round4 rounds to 4 decimal places, half away from zero.
func Round4(value decimal.Decimal) decimal.Decimal {
	return value.Round(4)
}

// RequirePositive fails with a validation error naming the field when the
// value is zero or negative.
func RequirePositive(value decimal.Decimal, field string) error {
	if !value.IsPositive() {
		return fmt.Errorf("%w: %s must be greater than zero", apperrors.ErrValidation, field)
	}
	return nil
}

// RequireNonNegative fails with a validation error naming the field when the
// value is negative.
func RequireNonNegative(value decimal.Decimal, field string) error {
	if value.IsNegative() {
		return fmt.Errorf("%w: %s cannot be negative", apperrors.ErrValidation, field)
	}
	return nil
}

// NormalizeTaxRate converts percentage input to a fraction: values strictly
// greater than 1 are divided by 100, values up to and including 1 are taken as
// fractions already. Both paths round to 4 decimals. An input of exactly 1
// therefore means 100%, not 1%.
func NormalizeTaxRate(rate decimal.Decimal) decimal.Decimal {
	if rate.GreaterThan(decimal.NewFromInt(1)) {
		return rate.DivRound(oneHundred, 4)
	}
	return Round4(rate)
}
