package domain

import "github.com/shopspring/decimal"

// MaxAmount is the largest transaction or budget amount accepted.
var MaxAmount = decimal.RequireFromString("999999999999.99")

// ValidateAmount checks that a is positive and within MaxAmount and
// MaxAmountScale. The exponent is bounded before comparing, since comparison
// rescales both operands and 1e50000000 would expand to millions of digits.
func ValidateAmount(a decimal.Decimal) error {
	if !a.IsPositive() {
		return ErrInvalidAmount
	}
	if a.Exponent() < -MaxAmountScale {
		return ErrAmountTooPrecise
	}
	if a.Exponent() > maxAmountExponent {
		return ErrAmountTooLarge
	}
	if a.GreaterThan(MaxAmount) {
		return ErrAmountTooLarge
	}
	return nil
}
