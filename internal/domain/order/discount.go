package order

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Policy is a flat discount: amounts strictly above Threshold are multiplied
// by Multiplier.
type Policy struct {
	Threshold  decimal.Decimal
	Multiplier decimal.Decimal
}

// DefaultPolicy gives 10% off orders over 100.
func DefaultPolicy() Policy {
	return Policy{
		Threshold:  decimal.NewFromInt(100),
		Multiplier: decimal.RequireFromString("0.9"),
	}
}

// Validate checks that the multiplier is in (0, 1].
func (p Policy) Validate() error {
	if !p.Multiplier.IsPositive() || p.Multiplier.GreaterThan(decimal.NewFromInt(1)) {
		return errors.Errorf("discount multiplier must be in (0, 1], got %s", p.Multiplier)
	}
	if p.Threshold.IsNegative() {
		return errors.Errorf("discount threshold must not be negative, got %s", p.Threshold)
	}
	return nil
}

// Apply returns the discounted amount and whether the discount was applied.
func (p Policy) Apply(amount decimal.Decimal) (decimal.Decimal, bool) {
	if !amount.GreaterThan(p.Threshold) {
		return amount, false
	}
	return amount.Mul(p.Multiplier), true
}

// Percent is the discount expressed as a percentage, e.g. "10" for 0.9.
func (p Policy) Percent() string {
	return decimal.NewFromInt(1).Sub(p.Multiplier).Mul(hundred).String()
}
