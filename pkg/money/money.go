// Package money parses and formats decimal currency amounts for console I/O.
package money

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrMalformed is returned when the input is not a plain decimal number.
var ErrMalformed = errors.New("malformed amount")

// MaxScale is the largest number of fractional digits Parse accepts.
const MaxScale = 28

// Parse converts user input such as "150", "99.99" or "0" to a decimal.
// Surrounding whitespace is ignored. Exponent notation and more than
// MaxScale fractional digits are rejected.
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "eE") {
		return decimal.Zero, errors.Wrapf(ErrMalformed, "parse %q", s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.Wrapf(ErrMalformed, "parse %q", s)
	}
	if -d.Exponent() > MaxScale {
		return decimal.Zero, errors.Wrapf(ErrMalformed, "parse %q: more than %d decimal places", s, MaxScale)
	}
	return d, nil
}

// Format renders d keeping its scale, so 200 discounted by 0.9 prints as
// "180.0" and a whole input like "150" prints without a fraction.
func Format(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}
