package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "whole number", input: "150", want: "150"},
		{name: "two decimals", input: "99.99", want: "99.99"},
		{name: "zero", input: "0", want: "0"},
		{name: "surrounding whitespace", input: "  42.5 \r", want: "42.5"},
		{name: "negative is accepted", input: "-3", want: "-3"},
		{name: "max scale", input: "0.0000000000000000000000000001", want: "0.0000000000000000000000000001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, input := range []string{
		"abc", "", "   ", "12,5", "$10", "1.2.3",
		"1e5", "1E5", "1e-300000000", "2.5e2",
		"0.00000000000000000000000000001",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   decimal.Decimal
		want string
	}{
		{name: "integer input", in: decimal.RequireFromString("150"), want: "150"},
		{name: "cents", in: decimal.RequireFromString("99.99"), want: "99.99"},
		{name: "zero", in: decimal.RequireFromString("0"), want: "0"},
		{
			name: "discounted integer keeps one decimal",
			in:   decimal.RequireFromString("200").Mul(decimal.RequireFromString("0.9")),
			want: "180.0",
		},
		{
			name: "discounted cents keep three decimals",
			in:   decimal.RequireFromString("100.01").Mul(decimal.RequireFromString("0.9")),
			want: "90.009",
		},
		{name: "trailing zeros preserved", in: decimal.RequireFromString("12.50"), want: "12.50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.in))
		})
	}
}
