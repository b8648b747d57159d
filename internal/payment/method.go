// Package payment contains the supported payment methods and the factory
// that resolves them from a user-supplied label.
package payment

import (
	"context"
	"fmt"
	"io"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/payment-console/internal/domain/order"
	"github.com/xenking/payment-console/pkg/money"
)

// Method is a payment method that can charge an amount.
type Method = order.PaymentMethod

var (
	_ Method = (*CreditCard)(nil)
	_ Method = (*PayPal)(nil)
)

// CreditCard simulates a card charge by printing a confirmation.
type CreditCard struct {
	out io.Writer
}

// NewCreditCard returns a CreditCard writing to out.
func NewCreditCard(out io.Writer) *CreditCard {
	return &CreditCard{out: out}
}

// ProcessPayment prints the card charge confirmation.
func (c *CreditCard) ProcessPayment(_ context.Context, amount decimal.Decimal) error {
	return confirm(c.out, "credit card", amount)
}

// PayPal simulates a PayPal charge by printing a confirmation.
type PayPal struct {
	out io.Writer
}

// NewPayPal returns a PayPal writing to out.
func NewPayPal(out io.Writer) *PayPal {
	return &PayPal{out: out}
}

// ProcessPayment prints the PayPal charge confirmation.
func (p *PayPal) ProcessPayment(_ context.Context, amount decimal.Decimal) error {
	return confirm(p.out, "PayPal", amount)
}

func confirm(out io.Writer, name string, amount decimal.Decimal) error {
	if _, err := fmt.Fprintf(out, "Processing %s payment of $%s\n", name, money.Format(amount)); err != nil {
		return errors.Wrapf(err, "write %s confirmation", name)
	}
	return nil
}
