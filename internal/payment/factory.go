package payment

import (
	"fmt"
	"io"
	"os"

	"github.com/go-faster/errors"
)

// Labels of the built-in payment methods.
const (
	LabelCreditCard = "CreditCard"
	LabelPayPal     = "PayPal"
)

// ErrInvalidType is returned when a label does not name a registered method.
var ErrInvalidType = errors.New("invalid payment type")

// UnknownTypeError reports the label that could not be resolved.
type UnknownTypeError struct {
	Label string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("%s %q", ErrInvalidType, e.Label)
}

// Unwrap allows errors.Is(err, ErrInvalidType).
func (e *UnknownTypeError) Unwrap() error {
	return ErrInvalidType
}

// Constructor builds a Method that writes its confirmation to out.
type Constructor func(out io.Writer) Method

// Factory maps case-sensitive labels to payment methods. A fresh Method is
// built on every Create call.
type Factory struct {
	out    io.Writer
	labels []string
	byName map[string]Constructor
}

// NewFactory returns a Factory with CreditCard and PayPal registered.
// Methods write to out, or os.Stdout when out is nil.
func NewFactory(out io.Writer) *Factory {
	if out == nil {
		out = os.Stdout
	}
	f := &Factory{
		out:    out,
		byName: make(map[string]Constructor, 2),
	}
	f.Register(LabelCreditCard, func(out io.Writer) Method { return NewCreditCard(out) })
	f.Register(LabelPayPal, func(out io.Writer) Method { return NewPayPal(out) })
	return f
}

// Register adds or replaces the constructor for label.
func (f *Factory) Register(label string, c Constructor) {
	if _, ok := f.byName[label]; !ok {
		f.labels = append(f.labels, label)
	}
	f.byName[label] = c
}

// Labels returns registered labels in registration order.
func (f *Factory) Labels() []string {
	return append([]string(nil), f.labels...)
}

// Create returns a new Method for label, or an *UnknownTypeError wrapping
// ErrInvalidType.
func (f *Factory) Create(label string) (Method, error) {
	c, ok := f.byName[label]
	if !ok {
		return nil, &UnknownTypeError{Label: label}
	}
	return c(f.out), nil
}
