package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Order is a single payment request placed from the console.
//
// ID and CreatedAt are informational; the repository does not key on them.
type Order struct {
	ID          string
	Amount      decimal.Decimal
	PaymentType string
	CreatedAt   time.Time
}

// Repository stores processed orders.
type Repository interface {
	Save(ctx context.Context, order *Order) error
	List(ctx context.Context) ([]Order, error)
}

// PaymentMethod charges an amount.
type PaymentMethod interface {
	ProcessPayment(ctx context.Context, amount decimal.Decimal) error
}

// Logger records processing milestones.
type Logger interface {
	Log(message string)
}
