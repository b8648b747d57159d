// Package memory provides process-lifetime storage backends.
package memory

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/go-faster/errors"

	"github.com/xenking/payment-console/internal/domain/order"
)

var _ order.Repository = (*OrderRepository)(nil)

// OrderRepository implements order.Repository as an append-only slice.
// Orders are kept in insertion order; duplicates are allowed.
type OrderRepository struct {
	out io.Writer

	mu     sync.RWMutex
	orders []order.Order
}

// NewOrderRepository returns an empty OrderRepository that prints save
// confirmations to out, or os.Stdout when out is nil.
func NewOrderRepository(out io.Writer) *OrderRepository {
	if out == nil {
		out = os.Stdout
	}
	return &OrderRepository{out: out}
}

// Save appends a copy of o and prints a confirmation.
func (r *OrderRepository) Save(_ context.Context, o *order.Order) error {
	if o == nil {
		return errors.New("order repository: order is required")
	}

	r.mu.Lock()
	r.orders = append(r.orders, *o)
	r.mu.Unlock()

	if _, err := fmt.Fprintln(r.out, "Order saved successfully."); err != nil {
		return errors.Wrap(err, "write save confirmation")
	}
	return nil
}

// List returns a snapshot of all stored orders in insertion order.
func (r *OrderRepository) List(_ context.Context) ([]order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]order.Order(nil), r.orders...), nil
}

// Len reports the number of stored orders.
func (r *OrderRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.orders)
}
