package order

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"
)

// ProcessorConfig holds non-dependency configuration for the Processor.
type ProcessorConfig struct {
	// Policy is the discount rule. The zero value means DefaultPolicy.
	Policy Policy
	// Out receives the discount notice. Defaults to os.Stdout.
	Out io.Writer
}

// Processor runs a single order through discount, payment and persistence.
type Processor struct {
	method PaymentMethod
	logger Logger
	orders Repository
	policy Policy
	out    io.Writer
}

// NewProcessor creates a Processor that charges through method and stores
// the result in orders.
func NewProcessor(
	method PaymentMethod,
	logger Logger,
	orders Repository,
	cfg ProcessorConfig,
) *Processor {
	if cfg.Policy.Multiplier.IsZero() {
		cfg.Policy = DefaultPolicy()
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	return &Processor{
		method: method,
		logger: logger,
		orders: orders,
		policy: cfg.Policy,
		out:    cfg.Out,
	}
}

// ProcessOrder applies the discount to o in place, charges the payment
// method with the resulting amount and saves the order.
func (p *Processor) ProcessOrder(ctx context.Context, o *Order) error {
	lg := zctx.From(ctx).With(
		zap.String("order_id", o.ID),
		zap.String("payment_type", o.PaymentType),
	)

	if amount, ok := p.policy.Apply(o.Amount); ok {
		lg.Debug("Discount applied",
			zap.Stringer("before", o.Amount),
			zap.Stringer("after", amount),
		)
		o.Amount = amount
		if _, err := fmt.Fprintf(p.out, "A %s%% discount has been applied!\n", p.policy.Percent()); err != nil {
			return errors.Wrap(err, "write discount notice")
		}
	}

	p.logger.Log("Processing order...")

	if err := p.method.ProcessPayment(ctx, o.Amount); err != nil {
		return errors.Wrap(err, "process payment")
	}

	if err := p.orders.Save(ctx, o); err != nil {
		return errors.Wrap(err, "save order")
	}

	p.logger.Log("Order processed.")
	lg.Debug("Order processed", zap.Stringer("amount", o.Amount))

	return nil
}
