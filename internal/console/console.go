// Package console implements the interactive menu loop.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/xenking/payment-console/internal/domain/order"
	"github.com/xenking/payment-console/internal/payment"
	"github.com/xenking/payment-console/pkg/money"
)

const menu = "Choose an option: \n1. Make a Payment \n2. View Transaction History \n3. Exit"

// Menu choices.
const (
	choicePay     = "1"
	choiceHistory = "2"
	choiceExit    = "3"
)

// MethodFactory resolves payment methods by label.
type MethodFactory interface {
	Create(label string) (payment.Method, error)
	Labels() []string
}

// Deps are the process-wide collaborators shared by every iteration.
type Deps struct {
	Factory MethodFactory
	Orders  order.Repository
	Logger  order.Logger
}

// Config holds non-dependency configuration for the Console.
type Config struct {
	Policy order.Policy
	// Now is the clock used to stamp new orders. Defaults to time.Now.
	Now func() time.Time
}

// Console reads menu commands from in and writes prompts and results to out.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
	err error

	factory MethodFactory
	orders  order.Repository
	logger  order.Logger
	policy  order.Policy
	now     func() time.Time
}

// New creates a Console.
func New(in io.Reader, out io.Writer, deps Deps, cfg Config) *Console {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Console{
		in:      bufio.NewScanner(in),
		out:     out,
		factory: deps.Factory,
		orders:  deps.Orders,
		logger:  deps.Logger,
		policy:  cfg.Policy,
		now:     cfg.Now,
	}
}

// Run executes the menu loop until the user chooses to exit, input ends or
// ctx is cancelled. End of input is treated as an exit and returns nil.
func (c *Console) Run(ctx context.Context) error {
	lg := zctx.From(ctx)
	for {
		if err := ctx.Err(); err != nil {
			lg.Debug("Console stopped", zap.Error(err))
			return nil
		}

		c.println(menu)
		line, ok := c.readLine()
		if !ok {
			return c.finish(lg)
		}

		var (
			cont = true
			err  error
		)
		switch choice := strings.TrimRight(line, "\r"); choice {
		case choicePay:
			cont, err = c.makePayment(ctx)
		case choiceHistory:
			err = c.showHistory(ctx)
		case choiceExit:
			cont = false
		default:
			lg.Debug("Invalid menu choice", zap.String("input", choice))
			c.println("Invalid choice. Please enter 1, 2, or 3.")
		}
		if err != nil {
			return err
		}
		if c.err != nil {
			return errors.Wrap(c.err, "write output")
		}
		if !cont {
			return c.finish(lg)
		}
	}
}

// makePayment runs the payment flow. It reports false when input ended.
func (c *Console) makePayment(ctx context.Context) (bool, error) {
	c.print("Enter payment type (" + strings.Join(c.factory.Labels(), "/") + "): ")
	label, ok := c.readLine()
	if !ok {
		return false, nil
	}
	label = strings.TrimRight(label, "\r")

	c.print("Enter order amount: ")
	amount, ok := c.readAmount()
	if !ok {
		return false, nil
	}

	method, err := c.factory.Create(label)
	if err != nil {
		if errors.Is(err, payment.ErrInvalidType) {
			zctx.From(ctx).Debug("Payment type rejected", zap.Error(err))
			c.println("Error: Invalid payment type")
			return true, nil
		}
		return false, errors.Wrap(err, "create payment method")
	}

	o := &order.Order{
		ID:          uuid.New().String(),
		Amount:      amount,
		PaymentType: label,
		CreatedAt:   c.now(),
	}
	proc := order.NewProcessor(method, c.logger, c.orders, order.ProcessorConfig{
		Policy: c.policy,
		Out:    c.out,
	})
	if err := proc.ProcessOrder(ctx, o); err != nil {
		return false, errors.Wrapf(err, "process order %s", o.ID)
	}
	return true, nil
}

// readAmount re-prompts until a decimal is entered.
func (c *Console) readAmount() (decimal.Decimal, bool) {
	for {
		line, ok := c.readLine()
		if !ok {
			return decimal.Zero, false
		}
		if d, err := money.Parse(line); err == nil {
			return d, true
		}
		c.print("Invalid input. Enter a valid amount: ")
	}
}

func (c *Console) showHistory(ctx context.Context) error {
	orders, err := c.orders.List(ctx)
	if err != nil {
		return errors.Wrap(err, "list orders")
	}
	c.println("\nTransaction History:")
	for _, o := range orders {
		c.println(fmt.Sprintf("- Payment: %s, Amount: $%s", o.PaymentType, money.Format(o.Amount)))
	}
	return nil
}

func (c *Console) finish(lg *zap.Logger) error {
	if err := c.in.Err(); err != nil {
		return errors.Wrap(err, "read input")
	}
	if c.err != nil {
		return errors.Wrap(c.err, "write output")
	}
	lg.Debug("Console exited")
	return nil
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *Console) print(s string) {
	if c.err != nil {
		return
	}
	_, c.err = io.WriteString(c.out, s)
}

func (c *Console) println(s string) {
	c.print(s + "\n")
}
