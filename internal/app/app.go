package app

import (
	"context"
	"io"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/payment-console/internal/console"
	"github.com/xenking/payment-console/internal/logging"
	"github.com/xenking/payment-console/internal/payment"
	"github.com/xenking/payment-console/internal/storage/memory"
)

// Run creates the process-wide logger, repository and payment factory, then
// drives the console until the user exits. It is the single wiring point for
// the application.
func Run(ctx context.Context, lg *zap.Logger, cfg *Config, in io.Reader, out io.Writer) error {
	policy, err := cfg.DiscountPolicy()
	if err != nil {
		return err
	}
	lg.Debug("Initializing",
		zap.Stringer("discount_threshold", policy.Threshold),
		zap.Stringer("discount_multiplier", policy.Multiplier),
	)

	activity := logging.New(out, logging.Config{TimeLayout: cfg.Log.TimeLayout})
	defer func() { _ = activity.Sync() }()

	orders := memory.NewOrderRepository(out)

	con := console.New(in, out, console.Deps{
		Factory: payment.NewFactory(out),
		Orders:  orders,
		Logger:  activity,
	}, console.Config{Policy: policy})

	if err := con.Run(zctx.Base(ctx, lg)); err != nil {
		return errors.Wrap(err, "console")
	}

	lg.Debug("Stopped", zap.Int("orders", orders.Len()))
	return nil
}
