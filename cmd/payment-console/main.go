package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/xenking/payment-console/internal/app"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}

	lg, err := app.NewLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(2)
	}
	defer func() { _ = lg.Sync() }()

	if err := app.Run(context.Background(), lg, cfg, os.Stdin, os.Stdout); err != nil {
		lg.Error("Run failed", zap.Error(err))
		_ = lg.Sync()
		os.Exit(1)
	}
}
