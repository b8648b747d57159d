package app

import (
	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap/zapcore"

	"github.com/xenking/payment-console/internal/domain/order"
)

// Config holds the complete application configuration, loadable from
// environment variables (PAYCON_ prefix), flags, or YAML config files.
type Config struct {
	Discount DiscountConfig
	Log      LogConfig
}

// DiscountConfig controls the flat order discount.
type DiscountConfig struct {
	Threshold  string `default:"100" usage:"Orders strictly above this amount are discounted"`
	Multiplier string `default:"0.9" usage:"Multiplier applied to discounted orders, in (0, 1]"`
}

// LogConfig controls the activity and diagnostic loggers.
type LogConfig struct {
	Level      string `default:"warn" usage:"Diagnostic log level (debug, info, warn, error)"`
	TimeLayout string `default:"2006-01-02 15:04:05" usage:"Timestamp layout of activity log lines" flag:"log-time-layout"`
}

// LoadConfig loads configuration from environment variables, flags and YAML
// config files, and validates it.
func LoadConfig() (*Config, error) {
	return loadConfig(aconfig.Config{
		EnvPrefix: "PAYCON",
		Files:     []string{"config.yaml", "/etc/paycon/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
}

func loadConfig(acfg aconfig.Config) (*Config, error) {
	var cfg Config
	if err := aconfig.LoaderFor(&cfg, acfg).Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	if _, err := cfg.DiscountPolicy(); err != nil {
		return nil, err
	}
	if _, err := cfg.LogLevel(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DiscountPolicy parses and validates the discount settings.
func (c *Config) DiscountPolicy() (order.Policy, error) {
	threshold, err := decimal.NewFromString(c.Discount.Threshold)
	if err != nil {
		return order.Policy{}, errors.Wrap(err, "parse discount threshold")
	}
	multiplier, err := decimal.NewFromString(c.Discount.Multiplier)
	if err != nil {
		return order.Policy{}, errors.Wrap(err, "parse discount multiplier")
	}
	p := order.Policy{Threshold: threshold, Multiplier: multiplier}
	if err := p.Validate(); err != nil {
		return order.Policy{}, errors.Wrap(err, "invalid discount")
	}
	return p, nil
}

// LogLevel parses the diagnostic log level.
func (c *Config) LogLevel() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return lvl, errors.Wrap(err, "parse log level")
	}
	return lvl, nil
}
