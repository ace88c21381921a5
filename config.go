package tradepanel

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/GoPolymarket/polymarket-trade-panel/pkg/orderbook"
	"github.com/GoPolymarket/polymarket-trade-panel/pkg/pricing"
)

// Config holds the engine configuration.
type Config struct {
	Pricing  pricing.Config
	Book     orderbook.Config
	LogLevel string
}

// DefaultConfig returns defaults independent from process environment variables.
func DefaultConfig() Config {
	return Config{
		Pricing:  pricing.DefaultConfig(),
		Book:     orderbook.DefaultConfig(),
		LogLevel: "warn",
	}
}

// ConfigFromEnv overlays TRADE_PANEL_* environment variables on the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	cfg.Pricing = cfg.Pricing.MergeEnv()

	if raw := strings.TrimSpace(os.Getenv("TRADE_PANEL_BOOK_DEPTH")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.Book.Depth = n
		}
	}
	if raw := strings.TrimSpace(os.Getenv("TRADE_PANEL_BOOK_VOLUME_UNIT")); raw != "" {
		if d, err := decimal.NewFromString(raw); err == nil && d.Sign() > 0 {
			cfg.Book.VolumeUnit = d
		}
	}
	if raw := strings.TrimSpace(os.Getenv("TRADE_PANEL_DEFAULT_SPREAD_CENTS")); raw != "" {
		if d, err := decimal.NewFromString(raw); err == nil && !d.IsNegative() {
			cfg.Book.DefaultSpreadCents = d
		}
	}
	if raw := strings.TrimSpace(os.Getenv("TRADE_PANEL_LOG_LEVEL")); raw != "" {
		cfg.LogLevel = strings.ToLower(raw)
	}
	return cfg
}

// Validate checks every sub-config and joins the failures.
func (c Config) Validate() error {
	var errs []error
	if err := c.Pricing.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Book.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
