package tradepanel

import (
	"github.com/shopspring/decimal"

	"github.com/GoPolymarket/polymarket-trade-panel/pkg/orderbook"
	"github.com/GoPolymarket/polymarket-trade-panel/pkg/pricing"
)

// Option configures a Client.
type Option func(*Client)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Client) {
		c.Config = cfg
	}
}

// WithPricingConfig overrides fee and payout constants.
func WithPricingConfig(cfg pricing.Config) Option {
	return func(c *Client) {
		c.Config.Pricing = cfg
	}
}

// WithFeeRate overrides only the fee rate.
func WithFeeRate(rate decimal.Decimal) Option {
	return func(c *Client) {
		c.Config.Pricing.FeeRate = rate
	}
}

// WithBookConfig overrides the order book shape.
func WithBookConfig(cfg orderbook.Config) Option {
	return func(c *Client) {
		c.Config.Book = cfg
	}
}

// WithRandomSource injects the generator used for simulated book sizes.
func WithRandomSource(src orderbook.Source) Option {
	return func(c *Client) {
		c.source = src
	}
}

// WithLogLevel sets the package logger level when the client is built.
func WithLogLevel(level string) Option {
	return func(c *Client) {
		c.Config.LogLevel = level
	}
}
