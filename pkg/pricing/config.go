package pricing

import (
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	sdkerrors "github.com/GoPolymarket/polymarket-trade-panel/pkg/errors"
)

// Config holds the fee and payout constants applied to every trade.
type Config struct {
	// FeeRate is applied to notional value (0.002 = 0.2%).
	FeeRate decimal.Decimal
	// WinMultiplier scales notional into the buy-side "to win" estimate.
	WinMultiplier decimal.Decimal
	// DisplayPlaces is the USD precision used for display and balance checks.
	DisplayPlaces int32
}

func DefaultConfig() Config {
	return Config{
		FeeRate:       decimal.RequireFromString("0.002"),
		WinMultiplier: decimal.RequireFromString("1.8"),
		DisplayPlaces: 2,
	}
}

func (c Config) Validate() error {
	if c.FeeRate.IsNegative() {
		return sdkerrors.InvalidConfig("fee rate must be >= 0")
	}
	if c.FeeRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return sdkerrors.InvalidConfig("fee rate must be < 1")
	}
	if c.WinMultiplier.IsNegative() {
		return sdkerrors.InvalidConfig("win multiplier must be >= 0")
	}
	if c.DisplayPlaces < 0 {
		return sdkerrors.InvalidConfig("display places must be >= 0")
	}
	return nil
}

// MergeEnv overlays TRADE_PANEL_* variables on top of c.
func (c Config) MergeEnv() Config {
	if v := strings.TrimSpace(os.Getenv("TRADE_PANEL_FEE_RATE")); v != "" {
		if d, err := decimal.NewFromString(v); err == nil && !d.IsNegative() {
			c.FeeRate = d
		}
	}
	if v := strings.TrimSpace(os.Getenv("TRADE_PANEL_WIN_MULTIPLIER")); v != "" {
		if d, err := decimal.NewFromString(v); err == nil && !d.IsNegative() {
			c.WinMultiplier = d
		}
	}
	if v := strings.TrimSpace(os.Getenv("TRADE_PANEL_DISPLAY_PLACES")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.DisplayPlaces = int32(n)
		}
	}
	return c
}
