package orderbook

import (
	"github.com/shopspring/decimal"

	sdkerrors "github.com/GoPolymarket/polymarket-trade-panel/pkg/errors"
)

// Config shapes the simulated ladders.
type Config struct {
	// Depth is the number of levels per side.
	Depth int
	// VolumeUnit is the market volume that maps to a 1x size multiplier.
	VolumeUnit decimal.Decimal
	// SizeBase and SizeRange bound the random base size: [base, base+range).
	SizeBase  decimal.Decimal
	SizeRange decimal.Decimal
	// DepthWeight is the extra size per level of distance from the far end.
	DepthWeight decimal.Decimal
	// DefaultSpreadCents is reported when one side of the book is empty.
	DefaultSpreadCents decimal.Decimal
}

func DefaultConfig() Config {
	return Config{
		Depth:              7,
		VolumeUnit:         decimal.NewFromInt(100000),
		SizeBase:           decimal.NewFromInt(8),
		SizeRange:          decimal.NewFromInt(10),
		DepthWeight:        decimal.RequireFromString("0.3"),
		DefaultSpreadCents: decimal.NewFromInt(1),
	}
}

func (c Config) Validate() error {
	if c.Depth <= 0 {
		return sdkerrors.InvalidConfig("book depth must be > 0")
	}
	if c.VolumeUnit.Sign() <= 0 {
		return sdkerrors.InvalidConfig("volume unit must be > 0")
	}
	if c.SizeBase.Sign() <= 0 {
		return sdkerrors.InvalidConfig("size base must be > 0")
	}
	if c.SizeRange.IsNegative() {
		return sdkerrors.InvalidConfig("size range must be >= 0")
	}
	if c.DepthWeight.IsNegative() {
		return sdkerrors.InvalidConfig("depth weight must be >= 0")
	}
	if c.DefaultSpreadCents.IsNegative() {
		return sdkerrors.InvalidConfig("default spread must be >= 0")
	}
	return nil
}
