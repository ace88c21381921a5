package pricing

import (
	"github.com/shopspring/decimal"

	sdkerrors "github.com/GoPolymarket/polymarket-trade-panel/pkg/errors"
	"github.com/GoPolymarket/polymarket-trade-panel/pkg/logger"
	"github.com/GoPolymarket/polymarket-trade-panel/pkg/types"
)

const (
	MinLimitCents = 1
	MaxLimitCents = 99
)

var (
	// FallbackPrice is used when the market has no price for the outcome.
	FallbackPrice = decimal.RequireFromString("0.5")

	hundred = decimal.NewFromInt(100)
)

// PriceQuery is the subset of an order that determines its unit price.
type PriceQuery struct {
	OrderType       types.OrderType
	OutcomeID       string
	LimitPriceCents int
}

// ClampLimitCents keeps a limit price inside [1, 99] cents.
func ClampLimitCents(cents int) int {
	if cents < MinLimitCents {
		return MinLimitCents
	}
	if cents > MaxLimitCents {
		return MaxLimitCents
	}
	return cents
}

// LimitPrice converts a limit price in cents to a fraction, clamping first.
func LimitPrice(cents int) decimal.Decimal {
	return decimal.NewFromInt(int64(ClampLimitCents(cents))).Div(hundred)
}

// ResolvePrice returns the unit price in (0, 1) for q.
//
// Limit orders use the limit price. Market orders use the market's price for
// the outcome; when the outcome is unknown the 0.5 fallback is returned
// together with an error wrapping ErrUnknownOutcome, so callers can display
// figures and surface a warning.
func ResolvePrice(q PriceQuery, market types.MarketPrices) (decimal.Decimal, error) {
	if q.OrderType == types.OrderTypeLimit {
		return LimitPrice(q.LimitPriceCents), nil
	}
	if market != nil {
		if price, ok := market.PriceForOutcome(q.OutcomeID); ok {
			return types.ClampOutcomePrice(price), nil
		}
	}
	logger.Warn("no market price for outcome %q, using fallback %s", q.OutcomeID, FallbackPrice)
	return FallbackPrice, sdkerrors.UnknownOutcome(q.OutcomeID)
}
