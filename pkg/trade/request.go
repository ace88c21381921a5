// Package trade turns a trade request into its economics: shares, notional,
// fee and net amount, the balance check, and the maximum affordable amount.
package trade

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	sdkerrors "github.com/GoPolymarket/polymarket-trade-panel/pkg/errors"
	"github.com/GoPolymarket/polymarket-trade-panel/pkg/pricing"
	"github.com/GoPolymarket/polymarket-trade-panel/pkg/types"
)

// Request is the full input of a single trade computation.
//
// Amount is dollars for Buy-Market and a share count for every other
// side/order-type combination.
type Request struct {
	Side            types.Side
	OrderType       types.OrderType
	OutcomeID       string
	Amount          decimal.Decimal
	LimitPriceCents int
	Balance         decimal.Decimal
	AvailableShares decimal.Decimal
}

// AmountIsDollars reports whether Amount is denominated in USD.
func (r Request) AmountIsDollars() bool {
	return r.Side == types.SideBuy && r.OrderType != types.OrderTypeLimit
}

// PriceQuery extracts what the price resolver needs from r.
func (r Request) PriceQuery() pricing.PriceQuery {
	return pricing.PriceQuery{
		OrderType:       r.OrderType,
		OutcomeID:       r.OutcomeID,
		LimitPriceCents: r.LimitPriceCents,
	}
}

// Normalize returns a copy of r with every field inside its documented domain.
func (r Request) Normalize() Request {
	if r.Side != types.SideSell {
		r.Side = types.SideBuy
	}
	if r.OrderType != types.OrderTypeLimit {
		r.OrderType = types.OrderTypeMarket
	}
	r.Amount = nonNegative(r.Amount)
	r.Balance = nonNegative(r.Balance)
	r.AvailableShares = nonNegative(r.AvailableShares)
	if r.OrderType == types.OrderTypeLimit {
		r.LimitPriceCents = pricing.ClampLimitCents(r.LimitPriceCents)
	}
	return r
}

// ParseAmount converts amount input text into a non-negative decimal.
// Empty input is zero. Non-numeric and negative input is also zero, returned
// with an error wrapping ErrInvalidInput.
func ParseAmount(raw string) (decimal.Decimal, error) {
	text := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	text = strings.TrimPrefix(text, "$")
	if text == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(text)
	if err != nil || d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: amount %q", sdkerrors.ErrInvalidInput, raw)
	}
	return d, nil
}

// AmountFromFloat converts a float input, mapping NaN, ±Inf and negatives to zero.
func AmountFromFloat(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// RequestBuilder assembles a Request from raw UI state.
type RequestBuilder struct {
	req Request
}

// NewRequestBuilder starts a Buy-Market request.
func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{req: Request{Side: types.SideBuy, OrderType: types.OrderTypeMarket}}
}

// Side sets the trade side.
func (b *RequestBuilder) Side(side types.Side) *RequestBuilder {
	b.req.Side = side
	return b
}

// OrderType sets Market or Limit.
func (b *RequestBuilder) OrderType(orderType types.OrderType) *RequestBuilder {
	b.req.OrderType = orderType
	return b
}

// Outcome sets the selected outcome id.
func (b *RequestBuilder) Outcome(outcomeID string) *RequestBuilder {
	b.req.OutcomeID = outcomeID
	return b
}

// AmountText parses the amount field; invalid text becomes zero.
func (b *RequestBuilder) AmountText(raw string) *RequestBuilder {
	b.req.Amount, _ = ParseAmount(raw)
	return b
}

// AmountDec sets the amount using a decimal.Decimal.
func (b *RequestBuilder) AmountDec(amount decimal.Decimal) *RequestBuilder {
	b.req.Amount = amount
	return b
}

// Amount sets the amount using a float64.
func (b *RequestBuilder) Amount(amount float64) *RequestBuilder {
	b.req.Amount = AmountFromFloat(amount)
	return b
}

// LimitPriceCents sets the limit price in integer cents.
func (b *RequestBuilder) LimitPriceCents(cents int) *RequestBuilder {
	b.req.LimitPriceCents = cents
	return b
}

// Balance sets the available USD balance.
func (b *RequestBuilder) Balance(balance decimal.Decimal) *RequestBuilder {
	b.req.Balance = balance
	return b
}

// AvailableShares sets the shares held for the selected outcome.
func (b *RequestBuilder) AvailableShares(shares decimal.Decimal) *RequestBuilder {
	b.req.AvailableShares = shares
	return b
}

// Build returns the normalized request.
func (b *RequestBuilder) Build() Request {
	return b.req.Normalize()
}
