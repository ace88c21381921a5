// Package types holds the market and order vocabulary shared by the pricing,
// trade and order book packages.
package types

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Side is the trade direction selected by the Buy/Sell tab.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// ParseSide accepts "buy"/"sell" in any case.
func ParseSide(raw string) (Side, error) {
	switch Side(strings.ToUpper(strings.TrimSpace(raw))) {
	case SideBuy:
		return SideBuy, nil
	case SideSell:
		return SideSell, nil
	}
	return "", fmt.Errorf("side must be BUY or SELL, got %q", raw)
}

// OrderType selects between taking the market price and a user-set limit.
type OrderType string

const (
	OrderTypeMarket OrderType = "MARKET"
	OrderTypeLimit  OrderType = "LIMIT"
)

// ParseOrderType accepts "market"/"limit" in any case.
func ParseOrderType(raw string) (OrderType, error) {
	switch OrderType(strings.ToUpper(strings.TrimSpace(raw))) {
	case OrderTypeMarket:
		return OrderTypeMarket, nil
	case OrderTypeLimit:
		return OrderTypeLimit, nil
	}
	return "", fmt.Errorf("order type must be MARKET or LIMIT, got %q", raw)
}

var (
	MinOutcomePrice = decimal.RequireFromString("0.01")
	MaxOutcomePrice = decimal.RequireFromString("0.99")

	hundred = decimal.NewFromInt(100)
)

// ClampOutcomePrice keeps a probability-derived price inside [0.01, 0.99].
func ClampOutcomePrice(p decimal.Decimal) decimal.Decimal {
	if p.LessThan(MinOutcomePrice) {
		return MinOutcomePrice
	}
	if p.GreaterThan(MaxOutcomePrice) {
		return MaxOutcomePrice
	}
	return p
}

// Outcome is one possible resolution of a market. Display metadata such as
// colors and icons is joined in by ID at the presentation layer.
type Outcome struct {
	ID    string
	Label string
	Price decimal.Decimal
}

// NewOutcome builds an outcome with its price clamped to the tradable range.
func NewOutcome(id, label string, price decimal.Decimal) Outcome {
	return Outcome{ID: id, Label: label, Price: ClampOutcomePrice(price)}
}

// OutcomeFromPercent builds an outcome from an implied probability in percent.
func OutcomeFromPercent(id, label string, percent decimal.Decimal) Outcome {
	return NewOutcome(id, label, percent.Div(hundred))
}

// PriceCents returns the outcome price expressed in cents (0-100).
func (o Outcome) PriceCents() decimal.Decimal {
	return o.Price.Mul(hundred)
}

// MarketPrices resolves the current price of an outcome.
type MarketPrices interface {
	PriceForOutcome(outcomeID string) (decimal.Decimal, bool)
}

// Prices is a plain outcome id -> price fraction map.
type Prices map[string]decimal.Decimal

// PriceForOutcome implements MarketPrices.
func (p Prices) PriceForOutcome(outcomeID string) (decimal.Decimal, bool) {
	price, ok := p[outcomeID]
	if !ok {
		return decimal.Decimal{}, false
	}
	return ClampOutcomePrice(price), true
}

// Market is a binary or multi-outcome market. Volume only scales the
// simulated order book sizes.
type Market struct {
	ID       string
	Question string
	Outcomes []Outcome
	Volume   decimal.Decimal
}

// PriceForOutcome implements MarketPrices.
func (m Market) PriceForOutcome(outcomeID string) (decimal.Decimal, bool) {
	o, ok := m.Outcome(outcomeID)
	if !ok {
		return decimal.Decimal{}, false
	}
	return ClampOutcomePrice(o.Price), true
}

// Outcome looks up an outcome by ID.
func (m Market) Outcome(outcomeID string) (Outcome, bool) {
	for _, o := range m.Outcomes {
		if o.ID == outcomeID {
			return o, true
		}
	}
	return Outcome{}, false
}

// IsBinary reports whether the market is a YES/NO market.
func (m Market) IsBinary() bool {
	return len(m.Outcomes) == 2
}

// Prices snapshots the outcome prices into a map.
func (m Market) Prices() Prices {
	out := make(Prices, len(m.Outcomes))
	for _, o := range m.Outcomes {
		out[o.ID] = ClampOutcomePrice(o.Price)
	}
	return out
}
