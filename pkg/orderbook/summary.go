package orderbook

import "github.com/shopspring/decimal"

// Summary is the top-of-book view of a simulated book.
type Summary struct {
	BestAsk decimal.NullDecimal
	BestBid decimal.NullDecimal
	// Spread is BestAsk - BestBid rounded to one decimal, or the default
	// spread when either side is empty.
	Spread    decimal.Decimal
	LastPrice decimal.Decimal
}

// HasBothSides reports whether the spread was derived from real levels.
func (s Summary) HasBothSides() bool {
	return s.BestAsk.Valid && s.BestBid.Valid
}

// Summarize derives best ask, best bid and spread. Inputs are not modified.
func Summarize(asks, bids []Entry, lastPrice, defaultSpread decimal.Decimal) Summary {
	out := Summary{
		BestAsk:   bestPrice(asks, func(a, b decimal.Decimal) bool { return a.LessThan(b) }),
		BestBid:   bestPrice(bids, func(a, b decimal.Decimal) bool { return a.GreaterThan(b) }),
		Spread:    defaultSpread,
		LastPrice: lastPrice,
	}
	if out.HasBothSides() {
		out.Spread = out.BestAsk.Decimal.Sub(out.BestBid.Decimal).Round(1)
	}
	return out
}

func bestPrice(entries []Entry, better func(a, b decimal.Decimal) bool) decimal.NullDecimal {
	var best decimal.NullDecimal
	for _, e := range entries {
		if !best.Valid || better(e.Price, best.Decimal) {
			best = decimal.NullDecimal{Decimal: e.Price, Valid: true}
		}
	}
	return best
}
