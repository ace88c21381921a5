// Package pricing resolves the effective unit price of a trade and applies
// the fee model to its notional value.
package pricing

import "github.com/shopspring/decimal"

var one = decimal.NewFromInt(1)

// FeeModel charges a fixed percentage of notional value.
type FeeModel struct {
	Rate decimal.Decimal
}

func NewFeeModel(rate decimal.Decimal) FeeModel {
	if rate.IsNegative() {
		rate = decimal.Zero
	}
	return FeeModel{Rate: rate}
}

// Fee returns notional × rate. The result is not rounded; rounding belongs
// to display.
func (f FeeModel) Fee(notional decimal.Decimal) decimal.Decimal {
	if notional.Sign() <= 0 {
		return decimal.Zero
	}
	return notional.Mul(f.Rate)
}

// GrossUp returns the multiplier (1 + rate) a buyer pays per unit of notional.
func (f FeeModel) GrossUp() decimal.Decimal {
	return one.Add(f.Rate)
}
