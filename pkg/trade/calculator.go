package trade

import (
	"github.com/shopspring/decimal"

	"github.com/GoPolymarket/polymarket-trade-panel/pkg/pricing"
	"github.com/GoPolymarket/polymarket-trade-panel/pkg/types"
)

// Result holds the economics of a trade. Values are unrounded; use Display
// for presentation.
type Result struct {
	Price    decimal.Decimal
	Shares   decimal.Decimal
	Notional decimal.Decimal
	Fee      decimal.Decimal
	// Net is notional + fee for buys and notional - fee for sells.
	Net decimal.Decimal
	// ToWin is only set for buys with a positive notional.
	ToWin decimal.Decimal
}

// IsZero reports whether the trade has no notional value.
func (r Result) IsZero() bool {
	return r.Notional.IsZero() && r.Shares.IsZero()
}

// HasToWin reports whether the "to win" estimate should be shown.
func (r Result) HasToWin() bool {
	return r.ToWin.Sign() > 0
}

// Display rounds the money fields to places decimals.
func (r Result) Display(places int32) Result {
	return Result{
		Price:    r.Price,
		Shares:   r.Shares.Round(places),
		Notional: r.Notional.Round(places),
		Fee:      r.Fee.Round(places),
		Net:      r.Net.Round(places),
		ToWin:    r.ToWin.Round(places),
	}
}

// Calculator converts requests into Results using a fixed pricing config.
type Calculator struct {
	fees          pricing.FeeModel
	winMultiplier decimal.Decimal
}

func NewCalculator(cfg pricing.Config) *Calculator {
	return &Calculator{
		fees:          pricing.NewFeeModel(cfg.FeeRate),
		winMultiplier: cfg.WinMultiplier,
	}
}

// Compute applies the side × order-type branch table at the given unit price.
//
//	Buy  Market: amount is dollars, shares = amount / price
//	Buy  Limit:  amount is shares,  notional = shares × price
//	Sell Market: amount is shares,  notional = shares × price
//	Sell Limit:  amount is shares,  notional = shares × price
func (c *Calculator) Compute(req Request, price decimal.Decimal) Result {
	req = req.Normalize()
	res := Result{Price: price}
	if req.Amount.IsZero() || price.Sign() <= 0 {
		return res
	}

	if req.AmountIsDollars() {
		res.Notional = req.Amount
		res.Shares = req.Amount.Div(price)
	} else {
		res.Shares = req.Amount
		res.Notional = req.Amount.Mul(price)
	}

	res.Fee = c.fees.Fee(res.Notional)
	if req.Side == types.SideSell {
		res.Net = res.Notional.Sub(res.Fee)
		return res
	}
	res.Net = res.Notional.Add(res.Fee)
	if res.Notional.Sign() > 0 {
		res.ToWin = res.Notional.Mul(c.winMultiplier)
	}
	return res
}

// FeeModel exposes the fee model used by c.
func (c *Calculator) FeeModel() pricing.FeeModel {
	return c.fees
}
