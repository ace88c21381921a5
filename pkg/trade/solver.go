package trade

import (
	"github.com/shopspring/decimal"

	"github.com/GoPolymarket/polymarket-trade-panel/pkg/pricing"
	"github.com/GoPolymarket/polymarket-trade-panel/pkg/types"
)

// Percent is a quick-amount preset.
type Percent int

const (
	QuickQuarter Percent = 25
	QuickHalf    Percent = 50
	QuickMax     Percent = 100
)

// QuickPresets lists the quick-amount buttons in display order.
var QuickPresets = []Percent{QuickQuarter, QuickHalf, QuickMax}

func (p Percent) clamp() Percent {
	if p < 0 {
		return 0
	}
	if p > QuickMax {
		return QuickMax
	}
	return p
}

// Solver inverts the calculator to find the largest amount a request can carry.
type Solver struct {
	fees pricing.FeeModel
}

func NewSolver(cfg pricing.Config) *Solver {
	return &Solver{fees: pricing.NewFeeModel(cfg.FeeRate)}
}

// MaxAffordable returns the largest amount, in the request's own unit, that
// passes the balance check at the given price.
//
//	Buy  Market: floor(balance / (1 + fee))          dollars
//	Buy  Limit:  floor(balance / (price × (1 + fee))) shares
//	Sell:        available shares
func (s *Solver) MaxAffordable(req Request, price decimal.Decimal) decimal.Decimal {
	req = req.Normalize()
	if req.Side == types.SideSell {
		return req.AvailableShares
	}
	grossUp := s.fees.GrossUp()
	if req.AmountIsDollars() {
		return req.Balance.Div(grossUp).Floor()
	}
	if price.Sign() <= 0 {
		return decimal.Zero
	}
	return req.Balance.Div(price.Mul(grossUp)).Floor()
}

// QuickAmount returns percent of MaxAffordable, floored to a whole unit.
// QuickMax returns MaxAffordable unchanged.
func (s *Solver) QuickAmount(req Request, price decimal.Decimal, percent Percent) decimal.Decimal {
	max := s.MaxAffordable(req, price)
	percent = percent.clamp()
	if percent == QuickMax {
		return max
	}
	return max.Mul(decimal.NewFromInt(int64(percent))).Div(decimal.NewFromInt(100)).Floor()
}

// QuickAmounts evaluates every preset in QuickPresets.
func (s *Solver) QuickAmounts(req Request, price decimal.Decimal) map[Percent]decimal.Decimal {
	out := make(map[Percent]decimal.Decimal, len(QuickPresets))
	for _, p := range QuickPresets {
		out[p] = s.QuickAmount(req, price, p)
	}
	return out
}
