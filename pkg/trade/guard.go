package trade

import (
	"github.com/shopspring/decimal"

	sdkerrors "github.com/GoPolymarket/polymarket-trade-panel/pkg/errors"
	"github.com/GoPolymarket/polymarket-trade-panel/pkg/logger"
	"github.com/GoPolymarket/polymarket-trade-panel/pkg/types"
)

// Check is the outcome of a balance check. Reason is nil when OK is true,
// otherwise ErrInsufficientBalance or ErrInsufficientShares.
type Check struct {
	OK     bool
	Reason error
}

// Guard compares a trade against the funds or shares backing it.
type Guard struct {
	places int32
}

// NewGuard compares USD amounts at the given display precision, so a value
// shown as equal to the balance is never rejected.
func NewGuard(displayPlaces int32) *Guard {
	if displayPlaces < 0 {
		displayPlaces = 0
	}
	return &Guard{places: displayPlaces}
}

// Check validates req against res. A zero amount always passes.
func (g *Guard) Check(req Request, res Result) Check {
	req = req.Normalize()
	if req.Amount.IsZero() {
		return Check{OK: true}
	}

	if req.Side == types.SideSell {
		if req.Amount.GreaterThan(req.AvailableShares) {
			logger.Debug("sell blocked: %s shares requested, %s available", req.Amount, req.AvailableShares)
			return Check{Reason: sdkerrors.ErrInsufficientShares}
		}
		return Check{OK: true}
	}

	net := res.Net.Round(g.places)
	balance := req.Balance.Round(g.places)
	if net.GreaterThan(balance) {
		logger.Debug("buy blocked: net %s exceeds balance %s", net, balance)
		return Check{Reason: sdkerrors.ErrInsufficientBalance}
	}
	return Check{OK: true}
}

// Shortfall returns how much the trade exceeds the available balance or
// shares, or zero when the check passes.
func (g *Guard) Shortfall(req Request, res Result) decimal.Decimal {
	req = req.Normalize()
	var diff decimal.Decimal
	if req.Side == types.SideSell {
		diff = req.Amount.Sub(req.AvailableShares)
	} else {
		diff = res.Net.Round(g.places).Sub(req.Balance.Round(g.places))
	}
	if diff.Sign() <= 0 {
		return decimal.Zero
	}
	return diff
}
