package trade

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"

	sdkerrors "github.com/GoPolymarket/polymarket-trade-panel/pkg/errors"
	"github.com/GoPolymarket/polymarket-trade-panel/pkg/pricing"
	"github.com/GoPolymarket/polymarket-trade-panel/pkg/types"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestParseAmount(t *testing.T) {
	cases := []struct {
		raw     string
		want    string
		invalid bool
	}{
		{"100", "100", false},
		{" 12.5 ", "12.5", false},
		{"$1,250.75", "1250.75", false},
		{"", "0", false},
		{"abc", "0", true},
		{"-3", "0", true},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.raw)
		if !got.Equal(dec(tc.want)) {
			t.Errorf("ParseAmount(%q) = %s want %s", tc.raw, got, tc.want)
		}
		if tc.invalid != errors.Is(err, sdkerrors.ErrInvalidInput) {
			t.Errorf("ParseAmount(%q) err = %v", tc.raw, err)
		}
	}
}

func TestAmountFromFloat(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -1} {
		if !AmountFromFloat(v).IsZero() {
			t.Errorf("AmountFromFloat(%v) should be zero", v)
		}
	}
	if !AmountFromFloat(2.5).Equal(dec("2.5")) {
		t.Errorf("AmountFromFloat(2.5) mismatch")
	}
}

func TestRequestBuilderClamps(t *testing.T) {
	req := NewRequestBuilder().
		Side(types.SideBuy).
		OrderType(types.OrderTypeLimit).
		Outcome("yes").
		AmountText("-5").
		LimitPriceCents(150).
		Balance(dec("-10")).
		AvailableShares(dec("3")).
		Build()
	if !req.Amount.IsZero() {
		t.Errorf("negative amount should clamp to zero, got %s", req.Amount)
	}
	if req.LimitPriceCents != 99 {
		t.Errorf("limit price should clamp to 99, got %d", req.LimitPriceCents)
	}
	if !req.Balance.IsZero() {
		t.Errorf("negative balance should clamp to zero, got %s", req.Balance)
	}
	if req.AmountIsDollars() {
		t.Errorf("limit buy amount is a share count")
	}
}

func TestComputeBranchTable(t *testing.T) {
	calc := NewCalculator(pricing.DefaultConfig())
	price := dec("0.5")

	cases := []struct {
		name      string
		side      types.Side
		orderType types.OrderType
		amount    string
		shares    string
		notional  string
		fee       string
		net       string
		toWin     string
	}{
		{"buy market", types.SideBuy, types.OrderTypeMarket, "100", "200", "100", "0.2", "100.2", "180"},
		{"buy limit", types.SideBuy, types.OrderTypeLimit, "100", "100", "50", "0.1", "50.1", "90"},
		{"sell market", types.SideSell, types.OrderTypeMarket, "100", "100", "50", "0.1", "49.9", "0"},
		{"sell limit", types.SideSell, types.OrderTypeLimit, "100", "100", "50", "0.1", "49.9", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := Request{Side: tc.side, OrderType: tc.orderType, Amount: dec(tc.amount), LimitPriceCents: 50}
			res := calc.Compute(req, price)
			check := func(field string, got decimal.Decimal, want string) {
				if !got.Equal(dec(want)) {
					t.Errorf("%s: got %s want %s", field, got, want)
				}
			}
			check("shares", res.Shares, tc.shares)
			check("notional", res.Notional, tc.notional)
			check("fee", res.Fee, tc.fee)
			check("net", res.Net, tc.net)
			check("toWin", res.ToWin, tc.toWin)
		})
	}
}

func TestComputeZeroAmount(t *testing.T) {
	calc := NewCalculator(pricing.DefaultConfig())
	res := calc.Compute(Request{Side: types.SideBuy, OrderType: types.OrderTypeMarket}, dec("0.64"))
	if !res.IsZero() || !res.Fee.IsZero() || !res.Net.IsZero() || res.HasToWin() {
		t.Fatalf("zero amount should produce zero result, got %+v", res)
	}
	check := NewGuard(2).Check(Request{Side: types.SideBuy}, res)
	if !check.OK {
		t.Fatalf("zero amount must not be flagged, got %v", check.Reason)
	}
}

func TestNetBoundsNotional(t *testing.T) {
	calc := NewCalculator(pricing.DefaultConfig())
	for _, amt := range []string{"0.01", "1", "37.5", "1000"} {
		buy := calc.Compute(Request{Side: types.SideBuy, OrderType: types.OrderTypeMarket, Amount: dec(amt)}, dec("0.37"))
		if buy.Net.LessThan(buy.Notional) {
			t.Errorf("buy net %s < notional %s", buy.Net, buy.Notional)
		}
		sell := calc.Compute(Request{Side: types.SideSell, OrderType: types.OrderTypeMarket, Amount: dec(amt)}, dec("0.37"))
		if sell.Net.GreaterThan(sell.Notional) {
			t.Errorf("sell net %s > notional %s", sell.Net, sell.Notional)
		}
	}
}

func TestGuardScenarios(t *testing.T) {
	calc := NewCalculator(pricing.DefaultConfig())
	guard := NewGuard(2)
	price := dec("0.64")

	// Buy 100 USD with 100 USD balance: fee pushes net to 100.2.
	req := NewRequestBuilder().AmountText("100").Outcome("yes").Balance(dec("100")).Build()
	res := calc.Compute(req, price)
	if !res.Net.Equal(dec("100.2")) {
		t.Fatalf("unexpected net: %s", res.Net)
	}
	check := guard.Check(req, res)
	if check.OK || !errors.Is(check.Reason, sdkerrors.ErrInsufficientBalance) {
		t.Fatalf("expected insufficient balance, got %+v", check)
	}
	if !guard.Shortfall(req, res).Equal(dec("0.2")) {
		t.Errorf("unexpected shortfall: %s", guard.Shortfall(req, res))
	}

	req.Balance = dec("100.2")
	if check := guard.Check(req, res); !check.OK {
		t.Fatalf("balance equal to net must pass, got %v", check.Reason)
	}

	sell := NewRequestBuilder().Side(types.SideSell).AmountText("150").AvailableShares(dec("150")).Build()
	if check := guard.Check(sell, calc.Compute(sell, price)); !check.OK {
		t.Fatalf("selling all shares must pass, got %v", check.Reason)
	}
	sell = NewRequestBuilder().Side(types.SideSell).AmountText("151").AvailableShares(dec("150")).Build()
	check = guard.Check(sell, calc.Compute(sell, price))
	if check.OK || !errors.Is(check.Reason, sdkerrors.ErrInsufficientShares) {
		t.Fatalf("expected insufficient shares, got %+v", check)
	}
}

func TestMaxAffordable(t *testing.T) {
	solver := NewSolver(pricing.DefaultConfig())

	limit := Request{Side: types.SideBuy, OrderType: types.OrderTypeLimit, LimitPriceCents: 52, Balance: dec("1000")}
	// 1000 / (0.52 × 1.002) = 1919.23...
	if got := solver.MaxAffordable(limit, pricing.LimitPrice(52)); !got.Equal(dec("1919")) {
		t.Fatalf("limit max shares: got %s want 1919", got)
	}

	market := Request{Side: types.SideBuy, OrderType: types.OrderTypeMarket, Balance: dec("100.2")}
	if got := solver.MaxAffordable(market, dec("0.64")); !got.Equal(dec("100")) {
		t.Fatalf("market max dollars: got %s want 100", got)
	}

	sell := Request{Side: types.SideSell, OrderType: types.OrderTypeLimit, AvailableShares: dec("150")}
	if got := solver.MaxAffordable(sell, dec("0.64")); !got.Equal(dec("150")) {
		t.Fatalf("sell max shares: got %s want 150", got)
	}
}

func TestAffordabilityRoundTrip(t *testing.T) {
	cfg := pricing.DefaultConfig()
	calc := NewCalculator(cfg)
	solver := NewSolver(cfg)
	price := dec("0.37")

	for _, b := range []string{"0", "0.5", "1", "99.99", "100", "100.2", "1234.56", "50000"} {
		req := Request{Side: types.SideBuy, OrderType: types.OrderTypeMarket, Balance: dec(b)}
		req.Amount = solver.MaxAffordable(req, price)
		res := calc.Compute(req, price)
		if res.Net.GreaterThan(req.Balance) {
			t.Errorf("balance %s: net %s at max %s exceeds balance", b, res.Net, req.Amount)
		}
		req.Amount = req.Amount.Add(decimal.NewFromInt(1))
		res = calc.Compute(req, price)
		if !res.Net.GreaterThan(req.Balance) {
			t.Errorf("balance %s: max+1 (%s) should not be affordable, net %s", b, req.Amount, res.Net)
		}
	}
}

func TestQuickAmounts(t *testing.T) {
	solver := NewSolver(pricing.DefaultConfig())
	price := pricing.LimitPrice(52)

	for _, b := range []string{"0", "7", "99", "1000", "2501.37"} {
		req := Request{Side: types.SideBuy, OrderType: types.OrderTypeLimit, LimitPriceCents: 52, Balance: dec(b)}
		max := solver.MaxAffordable(req, price)
		q := solver.QuickAmounts(req, price)
		if !q[QuickMax].Equal(max) {
			t.Errorf("balance %s: quick max %s != max %s", b, q[QuickMax], max)
		}
		twiceQuarter := q[QuickQuarter].Mul(decimal.NewFromInt(2))
		if q[QuickHalf].LessThan(twiceQuarter.Sub(decimal.NewFromInt(1))) {
			t.Errorf("balance %s: half %s < 2×quarter-1 (%s)", b, q[QuickHalf], twiceQuarter)
		}
		if q[QuickQuarter].GreaterThan(q[QuickHalf]) || q[QuickHalf].GreaterThan(q[QuickMax]) {
			t.Errorf("balance %s: presets not ordered: %v", b, q)
		}
	}

	sell := Request{Side: types.SideSell, AvailableShares: dec("7")}
	if got := solver.QuickAmount(sell, price, QuickQuarter); !got.Equal(dec("1")) {
		t.Errorf("quarter of 7 shares: got %s want 1", got)
	}
	if got := solver.QuickAmount(sell, price, Percent(250)); !got.Equal(dec("7")) {
		t.Errorf("out-of-range percent should clamp to max, got %s", got)
	}
}

func BenchmarkCompute(b *testing.B) {
	calc := NewCalculator(pricing.DefaultConfig())
	req := NewRequestBuilder().AmountText("250").Outcome("yes").Balance(dec("1000")).Build()
	price := dec("0.64")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = calc.Compute(req, price)
	}
}
