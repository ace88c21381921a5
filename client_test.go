package tradepanel

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	sdkerrors "github.com/GoPolymarket/polymarket-trade-panel/pkg/errors"
	"github.com/GoPolymarket/polymarket-trade-panel/pkg/orderbook"
	"github.com/GoPolymarket/polymarket-trade-panel/pkg/trade"
	"github.com/GoPolymarket/polymarket-trade-panel/pkg/types"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func binaryMarket() types.Market {
	return types.Market{
		ID:       "fed-cut",
		Question: "Will the Fed cut rates in March?",
		Outcomes: []types.Outcome{
			types.OutcomeFromPercent("yes", "Yes", dec("64")),
			types.OutcomeFromPercent("no", "No", dec("36")),
		},
		Volume: dec("250000"),
	}
}

func TestNewClientWithOptions(t *testing.T) {
	c := NewClient(
		WithFeeRate(dec("0.01")),
		WithLogLevel("error"),
		WithRandomSource(&orderbook.FixedSource{}),
	)
	if len(c.InitErrors) != 0 {
		t.Fatalf("unexpected init errors: %v", c.InitErrors)
	}
	if !c.Config.Pricing.FeeRate.Equal(dec("0.01")) {
		t.Errorf("WithFeeRate failed")
	}
}

func TestNewClientEFallsBackOnInvalidConfig(t *testing.T) {
	c, err := NewClientE(WithFeeRate(dec("-1")), WithLogLevel("warn"))
	if err == nil {
		t.Fatal("expected init error")
	}
	var initErr *InitError
	if !errors.As(err, &initErr) || initErr.Component != "pricing" {
		t.Fatalf("expected pricing InitError, got %v", err)
	}
	if !errors.Is(err, sdkerrors.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig in chain, got %v", err)
	}
	if !c.Config.Pricing.FeeRate.Equal(dec("0.002")) {
		t.Fatalf("expected default fee after fallback, got %s", c.Config.Pricing.FeeRate)
	}
}

func TestQuoteScenarios(t *testing.T) {
	c := NewClient(WithLogLevel("error"))
	market := binaryMarket()

	req := trade.NewRequestBuilder().Outcome("yes").AmountText("100").Balance(dec("100")).Build()
	q := c.Quote(req, market)
	if !q.Trade.Notional.Equal(dec("100")) || !q.Trade.Fee.Equal(dec("0.2")) || !q.Trade.Net.Equal(dec("100.2")) {
		t.Fatalf("unexpected trade: %+v", q.Trade)
	}
	if q.Check.OK || q.CanSubmit() {
		t.Fatalf("100.2 > 100 should be blocked")
	}
	if !q.Display.Shares.Equal(dec("156.25")) {
		t.Errorf("display shares = %s want 156.25", q.Display.Shares)
	}
	if !q.Trade.HasToWin() || !q.Trade.ToWin.Equal(dec("180")) {
		t.Errorf("unexpected to-win estimate %s", q.Trade.ToWin)
	}

	req.Balance = dec("100.2")
	if q := c.Quote(req, market); !q.CanSubmit() {
		t.Fatalf("exact balance should pass, got %v", q.Check.Reason)
	}

	sell := trade.NewRequestBuilder().Side(types.SideSell).Outcome("yes").AmountText("151").AvailableShares(dec("150")).Build()
	q = c.Quote(sell, market)
	if q.Check.OK || !errors.Is(q.Check.Reason, sdkerrors.ErrInsufficientShares) {
		t.Fatalf("expected insufficient shares, got %+v", q.Check)
	}
	if q.Trade.Net.IsZero() {
		t.Fatalf("figures must still be computed when the guard fails")
	}
}

func TestQuoteUnknownOutcomeWarns(t *testing.T) {
	c := NewClient(WithLogLevel("error"))
	req := trade.NewRequestBuilder().Outcome("maybe").AmountText("10").Balance(dec("50")).Build()
	q := c.Quote(req, binaryMarket())
	if len(q.Warnings) != 1 || !errors.Is(q.Warnings[0], sdkerrors.ErrUnknownOutcome) {
		t.Fatalf("expected unknown outcome warning, got %v", q.Warnings)
	}
	if !q.Price.Equal(dec("0.5")) || !q.Trade.Shares.Equal(dec("20")) {
		t.Fatalf("expected fallback pricing, got price %s shares %s", q.Price, q.Trade.Shares)
	}
	if !q.CanSubmit() {
		t.Fatalf("warning alone must not block submission")
	}
}

func TestMaxAndQuickAmounts(t *testing.T) {
	c := NewClient(WithLogLevel("error"))
	market := binaryMarket()
	req := trade.NewRequestBuilder().
		OrderType(types.OrderTypeLimit).
		Outcome("yes").
		LimitPriceCents(52).
		Balance(dec("1000")).
		Build()

	max := c.MaxAffordable(req, market)
	if !max.Equal(dec("1919")) {
		t.Fatalf("max shares = %s want 1919", max)
	}
	if got := c.QuickAmount(req, market, trade.QuickMax); !got.Equal(max) {
		t.Fatalf("quick max %s != max %s", got, max)
	}
	quick := c.QuickAmounts(req, market)
	if !quick[trade.QuickHalf].Equal(dec("959")) || !quick[trade.QuickQuarter].Equal(dec("479")) {
		t.Fatalf("unexpected quick amounts: %v", quick)
	}

	req.Amount = max
	if q := c.Quote(req, market); !q.Check.OK {
		t.Fatalf("max amount should be affordable, got %v", q.Check.Reason)
	}
}

func TestBooks(t *testing.T) {
	c := NewClient(WithLogLevel("error"), WithRandomSource(orderbook.NewSeededSource(3)))
	market := binaryMarket()

	books := c.Books(market)
	if len(books) != 2 {
		t.Fatalf("expected one book per outcome, got %d", len(books))
	}
	for _, b := range books {
		if len(b.Asks) != 7 || len(b.Bids) != 7 {
			t.Fatalf("book %s has %d asks %d bids", b.OutcomeID, len(b.Asks), len(b.Bids))
		}
	}
	if !books[0].Asks[1].Price.Equal(dec("65.5")) {
		t.Errorf("yes ladder should step by 1.5, got %s", books[0].Asks[1].Price)
	}

	again, err := c.Book(market, "yes")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if again.ID != books[0].ID {
		t.Fatalf("unchanged market should reuse the cached book")
	}

	c.InvalidateBooks(market.ID)
	fresh, _ := c.Book(market, "yes")
	if fresh.ID == books[0].ID {
		t.Fatalf("invalidate should force regeneration")
	}

	fallback, err := c.Book(market, "maybe")
	if !errors.Is(err, sdkerrors.ErrUnknownOutcome) {
		t.Fatalf("expected ErrUnknownOutcome, got %v", err)
	}
	if len(fallback.Asks) != 7 || !fallback.Asks[0].Price.Equal(dec("50")) {
		t.Fatalf("fallback book should center on 50, got %v", fallback.Asks)
	}
}

func BenchmarkQuote(b *testing.B) {
	c := NewClient(WithLogLevel("error"))
	market := binaryMarket()
	req := trade.NewRequestBuilder().Outcome("yes").AmountText("250").Balance(dec("1000")).Build()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Quote(req, market)
	}
}
