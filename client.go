// Package tradepanel computes the economics shown by a prediction-market
// trade panel: resolved price, shares, fee, net cost or proceeds, the
// balance check, quick-amount presets and a simulated order book.
//
// Every call is a pure function of its inputs apart from the order book's
// random sizes, which are cached per outcome until price or volume change.
package tradepanel

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	sdkerrors "github.com/GoPolymarket/polymarket-trade-panel/pkg/errors"
	"github.com/GoPolymarket/polymarket-trade-panel/pkg/logger"
	"github.com/GoPolymarket/polymarket-trade-panel/pkg/orderbook"
	"github.com/GoPolymarket/polymarket-trade-panel/pkg/pricing"
	"github.com/GoPolymarket/polymarket-trade-panel/pkg/trade"
	"github.com/GoPolymarket/polymarket-trade-panel/pkg/types"
)

// Client wires the calculator, guard, solver and book cache behind one
// configuration.
type Client struct {
	Config Config

	calc   *trade.Calculator
	guard  *trade.Guard
	solver *trade.Solver
	books  *orderbook.Cache
	source orderbook.Source

	InitErrors []error
}

// InitError records a configuration problem that was replaced by defaults.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("init %s: %v", e.Component, e.Err)
}

func (e *InitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewClient creates a client, falling back to defaults for invalid config.
func NewClient(opts ...Option) *Client {
	c, _ := newClient(false, opts...)
	return c
}

// NewClientE creates a client and returns an aggregated error if any part
// of the configuration is invalid.
func NewClientE(opts ...Option) (*Client, error) {
	return newClient(true, opts...)
}

func newClient(strict bool, opts ...Option) (*Client, error) {
	c := &Client{Config: DefaultConfig()}
	for _, opt := range opts {
		opt(c)
	}

	if err := logger.SetLevel(c.Config.LogLevel); err != nil {
		c.InitErrors = append(c.InitErrors, &InitError{Component: "logger", Err: err})
	}
	if err := c.Config.Pricing.Validate(); err != nil {
		c.InitErrors = append(c.InitErrors, &InitError{Component: "pricing", Err: err})
		c.Config.Pricing = pricing.DefaultConfig()
	}
	if err := c.Config.Book.Validate(); err != nil {
		c.InitErrors = append(c.InitErrors, &InitError{Component: "orderbook", Err: err})
		c.Config.Book = orderbook.DefaultConfig()
	}
	if c.source == nil {
		c.source = orderbook.DefaultSource()
	}

	c.calc = trade.NewCalculator(c.Config.Pricing)
	c.guard = trade.NewGuard(c.Config.Pricing.DisplayPlaces)
	c.solver = trade.NewSolver(c.Config.Pricing)
	c.books = orderbook.NewCache(orderbook.NewSimulator(c.Config.Book, c.source))

	if strict && len(c.InitErrors) > 0 {
		return c, errors.Join(c.InitErrors...)
	}
	return c, nil
}

// Quote is everything the panel displays for one input state.
type Quote struct {
	Request trade.Request
	Price   decimal.Decimal
	Trade   trade.Result
	// Display is Trade rounded to the configured display precision.
	Display trade.Result
	Check   trade.Check
	// Warnings carries non-fatal problems such as ErrUnknownOutcome.
	Warnings []error
}

// CanSubmit reports whether the submit action should be enabled.
func (q Quote) CanSubmit() bool {
	return q.Check.OK && !q.Trade.IsZero()
}

// Quote resolves the price and runs the calculator and guard for req.
func (c *Client) Quote(req trade.Request, market types.MarketPrices) Quote {
	req = req.Normalize()
	q := Quote{Request: req}

	price, err := pricing.ResolvePrice(req.PriceQuery(), market)
	if err != nil {
		q.Warnings = append(q.Warnings, err)
	}
	q.Price = price
	q.Trade = c.calc.Compute(req, price)
	q.Display = q.Trade.Display(c.Config.Pricing.DisplayPlaces)
	q.Check = c.guard.Check(req, q.Trade)
	return q
}

// MaxAffordable returns the largest amount req can carry, in its own unit.
func (c *Client) MaxAffordable(req trade.Request, market types.MarketPrices) decimal.Decimal {
	req = req.Normalize()
	price, _ := pricing.ResolvePrice(req.PriceQuery(), market)
	return c.solver.MaxAffordable(req, price)
}

// QuickAmount returns the amount a quick-amount preset fills in.
func (c *Client) QuickAmount(req trade.Request, market types.MarketPrices, percent trade.Percent) decimal.Decimal {
	req = req.Normalize()
	price, _ := pricing.ResolvePrice(req.PriceQuery(), market)
	return c.solver.QuickAmount(req, price, percent)
}

// QuickAmounts evaluates every preset.
func (c *Client) QuickAmounts(req trade.Request, market types.MarketPrices) map[trade.Percent]decimal.Decimal {
	req = req.Normalize()
	price, _ := pricing.ResolvePrice(req.PriceQuery(), market)
	return c.solver.QuickAmounts(req, price)
}

// Book returns the simulated book for one outcome of market. An unknown
// outcome yields a book around the fallback price plus ErrUnknownOutcome.
func (c *Client) Book(market types.Market, outcomeID string) (orderbook.Book, error) {
	outcome, ok := market.Outcome(outcomeID)
	if !ok {
		fallback := types.NewOutcome(outcomeID, outcomeID, pricing.FallbackPrice)
		book, _ := c.books.Book(market.ID, fallback, market.Volume)
		return book, sdkerrors.UnknownOutcome(outcomeID)
	}
	outcome.Price = types.ClampOutcomePrice(outcome.Price)
	book, _ := c.books.Book(market.ID, outcome, market.Volume)
	return book, nil
}

// Books returns one book per outcome, in market order.
func (c *Client) Books(market types.Market) []orderbook.Book {
	out := make([]orderbook.Book, 0, len(market.Outcomes))
	for _, o := range market.Outcomes {
		book, _ := c.Book(market, o.ID)
		out = append(out, book)
	}
	return out
}

// InvalidateBooks drops cached books of a market, forcing regeneration.
func (c *Client) InvalidateBooks(marketID string) {
	c.books.Invalidate(marketID)
}
