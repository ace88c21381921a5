// Package orderbook generates the synthetic two-sided depth ladder shown
// next to the trade panel, and summarizes it into best bid/ask and spread.
//
// Prices in this package are expressed in cents with one decimal place.
package orderbook

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	sdkerrors "github.com/GoPolymarket/polymarket-trade-panel/pkg/errors"
	"github.com/GoPolymarket/polymarket-trade-panel/pkg/logger"
	"github.com/GoPolymarket/polymarket-trade-panel/pkg/types"
)

// BookSide identifies a ladder.
type BookSide string

const (
	SideAsk BookSide = "ASK"
	SideBid BookSide = "BID"
)

var (
	MinPriceCents = decimal.RequireFromString("0.5")
	MaxPriceCents = decimal.RequireFromString("99.5")

	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
	two     = decimal.NewFromInt(2)
)

// Entry is one resting level of a simulated ladder.
type Entry struct {
	Side      BookSide
	Price     decimal.Decimal
	Shares    int64
	Total     decimal.Decimal
	OutcomeID string
	// Backfilled marks levels appended after the regular ladder ran out of
	// valid prices.
	Backfilled bool
}

// Book is a full simulated book for one outcome.
type Book struct {
	ID          uuid.UUID
	MarketID    string
	OutcomeID   string
	Asks        []Entry
	Bids        []Entry
	Summary     Summary
	Degenerate  bool
	GeneratedAt time.Time
}

// Clone returns a copy of b that shares no slices with it.
func (b Book) Clone() Book {
	b.Asks = append([]Entry(nil), b.Asks...)
	b.Bids = append([]Entry(nil), b.Bids...)
	return b
}

// Err returns an error wrapping ErrDegenerateBook when either ladder had to
// be backfilled near a price bound, and nil otherwise.
func (b Book) Err() error {
	if !b.Degenerate {
		return nil
	}
	return fmt.Errorf("%w: outcome %q at %s¢", sdkerrors.ErrDegenerateBook, b.OutcomeID, b.Summary.LastPrice.StringFixed(1))
}

// Mid returns the midpoint of best bid and best ask when both exist.
func (b Book) Mid() decimal.NullDecimal {
	if !b.Summary.BestAsk.Valid || !b.Summary.BestBid.Valid {
		return decimal.NullDecimal{}
	}
	mid := b.Summary.BestAsk.Decimal.Add(b.Summary.BestBid.Decimal).Div(two).Round(2)
	return decimal.NullDecimal{Decimal: mid, Valid: true}
}

// StepFor returns the ladder increment for a reference price in cents.
// Steps are tighter near the probability extremes.
func StepFor(basePriceCents decimal.Decimal) decimal.Decimal {
	switch {
	case basePriceCents.LessThan(decimal.NewFromInt(20)):
		return decimal.RequireFromString("0.5")
	case basePriceCents.LessThan(decimal.NewFromInt(50)):
		return one
	case basePriceCents.LessThan(decimal.NewFromInt(80)):
		return decimal.RequireFromString("1.5")
	default:
		return two
	}
}

// ClampPriceCents keeps a book price inside [0.5, 99.5] cents.
func ClampPriceCents(p decimal.Decimal) decimal.Decimal {
	if p.LessThan(MinPriceCents) {
		return MinPriceCents
	}
	if p.GreaterThan(MaxPriceCents) {
		return MaxPriceCents
	}
	return p
}

// Simulator builds ladders. It is not safe for concurrent use unless its
// Source is; Cache serializes access.
type Simulator struct {
	cfg Config
	src Source
	now func() time.Time
}

func NewSimulator(cfg Config, src Source) *Simulator {
	if src == nil {
		src = DefaultSource()
	}
	if cfg.Depth <= 0 {
		cfg.Depth = DefaultConfig().Depth
	}
	return &Simulator{cfg: cfg, src: src, now: time.Now}
}

// Config returns the simulator configuration.
func (s *Simulator) Config() Config {
	return s.cfg
}

// GenerateLadder returns exactly cfg.Depth levels for one side of the book
// around basePriceCents. Asks ascend from the base, bids descend from it.
//
// A level whose price leaves [0.5, 99.5], crosses to the other side of the
// base or repeats the previous level is retried half a step closer to the
// base and skipped if still invalid. Missing levels are backfilled one step
// beyond the last one, clamped to the valid range.
func (s *Simulator) GenerateLadder(basePriceCents decimal.Decimal, side BookSide, outcomeID string, volume decimal.Decimal) []Entry {
	base := ClampPriceCents(basePriceCents).Round(1)
	step := StepFor(base)
	half := step.Div(two)
	dir := one
	if side == SideBid {
		dir = one.Neg()
	}

	depth := s.cfg.Depth
	entries := make([]Entry, 0, depth)
	var prev *decimal.Decimal
	for i := 0; i < depth; i++ {
		p := base.Add(step.Mul(decimal.NewFromInt(int64(i))).Mul(dir)).Round(1)
		if !validLevel(p, base, side, prev) {
			adjusted := p.Sub(half.Mul(dir)).Round(1)
			if !validLevel(adjusted, base, side, prev) {
				continue
			}
			p = adjusted
		}
		entries = append(entries, s.entry(side, p, len(entries), outcomeID, volume, false))
		prev = &p
	}

	if missing := depth - len(entries); missing > 0 {
		logger.Debug("%s ladder for %q backfilled %d levels around %s", side, outcomeID, missing, base)
	}
	for len(entries) < depth {
		last := base
		if prev != nil {
			last = *prev
		}
		p := ClampPriceCents(last.Add(step.Mul(dir))).Round(1)
		entries = append(entries, s.entry(side, p, len(entries), outcomeID, volume, true))
		prev = &p
	}
	return entries
}

// Build generates both ladders for an outcome and summarizes them.
func (s *Simulator) Build(marketID string, outcome types.Outcome, volume decimal.Decimal) Book {
	base := outcome.PriceCents()
	asks := s.GenerateLadder(base, SideAsk, outcome.ID, volume)
	bids := s.GenerateLadder(base, SideBid, outcome.ID, volume)
	SortForDisplay(asks, bids)

	book := Book{
		ID:          uuid.New(),
		MarketID:    marketID,
		OutcomeID:   outcome.ID,
		Asks:        asks,
		Bids:        bids,
		Summary:     Summarize(asks, bids, base.Round(1), s.cfg.DefaultSpreadCents),
		GeneratedAt: s.now(),
	}
	book.Degenerate = hasBackfill(asks) || hasBackfill(bids)
	return book
}

// SortForDisplay orders asks ascending and bids descending in place, so the
// levels nearest the spread sit next to each other.
func SortForDisplay(asks, bids []Entry) {
	sort.SliceStable(asks, func(i, j int) bool { return asks[i].Price.LessThan(asks[j].Price) })
	sort.SliceStable(bids, func(i, j int) bool { return bids[i].Price.GreaterThan(bids[j].Price) })
}

func (s *Simulator) entry(side BookSide, price decimal.Decimal, level int, outcomeID string, volume decimal.Decimal, backfilled bool) Entry {
	shares := s.size(level, volume)
	return Entry{
		Side:       side,
		Price:      price,
		Shares:     shares,
		Total:      price.Mul(decimal.NewFromInt(shares)).Div(hundred).Round(2),
		OutcomeID:  outcomeID,
		Backfilled: backfilled,
	}
}

// size draws floor(random(base..base+range) × volumeMultiplier × depthMultiplier).
func (s *Simulator) size(level int, volume decimal.Decimal) int64 {
	depthMult := one.Add(decimal.NewFromInt(int64(s.cfg.Depth - level)).Mul(s.cfg.DepthWeight))
	volumeMult := one
	if s.cfg.VolumeUnit.Sign() > 0 {
		volumeMult = decimal.Max(one, volume.Div(s.cfg.VolumeUnit))
	}
	draw := s.cfg.SizeBase.Add(s.cfg.SizeRange.Mul(decimal.NewFromFloat(s.src.Float64())))
	shares := draw.Mul(volumeMult).Mul(depthMult).Floor().IntPart()
	if shares < 1 {
		return 1
	}
	return shares
}

func validLevel(p, base decimal.Decimal, side BookSide, prev *decimal.Decimal) bool {
	if p.LessThan(MinPriceCents) || p.GreaterThan(MaxPriceCents) {
		return false
	}
	if side == SideAsk {
		if p.LessThan(base) {
			return false
		}
		return prev == nil || p.GreaterThan(*prev)
	}
	if p.GreaterThan(base) {
		return false
	}
	return prev == nil || p.LessThan(*prev)
}

func hasBackfill(entries []Entry) bool {
	for _, e := range entries {
		if e.Backfilled {
			return true
		}
	}
	return false
}
