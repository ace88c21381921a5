package orderbook

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/GoPolymarket/polymarket-trade-panel/pkg/logger"
	"github.com/GoPolymarket/polymarket-trade-panel/pkg/types"
)

type slot struct {
	marketID  string
	outcomeID string
}

type cached struct {
	price  decimal.Decimal
	volume decimal.Decimal
	book   Book
}

// Cache keeps one book per (market, outcome) and regenerates it only when
// the outcome price or market volume changes, so repeated renders do not
// re-randomize the ladder.
type Cache struct {
	mu    sync.Mutex
	sim   *Simulator
	books map[slot]cached
}

func NewCache(sim *Simulator) *Cache {
	return &Cache{sim: sim, books: make(map[slot]cached)}
}

// Book returns the cached book for outcome, regenerating it when its inputs
// changed. regenerated is true when a new book was built.
func (c *Cache) Book(marketID string, outcome types.Outcome, volume decimal.Decimal) (book Book, regenerated bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := slot{marketID: marketID, outcomeID: outcome.ID}
	if hit, ok := c.books[key]; ok && hit.price.Equal(outcome.Price) && hit.volume.Equal(volume) {
		return hit.book.Clone(), false
	}

	book = c.sim.Build(marketID, outcome, volume)
	c.books[key] = cached{price: outcome.Price, volume: volume, book: book}
	logger.Debug("regenerated book %s for %s/%s at %s", book.ID, marketID, outcome.ID, outcome.Price)
	return book.Clone(), true
}

// Invalidate drops every cached book of a market.
func (c *Cache) Invalidate(marketID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.books {
		if k.marketID == marketID {
			delete(c.books, k)
		}
	}
}

// Len returns the number of cached books.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.books)
}
