package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	tradepanel "github.com/GoPolymarket/polymarket-trade-panel"
	sdkerrors "github.com/GoPolymarket/polymarket-trade-panel/pkg/errors"
	"github.com/GoPolymarket/polymarket-trade-panel/pkg/orderbook"
	"github.com/GoPolymarket/polymarket-trade-panel/pkg/trade"
	"github.com/GoPolymarket/polymarket-trade-panel/pkg/types"
)

func main() {
	var (
		envFile  = flag.String("env", ".env", "Optional .env file with TRADE_PANEL_* settings")
		sideRaw  = flag.String("side", "buy", "Trade side: buy or sell")
		typeRaw  = flag.String("type", "market", "Order type: market or limit")
		outcome  = flag.String("outcome", "yes", "Outcome id")
		amount   = flag.String("amount", "100", "Amount: dollars for buy-market, shares otherwise")
		limit    = flag.Int("limit", 50, "Limit price in cents (1-99)")
		balance  = flag.String("balance", "1000", "Available USD balance")
		shares   = flag.String("shares", "0", "Shares held for the outcome")
		yesPct   = flag.String("yes", "64", "YES probability in percent")
		volume   = flag.String("volume", "250000", "Market volume, scales book sizes")
		seed     = flag.Int64("seed", 0, "Seed for book sizes (0 = random)")
		showBook = flag.Bool("book", true, "Print the simulated order book")
	)
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("load %s: %v", *envFile, err)
	}

	side, err := types.ParseSide(*sideRaw)
	if err != nil {
		log.Fatal(err)
	}
	orderType, err := types.ParseOrderType(*typeRaw)
	if err != nil {
		log.Fatal(err)
	}

	opts := []tradepanel.Option{tradepanel.WithConfig(tradepanel.ConfigFromEnv())}
	if *seed != 0 {
		opts = append(opts, tradepanel.WithRandomSource(orderbook.NewSeededSource(*seed)))
	}
	client, err := tradepanel.NewClientE(opts...)
	if err != nil {
		log.Printf("config problems, using defaults: %v", err)
	}

	yes, _ := trade.ParseAmount(*yesPct)
	vol, _ := trade.ParseAmount(*volume)
	market := types.Market{
		ID:       "sim",
		Question: "Simulated binary market",
		Outcomes: []types.Outcome{
			types.OutcomeFromPercent("yes", "Yes", yes),
			types.OutcomeFromPercent("no", "No", decimal.NewFromInt(100).Sub(yes)),
		},
		Volume: vol,
	}

	bal, _ := trade.ParseAmount(*balance)
	held, _ := trade.ParseAmount(*shares)
	req := trade.NewRequestBuilder().
		Side(side).
		OrderType(orderType).
		Outcome(*outcome).
		AmountText(*amount).
		LimitPriceCents(*limit).
		Balance(bal).
		AvailableShares(held).
		Build()

	q := client.Quote(req, market)
	for _, w := range q.Warnings {
		fmt.Printf("warning: %v\n", w)
	}

	unit := "shares"
	if req.AmountIsDollars() {
		unit = "USD"
	}
	fmt.Printf("%s %s %s | amount=%s %s price=%s\n", req.Side, req.OrderType, req.OutcomeID, req.Amount, unit, q.Price.StringFixed(2))
	fmt.Printf("shares=%s notional=%s fee=%s net=%s",
		q.Display.Shares.StringFixed(2),
		q.Display.Notional.StringFixed(2),
		q.Display.Fee.StringFixed(2),
		q.Display.Net.StringFixed(2),
	)
	if q.Trade.HasToWin() {
		fmt.Printf(" to_win=%s", q.Display.ToWin.StringFixed(2))
	}
	fmt.Println()

	switch {
	case q.Check.OK:
		fmt.Println("check: ok")
	case errors.Is(q.Check.Reason, sdkerrors.ErrInsufficientBalance):
		fmt.Println("check: insufficient balance")
	case errors.Is(q.Check.Reason, sdkerrors.ErrInsufficientShares):
		fmt.Println("check: insufficient shares")
	}

	quick := client.QuickAmounts(req, market)
	parts := make([]string, 0, len(trade.QuickPresets))
	for _, p := range trade.QuickPresets {
		label := fmt.Sprintf("%d%%", p)
		if p == trade.QuickMax {
			label = "Max"
		}
		parts = append(parts, fmt.Sprintf("%s=%s", label, quick[p]))
	}
	fmt.Printf("quick amounts: %s\n", strings.Join(parts, " "))

	if !*showBook {
		return
	}
	book, err := client.Book(market, req.OutcomeID)
	if err != nil {
		fmt.Printf("warning: %v\n", err)
	}
	printBook(book)
}

func printBook(book orderbook.Book) {
	fmt.Printf("\norder book %s (%s)\n", book.OutcomeID, book.ID)
	fmt.Printf("%8s %8s %10s\n", "PRICE", "SHARES", "TOTAL")
	for i := len(book.Asks) - 1; i >= 0; i-- {
		a := book.Asks[i]
		fmt.Printf("%7s¢ %8d %10s  ask\n", a.Price.StringFixed(1), a.Shares, "$"+a.Total.StringFixed(2))
	}
	fmt.Printf("--- spread %s¢ last %s¢ ---\n", book.Summary.Spread.StringFixed(1), book.Summary.LastPrice.StringFixed(1))
	for _, b := range book.Bids {
		fmt.Printf("%7s¢ %8d %10s  bid\n", b.Price.StringFixed(1), b.Shares, "$"+b.Total.StringFixed(2))
	}
	if err := book.Err(); err != nil {
		fmt.Printf("(%v: ladder backfilled near price bound)\n", err)
	}
}
