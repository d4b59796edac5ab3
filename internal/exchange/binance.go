package exchange

import (
	"strings"

	"trading-journal/internal/types"
)

// mapBinance handles both shapes Binance exports: aggregated position
// history and per-fill trade history. The two are told apart by probing for
// an entry-price column, which only the position export carries.
func mapBinance(row types.RawRow) (types.ParsedTrade, bool) {
	f := newFields(row)
	if f.has("entry price", "avg entry price") {
		return mapBinancePosition(f)
	}
	return mapBinanceFill(f)
}

func mapBinanceFill(f fields) (types.ParsedTrade, bool) {
	symbol := cleanSymbol(f.str("symbol", "pair", "market"))
	entry := f.num("price", "avg price", "avg. price")
	if symbol == "" || entry <= 0 {
		return types.ParsedTrade{}, false
	}

	size := nonneg(f.num("quantity", "qty", "executed qty", "amount"))
	pnl := f.num("realized profit", "realized pnl", "profit")

	t := types.ParsedTrade{
		Date:     f.str("date(utc)", "time(utc)", "date", "time", "timestamp"),
		Symbol:   symbol,
		Side:     binanceSide(f.str("side"), f.str("position side")),
		Entry:    entry,
		Exit:     entry, // individual fills carry no exit price
		Size:     size,
		Leverage: f.leverage(),
		Fees:     nonneg(f.num("fee", "commission")),
		PnlUSD:   pnl,
		PnlPct:   pnlPct(f, pnl, entry, size),
		Exchange: Binance,
	}
	return t, true
}

// mapBinancePosition maps the closed-position export. It omits leverage and
// fee columns entirely, so those are pinned rather than defaulted per row.
func mapBinancePosition(f fields) (types.ParsedTrade, bool) {
	symbol := cleanSymbol(f.str("symbol", "pair", "market"))
	entry := f.num("entry price", "avg entry price")
	if symbol == "" || entry <= 0 {
		return types.ParsedTrade{}, false
	}

	exit := f.num("avg close price", "closing price", "close price", "exit price")
	if exit == 0 {
		exit = entry
	}
	size := nonneg(f.num("max open interest", "closed vol", "size", "quantity", "amount"))
	pnl := f.num("closed pnl", "closing pnl", "realized profit", "pnl")

	t := types.ParsedTrade{
		Date:     f.str("closed time", "close time", "date(utc)", "date", "time"),
		Symbol:   symbol,
		Side:     binanceSide(f.str("side"), f.str("position side")),
		Entry:    entry,
		Exit:     exit,
		Size:     size,
		Leverage: 1,
		Fees:     0,
		PnlUSD:   pnl,
		PnlPct:   pnlPct(f, pnl, entry, size),
		Exchange: Binance,
	}
	return t, true
}

// binanceSide combines the order side (BUY/SELL) with the hedge-mode
// position side (LONG/SHORT/BOTH). In one-way mode the position side reads
// BOTH and the order side determines direction; in hedge mode the position
// side is authoritative.
func binanceSide(rawSide, positionSide string) string {
	ps := strings.ToUpper(strings.TrimSpace(positionSide))
	switch ps {
	case "", "BOTH":
		return genericSide(rawSide)
	case "SHORT":
		return types.Short
	default:
		return types.Long
	}
}
