package exchange

import "trading-journal/internal/types"

// mapHyperliquid maps the fill history export (lowercase short column names:
// coin/px/sz).
func mapHyperliquid(row types.RawRow) (types.ParsedTrade, bool) {
	f := newFields(row)

	symbol := cleanSymbol(f.str("coin", "symbol"))
	entry := f.num("px", "price")
	if symbol == "" || entry <= 0 {
		return types.ParsedTrade{}, false
	}

	size := nonneg(f.num("sz", "size", "quantity"))
	pnl := f.num("closedpnl", "closed pnl", "pnl")

	t := types.ParsedTrade{
		Date:     f.str("time", "timestamp", "date"),
		Symbol:   symbol,
		Side:     genericSide(f.str("side", "dir", "direction")),
		Entry:    entry,
		Exit:     entry, // fills only, no exit price
		Size:     size,
		Leverage: f.leverage(),
		Fees:     nonneg(f.num("fee", "fees")),
		PnlUSD:   pnl,
		PnlPct:   pnlPct(f, pnl, entry, size),
		Exchange: Hyperliquid,
	}
	return t, true
}
