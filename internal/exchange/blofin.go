package exchange

import (
	"strings"

	"trading-journal/internal/types"
)

// mapBlofin maps the order history export. Blofin's Side column records the
// closing action, not the position direction, so the mapping is inverted:
// a closing SELL means the position was LONG, a closing BUY means SHORT.
// A naive uniform mapping here would silently flip win/loss attribution.
func mapBlofin(row types.RawRow) (types.ParsedTrade, bool) {
	f := newFields(row)

	symbol := blofinSymbol(f.str("underlying asset", "instrument", "instid", "symbol"))
	entry := f.num("avg fill", "filled price", "avg price", "price")
	if symbol == "" || entry <= 0 {
		return types.ParsedTrade{}, false
	}

	size := nonneg(f.num("size", "filled", "quantity", "qty", "amount"))
	pnl := f.num("realized pnl", "pnl", "closed pnl")

	t := types.ParsedTrade{
		Date:     f.str("time", "create time", "filled time", "order time", "date"),
		Symbol:   symbol,
		Side:     blofinSide(f.str("side", "order side", "direction")),
		Entry:    entry,
		Exit:     entry, // order-level export, no round-trip exit price
		Size:     size,
		Leverage: f.leverage(),
		Fees:     nonneg(f.num("fee", "fees")),
		PnlUSD:   pnl,
		PnlPct:   pnlPct(f, pnl, entry, size),
		Exchange: Blofin,
	}
	return t, true
}

// Instrument ids look like "BTC-USDT-SWAP"; the base asset is the first
// dash-separated token.
func blofinSymbol(raw string) string {
	s := strings.TrimSpace(raw)
	if i := strings.IndexByte(s, '-'); i >= 0 {
		s = s[:i]
	}
	return cleanSymbol(s)
}

func blofinSide(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	switch {
	case strings.Contains(s, "SELL") || s == "S":
		return types.Long // closing sell: the position was long
	case strings.Contains(s, "BUY") || s == "B":
		return types.Short // closing buy: the position was short
	}
	// Some rows spell out the direction instead of the action.
	return genericSide(s)
}
