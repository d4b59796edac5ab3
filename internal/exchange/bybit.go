package exchange

import "trading-journal/internal/types"

// mapBybit maps the closed P&L export. Bybit writes direction into several
// differently-named columns across export versions; any value containing
// SELL or SHORT means the position was short.
func mapBybit(row types.RawRow) (types.ParsedTrade, bool) {
	f := newFields(row)

	symbol := cleanSymbol(f.str("contracts", "symbol", "market"))
	entry := f.num("entry price", "avg entry price", "order price")
	if symbol == "" || entry <= 0 {
		return types.ParsedTrade{}, false
	}

	exit := f.num("exit price", "avg exit price", "closing price")
	if exit == 0 {
		exit = entry
	}
	size := nonneg(f.num("qty", "closed size", "contracts qty", "size", "quantity"))
	pnl := f.num("closed p&l", "closed pnl", "realized p&l", "realized pnl")

	t := types.ParsedTrade{
		Date:     f.str("trade time", "create time", "time", "date"),
		Symbol:   symbol,
		Side:     genericSide(f.str("closing direction", "side", "trade type")),
		Entry:    entry,
		Exit:     exit,
		Size:     size,
		Leverage: f.leverage(),
		Fees:     nonneg(f.num("fee", "fees", "trading fee")),
		PnlUSD:   pnl,
		PnlPct:   pnlPct(f, pnl, entry, size),
		Exchange: Bybit,
	}
	return t, true
}
