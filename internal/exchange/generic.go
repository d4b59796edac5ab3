package exchange

import "trading-journal/internal/types"

// mapGeneric is the fallback for unrecognized exports: widest candidate
// lists, loosest validity. Unlike the exchange-specific mappers it also
// accepts rows without a usable entry price as long as they carry a nonzero
// realized PnL, since that is still enough for every downstream statistic.
func mapGeneric(row types.RawRow) (types.ParsedTrade, bool) {
	f := newFields(row)

	symbol := cleanSymbol(f.str("symbol", "pair", "market", "coin", "ticker", "instrument", "contracts"))
	entry := f.num("entry", "entry price", "avg entry price", "open price", "price")
	pnl := f.num("pnl", "realized pnl", "realized profit", "closed pnl", "closed p&l", "profit", "net profit")
	if symbol == "" || (entry <= 0 && pnl == 0) {
		return types.ParsedTrade{}, false
	}

	exit := f.num("exit", "exit price", "close price", "closing price", "avg exit price")
	if exit == 0 {
		exit = entry
	}
	size := nonneg(f.num("size", "qty", "quantity", "amount", "volume"))

	t := types.ParsedTrade{
		Date:     f.str("date", "time", "timestamp", "close time", "closed time", "trade time", "created at"),
		Symbol:   symbol,
		Side:     genericSide(f.str("side", "direction", "position side", "type")),
		Entry:    entry,
		Exit:     exit,
		Size:     size,
		Leverage: f.leverage(),
		Fees:     nonneg(f.num("fee", "fees", "commission")),
		PnlUSD:   pnl,
		PnlPct:   pnlPct(f, pnl, entry, size),
		Exchange: Generic,
	}
	return t, true
}
