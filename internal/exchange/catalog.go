package exchange

import (
	"sort"
	"strings"

	"trading-journal/internal/types"
)

// Exchange identifiers. These are the only values Detect returns and the
// only keys the catalog knows.
const (
	Binance     = "binance"
	Bybit       = "bybit"
	Blofin      = "blofin"
	Hyperliquid = "hyperliquid"
	Generic     = "generic"
)

// Config describes one supported export format. MapRow converts a single raw
// row into a canonical trade; ok=false means the row failed minimum validity
// and is dropped without error.
type Config struct {
	ID            string
	DisplayName   string
	Description   string
	SampleColumns []string
	MapRow        func(types.RawRow) (t types.ParsedTrade, ok bool)
}

// The catalog is fixed at compile time. Adding an exchange means adding one
// entry here plus a detection signature in Detect.
var catalog = map[string]Config{
	Binance: {
		ID:            Binance,
		DisplayName:   "Binance Futures",
		Description:   "Trade history or position history export",
		SampleColumns: []string{"Date(UTC)", "Symbol", "Side", "Position Side", "Price", "Quantity", "Fee", "Realized Profit"},
		MapRow:        mapBinance,
	},
	Bybit: {
		ID:            Bybit,
		DisplayName:   "Bybit",
		Description:   "Closed P&L export",
		SampleColumns: []string{"Contracts", "Closing Direction", "Qty", "Entry Price", "Exit Price", "Closed P&L", "Trade Time"},
		MapRow:        mapBybit,
	},
	Blofin: {
		ID:            Blofin,
		DisplayName:   "Blofin",
		Description:   "Order history export (side records the closing action)",
		SampleColumns: []string{"Underlying Asset", "Side", "Price", "Size", "Fee", "Realized PnL", "Time"},
		MapRow:        mapBlofin,
	},
	Hyperliquid: {
		ID:            Hyperliquid,
		DisplayName:   "Hyperliquid",
		Description:   "Fill history export",
		SampleColumns: []string{"time", "coin", "side", "px", "sz", "fee", "closedPnl"},
		MapRow:        mapHyperliquid,
	},
	Generic: {
		ID:            Generic,
		DisplayName:   "Generic",
		Description:   "Best-effort mapping for unrecognized exports",
		SampleColumns: []string{"Date", "Symbol", "Side", "Entry", "Exit", "Size", "PnL"},
		MapRow:        mapGeneric,
	},
}

// Lookup returns the config for an exchange id, falling back to the generic
// mapper for unknown or empty ids.
func Lookup(id string) Config {
	if c, ok := catalog[strings.ToLower(strings.TrimSpace(id))]; ok {
		return c
	}
	return catalog[Generic]
}

// All returns every catalog entry sorted by id, for the upload wizard's
// format picker.
func All() []Config {
	out := make([]Config, 0, len(catalog))
	for _, c := range catalog {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
