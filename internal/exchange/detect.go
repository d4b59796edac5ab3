package exchange

import "strings"

// Detect picks the most likely exchange for a header row. Column names are
// lowercased into a set and tested against exchange-unique signatures in a
// fixed priority order; the order matters because a column name can appear
// in more than one export, so the most distinctive signatures go first.
// Detection is deterministic and binary: no confidence score, unknown
// headers fall through to the generic mapper.
func Detect(columns []string) string {
	set := make(map[string]bool, len(columns))
	for _, c := range columns {
		set[strings.ToLower(strings.TrimSpace(c))] = true
	}

	switch {
	case (set["sz"] && set["px"]) || set["coin"]:
		return Hyperliquid
	case set["contracts"] || set["closed p&l"] || set["closing direction"]:
		return Bybit
	case set["position side"] || set["realized profit"]:
		return Binance
	case set["instrument"] || set["instid"]:
		return Blofin
	}
	return Generic
}
