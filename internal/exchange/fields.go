package exchange

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"trading-journal/internal/types"
)

// fields is a case-normalized view over one raw row. Every lookup takes an
// ordered list of candidate column names; the first candidate present in the
// row wins, which makes the per-exchange precedence explicit and testable.
type fields map[string]any

func newFields(row types.RawRow) fields {
	f := make(fields, len(row))
	for k, v := range row {
		f[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return f
}

func (f fields) has(names ...string) bool {
	for _, n := range names {
		if _, ok := f[n]; ok {
			return true
		}
	}
	return false
}

// str returns the first candidate's value as a trimmed string, or "".
func (f fields) str(names ...string) string {
	for _, n := range names {
		v, ok := f[n]
		if !ok {
			continue
		}
		switch s := v.(type) {
		case string:
			if t := strings.TrimSpace(s); t != "" {
				return t
			}
		case nil:
		default:
			return strings.TrimSpace(fmt.Sprintf("%v", s))
		}
	}
	return ""
}

// num returns the first candidate that parses as a number, or 0. Missing or
// garbled numeric cells never fail a row on their own.
func (f fields) num(names ...string) float64 {
	return f.numDefault(0, names...)
}

func (f fields) numDefault(def float64, names ...string) float64 {
	for _, n := range names {
		v, ok := f[n]
		if !ok {
			continue
		}
		if x, ok := toNumber(v); ok {
			return x
		}
	}
	return def
}

// toNumber coerces a raw cell to a float. Exchange exports decorate numbers
// freely ("1,234.50", "$12", "10x", "12.5 USDT"), so parsing strips currency
// noise and falls back to the leading numeric run.
func toNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false
		}
		s = strings.ReplaceAll(s, ",", "")
		s = strings.TrimPrefix(s, "$")
		if i := strings.IndexByte(s, ' '); i >= 0 {
			s = s[:i]
		}
		if d, err := decimal.NewFromString(s); err == nil {
			return d.InexactFloat64(), true
		}
		if lead := leadingNumber(s); lead != "" {
			if d, err := decimal.NewFromString(lead); err == nil {
				return d.InexactFloat64(), true
			}
		}
		return 0, false
	}
	return 0, false
}

// leadingNumber extracts the numeric prefix of a cell like "10x" or "25.5%".
func leadingNumber(s string) string {
	end := 0
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' || c == '.' || (end == 0 && (c == '-' || c == '+')) {
			end++
			continue
		}
		break
	}
	return s[:end]
}

// leverage reads the leverage column and clamps to the canonical minimum of
// 1 (absent, zero and malformed cells all mean unlevered).
func (f fields) leverage() float64 {
	lv := f.numDefault(1, "leverage")
	if lv < 1 {
		return 1
	}
	return lv
}

// nonneg folds sign away for fields the canonical schema defines as
// magnitudes (size, fees); some exports write fees as negative cash flow.
func nonneg(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

var quoteSuffixes = []string{"USDT", "BUSD", "USD", "PERP"}

// cleanSymbol uppercases a raw market name and strips known quote-asset
// suffixes and separators: "btcusdt", "BTC/USDT" and "BTC-PERP" all become
// "BTC".
func cleanSymbol(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if i := strings.IndexAny(s, "/ "); i >= 0 {
		s = s[:i]
	}
	for {
		trimmed := strings.TrimRight(s, "-_")
		for _, suf := range quoteSuffixes {
			trimmed = strings.TrimSuffix(trimmed, suf)
		}
		trimmed = strings.TrimRight(trimmed, "-_")
		if trimmed == s || trimmed == "" {
			if trimmed != "" {
				s = trimmed
			}
			return s
		}
		s = trimmed
	}
}

// genericSide maps a raw side cell to a position direction: anything that
// reads as selling or short goes SHORT, everything else (including empty)
// goes LONG.
func genericSide(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "S" || strings.Contains(s, "SELL") || strings.Contains(s, "SHORT") {
		return types.Short
	}
	return types.Long
}

// pnlPct returns the supplied percentage when the export carries one,
// otherwise derives it from the realized PnL over the position cost.
func pnlPct(f fields, pnl, entry, size float64) float64 {
	if f.has("pnl %", "pnl%", "roi", "roi %", "realized pnl %") {
		return f.num("pnl %", "pnl%", "roi", "roi %", "realized pnl %")
	}
	cost := entry * size
	if cost == 0 {
		return 0
	}
	return pnl / cost * 100
}
