package types

import "time"

// Position direction values used across the whole pipeline. Exports that
// record the closing action instead of the position direction (Blofin) are
// inverted by their mapper before the trade reaches here.
const (
	Long  = "LONG"
	Short = "SHORT"
)

// RawRow is one tokenized row of an exchange export: column name to raw cell
// value. Values are strings when the row came out of a CSV, but may arrive as
// numbers when the same row shape is produced by a live sync payload.
type RawRow = map[string]any

// ParsedTrade is the canonical trade record every exchange format converges
// to. Rows that cannot resolve a symbol and a positive entry price (or a
// nonzero realized PnL on the generic fallback) never become a ParsedTrade.
type ParsedTrade struct {
	Date     string  `json:"date"` // ISO-8601 once annotated
	Symbol   string  `json:"symbol"`
	Side     string  `json:"side"` // LONG or SHORT
	Entry    float64 `json:"entry"`
	Exit     float64 `json:"exit"` // equals Entry for single-fill exports
	Size     float64 `json:"size"`
	Leverage float64 `json:"leverage"` // >= 1, defaults to 1
	Fees     float64 `json:"fees"`
	PnlUSD   float64 `json:"pnl_usd"`
	PnlPct   float64 `json:"pnl_pct"`
	Exchange string  `json:"exchange"`
}

// AnnotatedTrade is a ParsedTrade whose date has been resolved to a concrete
// timestamp. Unparseable dates fall back to the annotation time, never to a
// zero value: the aggregation pass needs a total order over trades.
//
// Setup is journal metadata attached after import (exchanges export no such
// column); empty means the trade sits in the "No setup" bucket.
type AnnotatedTrade struct {
	ParsedTrade
	Timestamp time.Time `json:"-"`
	Setup     string    `json:"setup,omitempty"`
}
