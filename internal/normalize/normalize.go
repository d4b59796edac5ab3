package normalize

import (
	"time"

	"trading-journal/internal/exchange"
	"trading-journal/internal/types"
)

// Normalize converts raw export rows into canonical trades. When exchangeID
// is empty the format is detected from the first row's column names; unknown
// ids fall back to the generic mapper. Rows that fail the mapper's minimum
// validity are dropped silently, so the output may be shorter than the
// input. Empty input returns an empty slice, never an error: nothing in the
// normalization path is designed to fail.
func Normalize(rows []types.RawRow, exchangeID string) []types.ParsedTrade {
	out := make([]types.ParsedTrade, 0, len(rows))
	if len(rows) == 0 {
		return out
	}

	id := exchangeID
	if id == "" {
		id = DetectExchange(rows)
	}
	cfg := exchange.Lookup(id)

	for _, row := range rows {
		t, ok := cfg.MapRow(row)
		if !ok {
			continue
		}
		out = append(out, t)
	}
	return out
}

// DetectExchange runs header detection over a row set's column names.
func DetectExchange(rows []types.RawRow) string {
	if len(rows) == 0 {
		return exchange.Generic
	}
	cols := make([]string, 0, len(rows[0]))
	for k := range rows[0] {
		cols = append(cols, k)
	}
	return exchange.Detect(cols)
}

// Date layouts seen across exchange exports, most specific first.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02 15:04:05",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"2006-01-02",
	"01/02/2006",
}

// Annotate resolves each trade's date string to a concrete timestamp and
// rewrites Date to RFC3339. Unparseable dates resolve to now rather than a
// zero value; the aggregation pass requires a total order over trades and
// must never see a null timestamp.
func Annotate(trades []types.ParsedTrade) []types.AnnotatedTrade {
	now := time.Now()
	out := make([]types.AnnotatedTrade, 0, len(trades))
	for _, t := range trades {
		ts := parseWhen(t.Date, now)
		t.Date = ts.Format(time.RFC3339)
		out = append(out, types.AnnotatedTrade{ParsedTrade: t, Timestamp: ts})
	}
	return out
}

func parseWhen(raw string, fallback time.Time) time.Time {
	if raw == "" {
		return fallback
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts
		}
	}
	if ts, ok := parseEpoch(raw); ok {
		return ts
	}
	return fallback
}

// parseEpoch handles numeric unix timestamps; 13+ digits are milliseconds.
func parseEpoch(raw string) (time.Time, bool) {
	if raw == "" || len(raw) < 9 {
		return time.Time{}, false
	}
	var n int64
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c < '0' || c > '9' {
			return time.Time{}, false
		}
		n = n*10 + int64(c-'0')
	}
	if len(raw) >= 13 {
		return time.UnixMilli(n), true
	}
	return time.Unix(n, 0), true
}
