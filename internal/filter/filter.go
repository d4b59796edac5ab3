package filter

import (
	"strings"
	"time"

	"trading-journal/internal/types"
)

// TimeRange selects the window start for a filter pass.
type TimeRange string

const (
	All   TimeRange = "ALL"
	Week  TimeRange = "WEEK"  // from the most recent Sunday, local midnight
	Month TimeRange = "MONTH" // from the 1st of the current month
	Year  TimeRange = "YEAR"  // from January 1 of the current year
)

// NoSetup is the bucket for trades that were never tagged with a setup.
const NoSetup = "No setup"

// Params describes one filter selection. The time window and the categorical
// predicates intersect; they are not mutually exclusive. Days > 0 overrides
// Range with a trailing N-day window.
type Params struct {
	Range  TimeRange
	Days   int
	Symbol string
	Setup  string
}

// Apply returns the trades passing every predicate, in input order, as a new
// slice. The window boundary instant itself is included. Pure: concurrent
// filter passes over the same trades never share state.
func Apply(trades []types.AnnotatedTrade, p Params, now time.Time) []types.AnnotatedTrade {
	start, bounded := windowStart(p, now)

	out := make([]types.AnnotatedTrade, 0, len(trades))
	for _, t := range trades {
		if bounded && t.Timestamp.Before(start) {
			continue
		}
		if p.Symbol != "" && !strings.EqualFold(t.Symbol, p.Symbol) {
			continue
		}
		if p.Setup != "" && !setupMatches(p.Setup, t.Setup) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func windowStart(p Params, now time.Time) (time.Time, bool) {
	if p.Days > 0 {
		return now.AddDate(0, 0, -p.Days), true
	}
	switch p.Range {
	case Week:
		mid := midnight(now)
		return mid.AddDate(0, 0, -int(now.Weekday())), true
	case Month:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), true
	case Year:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), true
	}
	return time.Time{}, false
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Untagged trades live in the NoSetup bucket.
func setupMatches(want, got string) bool {
	if strings.EqualFold(want, NoSetup) {
		return got == "" || strings.EqualFold(got, NoSetup)
	}
	return strings.EqualFold(want, got)
}
