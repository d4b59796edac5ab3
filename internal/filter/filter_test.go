package filter

import (
	"testing"
	"time"

	"trading-journal/internal/types"
)

func trade(ts time.Time, symbol, setup string) types.AnnotatedTrade {
	return types.AnnotatedTrade{
		ParsedTrade: types.ParsedTrade{Symbol: symbol, Side: types.Long},
		Timestamp:   ts,
		Setup:       setup,
	}
}

// Wednesday 2024-05-15 12:00 UTC; the week started Sunday 2024-05-12 00:00.
var now = time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

func TestWeekStartsAtMostRecentSunday(t *testing.T) {
	weekStart := time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC)
	trades := []types.AnnotatedTrade{
		trade(weekStart.Add(-time.Minute), "BTC", ""), // Saturday night: out
		trade(weekStart, "BTC", ""),                   // boundary instant: in
		trade(now.Add(-time.Hour), "BTC", ""),         // mid-week: in
	}

	out := Apply(trades, Params{Range: Week}, now)
	if len(out) != 2 {
		t.Fatalf("Expected 2 trades inside the week, got %d", len(out))
	}
	if !out[0].Timestamp.Equal(weekStart) {
		t.Errorf("Expected the boundary trade to be included, got %v", out[0].Timestamp)
	}
}

func TestMonthAndYearWindows(t *testing.T) {
	trades := []types.AnnotatedTrade{
		trade(time.Date(2024, 4, 30, 23, 59, 0, 0, time.UTC), "BTC", ""),
		trade(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), "BTC", ""),
		trade(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), "BTC", ""),
		trade(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "BTC", ""),
	}

	month := Apply(trades, Params{Range: Month}, now)
	if len(month) != 1 {
		t.Fatalf("Expected 1 trade this month, got %d", len(month))
	}

	year := Apply(trades, Params{Range: Year}, now)
	if len(year) != 3 {
		t.Fatalf("Expected 3 trades this year, got %d", len(year))
	}
}

func TestCustomDayWindowOverridesRange(t *testing.T) {
	trades := []types.AnnotatedTrade{
		trade(now.AddDate(0, 0, -10), "BTC", ""),
		trade(now.AddDate(0, 0, -2), "BTC", ""),
	}
	out := Apply(trades, Params{Range: All, Days: 7}, now)
	if len(out) != 1 {
		t.Fatalf("Expected trailing 7-day window to keep 1 trade, got %d", len(out))
	}
}

func TestAllRangeKeepsEverything(t *testing.T) {
	trades := []types.AnnotatedTrade{
		trade(time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC), "BTC", ""),
		trade(now, "ETH", ""),
	}
	out := Apply(trades, Params{Range: All}, now)
	if len(out) != 2 {
		t.Fatalf("Expected all trades, got %d", len(out))
	}
}

func TestSymbolFilterIntersectsWindow(t *testing.T) {
	trades := []types.AnnotatedTrade{
		trade(now.Add(-time.Hour), "BTC", ""),
		trade(now.Add(-time.Hour), "ETH", ""),
		trade(now.AddDate(-1, 0, 0), "BTC", ""),
	}
	out := Apply(trades, Params{Range: Year, Symbol: "btc"}, now)
	if len(out) != 1 {
		t.Fatalf("Expected 1 BTC trade this year, got %d", len(out))
	}
	if out[0].Symbol != "BTC" {
		t.Errorf("Expected BTC, got %s", out[0].Symbol)
	}
}

func TestSetupFilterUsesNoSetupBucket(t *testing.T) {
	trades := []types.AnnotatedTrade{
		trade(now, "BTC", "Breakout"),
		trade(now, "BTC", ""),
		trade(now, "BTC", "No setup"),
	}

	untagged := Apply(trades, Params{Range: All, Setup: NoSetup}, now)
	if len(untagged) != 2 {
		t.Fatalf("Expected 2 trades in the No setup bucket, got %d", len(untagged))
	}

	breakout := Apply(trades, Params{Range: All, Setup: "Breakout"}, now)
	if len(breakout) != 1 {
		t.Fatalf("Expected 1 Breakout trade, got %d", len(breakout))
	}
}

func TestApplyReturnsNewSlice(t *testing.T) {
	trades := []types.AnnotatedTrade{trade(now, "BTC", "")}
	out := Apply(trades, Params{Range: All}, now)
	out[0].Symbol = "MUTATED"
	if trades[0].Symbol != "BTC" {
		t.Error("Apply must not alias the input slice")
	}
}
