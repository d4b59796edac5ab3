package analytics

import (
	"math"
	"sort"

	"trading-journal/internal/types"
)

// DefaultRollingWindow is the trailing-window size used when the caller
// passes none. Typical selections are 10/20/50/100.
const DefaultRollingWindow = 20

// Aggregate derives every dashboard series and the summary scalars from a
// trade subset in a single forward pass. The input is stable-sorted by
// timestamp on a private copy first: equity, drawdown and streaks are
// order-dependent, and trusting caller order after a filter pass produces
// nondeterministic curves. Pure function: same input, bit-identical output,
// no shared accumulator state across concurrent calls.
//
// Empty input yields a zeroed summary and empty series; nothing here panics
// or divides by zero.
func Aggregate(trades []types.AnnotatedTrade, window int) Result {
	if window <= 0 {
		window = DefaultRollingWindow
	}

	ordered := make([]types.AnnotatedTrade, len(trades))
	copy(ordered, trades)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})

	res := Result{
		Equity:   []EquityPoint{},
		Drawdown: []DrawdownPoint{},
		Daily:    []DailyPnl{},
		Streaks:  StreakReport{Runs: []Streak{}},
		Rolling:  make([]RollingPoint, 0, len(ordered)),
	}
	if len(ordered) == 0 {
		return res
	}

	var (
		equity, peak, maxDD float64
		sumPnl              float64
		wins, losses        int
		sumWin, sumLoss     float64

		outcomes = make([]bool, window) // ring buffer of trailing outcomes
		rollWins int
		cumWins  int
	)

	for i, t := range ordered {
		pnl := t.PnlUSD

		equity += pnl
		sumPnl += pnl
		if equity > peak {
			peak = equity
		}
		dd := equity - peak
		if dd < maxDD {
			maxDD = dd
		}

		// Sorted input keeps calendar days contiguous. Equity and drawdown
		// are cumulative quantities, so a day's point is the snapshot as of
		// the last trade that day; daily PnL is additive and sums instead.
		day := t.Timestamp.Format("2006-01-02")
		if n := len(res.Equity); n > 0 && res.Equity[n-1].Date == day {
			res.Equity[n-1].Equity = equity
			res.Drawdown[n-1].Drawdown = dd
			res.Daily[n-1].Pnl += pnl
			res.Daily[n-1].Trades++
		} else {
			res.Equity = append(res.Equity, EquityPoint{Date: day, Equity: equity})
			res.Drawdown = append(res.Drawdown, DrawdownPoint{Date: day, Drawdown: dd})
			res.Daily = append(res.Daily, DailyPnl{Date: day, Pnl: pnl, Trades: 1})
		}

		// Breakeven counts as a loss, here and in the streak machine.
		won := pnl > 0
		if won {
			wins++
			sumWin += pnl
			cumWins++
		} else {
			losses++
			sumLoss += pnl
		}

		// O(n) sliding window: evict the outcome leaving the window, admit
		// the new one, never re-slice.
		slot := i % window
		if i >= window && outcomes[slot] {
			rollWins--
		}
		outcomes[slot] = won
		if won {
			rollWins++
		}
		span := i + 1
		if span > window {
			span = window
		}
		res.Rolling = append(res.Rolling, RollingPoint{
			Date:       day,
			Rolling:    float64(rollWins) / float64(span) * 100,
			Cumulative: float64(cumWins) / float64(i+1) * 100,
		})
	}

	res.Streaks = detectStreaks(ordered)
	res.Summary = summarize(len(ordered), sumPnl, maxDD, wins, losses, sumWin, sumLoss)
	return res
}

func summarize(total int, sumPnl, maxDD float64, wins, losses int, sumWin, sumLoss float64) Summary {
	s := Summary{
		TotalTrades: total,
		TotalPnl:    sumPnl,
		MaxDrawdown: maxDD,
	}
	if total == 0 {
		return s
	}

	s.WinRate = float64(wins) / float64(total) * 100
	s.AvgPnl = sumPnl / float64(total)
	if wins > 0 {
		s.AvgWin = sumWin / float64(wins)
	}
	if losses > 0 {
		s.AvgLoss = math.Abs(sumLoss) / float64(losses)
	}

	switch {
	case s.AvgLoss > 0:
		s.ProfitFactor = s.AvgWin / s.AvgLoss
	case wins > 0:
		s.ProfitFactor = math.Inf(1)
	default:
		s.ProfitFactor = 0
	}
	return s
}
