package analytics

import "trading-journal/internal/types"

// A trade with zero PnL is typed as a loss. Breakeven arguably deserves its
// own category, but the journal has always counted it against the streak and
// changing that silently would rewrite users' historical stats.
func classify(pnl float64) StreakType {
	if pnl > 0 {
		return WinStreak
	}
	return LossStreak
}

// detectStreaks runs the two-state streak machine over the ordered sequence:
// a run extends while consecutive trades classify the same, closes on a sign
// change, and the still-open run is flushed at the end. Run lengths always
// sum to the number of input trades.
func detectStreaks(ordered []types.AnnotatedTrade) StreakReport {
	rep := StreakReport{Runs: []Streak{}}
	if len(ordered) == 0 {
		return rep
	}

	cur := Streak{
		Type:   classify(ordered[0].PnlUSD),
		Length: 1,
		Pnl:    ordered[0].PnlUSD,
	}
	for i := 1; i < len(ordered); i++ {
		pnl := ordered[i].PnlUSD
		if classify(pnl) == cur.Type {
			cur.Length++
			cur.Pnl += pnl
			continue
		}
		rep.Runs = append(rep.Runs, cur)
		cur = Streak{Type: classify(pnl), Length: 1, StartIndex: i, Pnl: pnl}
	}
	rep.Runs = append(rep.Runs, cur)
	rep.Current = cur

	var winRuns, lossRuns, winLen, lossLen int
	for _, s := range rep.Runs {
		if s.Type == WinStreak {
			winRuns++
			winLen += s.Length
			if s.Length > rep.MaxWin {
				rep.MaxWin = s.Length
			}
		} else {
			lossRuns++
			lossLen += s.Length
			if s.Length > rep.MaxLoss {
				rep.MaxLoss = s.Length
			}
		}
	}
	if winRuns > 0 {
		rep.AvgWin = float64(winLen) / float64(winRuns)
	}
	if lossRuns > 0 {
		rep.AvgLoss = float64(lossLen) / float64(lossRuns)
	}
	return rep
}
