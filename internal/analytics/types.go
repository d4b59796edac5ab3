package analytics

// EquityPoint is the running PnL sum as of the last trade on a calendar day.
type EquityPoint struct {
	Date   string  `json:"date"`
	Equity float64 `json:"equity"`
}

// DrawdownPoint is running equity minus its running peak, always <= 0.
type DrawdownPoint struct {
	Date     string  `json:"date"`
	Drawdown float64 `json:"drawdown"`
}

// DailyPnl sums realized PnL per calendar day. Unlike the equity series this
// bucket is additive: same-day trades accumulate instead of overwriting.
type DailyPnl struct {
	Date   string  `json:"date"`
	Pnl    float64 `json:"pnl"`
	Trades int     `json:"trades"`
}

type StreakType string

const (
	WinStreak  StreakType = "win"
	LossStreak StreakType = "loss"
)

// Streak is a maximal run of consecutive same-outcome trades.
type Streak struct {
	Type       StreakType `json:"type"`
	Length     int        `json:"length"`
	StartIndex int        `json:"start_index"`
	Pnl        float64    `json:"pnl"`
}

// StreakReport lists every run in order plus the rollups the dashboard
// shows. Current is the still-open run at the end of the sequence (also the
// last element of Runs).
type StreakReport struct {
	Runs    []Streak `json:"runs"`
	Current Streak   `json:"current"`
	MaxWin  int      `json:"max_win"`
	MaxLoss int      `json:"max_loss"`
	AvgWin  float64  `json:"avg_win"`
	AvgLoss float64  `json:"avg_loss"`
}

// RollingPoint pairs the trailing-window win rate at a trade index with the
// cumulative-from-start rate, both in percent, for comparison display.
type RollingPoint struct {
	Date       string  `json:"date"`
	Rolling    float64 `json:"rolling"`
	Cumulative float64 `json:"cumulative"`
}

// Summary is the scalar rollup over the aggregated subset. ProfitFactor is
// +Inf when there are wins and no losing PnL, and 0 when there are no wins.
type Summary struct {
	TotalTrades  int     `json:"total_trades"`
	TotalPnl     float64 `json:"total_pnl"`
	WinRate      float64 `json:"win_rate"`
	AvgPnl       float64 `json:"avg_pnl"`
	AvgWin       float64 `json:"avg_win"`
	AvgLoss      float64 `json:"avg_loss"`
	MaxDrawdown  float64 `json:"max_drawdown"`
	ProfitFactor float64 `json:"profit_factor"`
}

// Result bundles everything one aggregation pass produces.
type Result struct {
	Summary  Summary         `json:"summary"`
	Equity   []EquityPoint   `json:"equity"`
	Drawdown []DrawdownPoint `json:"drawdown"`
	Daily    []DailyPnl      `json:"daily"`
	Streaks  StreakReport    `json:"streaks"`
	Rolling  []RollingPoint  `json:"rolling"`
}
