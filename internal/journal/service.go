package journal

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"trading-journal/internal/analytics"
	"trading-journal/internal/exchange"
	"trading-journal/internal/filter"
	"trading-journal/internal/importlog"
	"trading-journal/internal/logger"
	"trading-journal/internal/normalize"
	"trading-journal/internal/store"
	"trading-journal/internal/types"
)

// Service is the facade presentation code talks to: it owns the imported
// trade set and runs the normalize → filter → aggregate pipeline. Every
// Analyze call works on its own filtered, sorted copy, so concurrent
// recomputations for different filter selections never share accumulator
// state.
type Service struct {
	cfg *store.Config

	mu     sync.RWMutex
	trades []types.AnnotatedTrade
}

// ImportResult summarizes one upload. Dropped rows surface only as a count;
// the wizard stays usable on partially garbled input.
type ImportResult struct {
	ImportID string              `json:"import_id"`
	Exchange string              `json:"exchange"`
	RowsIn   int                 `json:"rows_in"`
	Parsed   int                 `json:"parsed"`
	Dropped  int                 `json:"dropped"`
	Trades   []types.ParsedTrade `json:"trades"`
}

func New(cfg *store.Config) *Service {
	if cfg == nil {
		cfg = store.DefaultConfig()
	}
	return &Service{cfg: cfg}
}

// Exchanges lists the supported export formats for the upload wizard.
func (s *Service) Exchanges() []exchange.Config {
	return exchange.All()
}

// Import normalizes raw rows into canonical trades and adds them to the
// journal. exchangeHint may be empty, in which case the format is detected
// from the header set.
func (s *Service) Import(ctx context.Context, rows []types.RawRow, exchangeHint string) ImportResult {
	ctx, span := logger.StartSpan(ctx, "journal.import")
	defer span.End()

	id := exchangeHint
	if id == "" {
		id = normalize.DetectExchange(rows)
	}
	cfg := exchange.Lookup(id)

	parsed := normalize.Normalize(rows, cfg.ID)
	annotated := normalize.Annotate(parsed)

	s.mu.Lock()
	s.trades = append(s.trades, annotated...)
	s.mu.Unlock()

	res := ImportResult{
		ImportID: uuid.NewString(),
		Exchange: cfg.ID,
		RowsIn:   len(rows),
		Parsed:   len(parsed),
		Dropped:  len(rows) - len(parsed),
		Trades:   parsed,
	}

	logger.Import(ctx, res.ImportID, res.Exchange, res.RowsIn, res.Parsed, res.Dropped)
	if err := importlog.Append(s.cfg.ImportLog.Dir, importlog.Entry{
		ImportID: res.ImportID,
		Exchange: res.Exchange,
		RowsIn:   res.RowsIn,
		Parsed:   res.Parsed,
		Dropped:  res.Dropped,
	}); err != nil {
		logger.ErrorWithErr(ctx, "Failed to append import log entry", err, "import_id", res.ImportID)
	}
	return res
}

// Analyze recomputes the full derived bundle for one filter selection. An
// empty range falls back to the configured default; the window is snapped to
// one of the configured rolling windows (zero or unlisted values use the
// configured default).
func (s *Service) Analyze(ctx context.Context, p filter.Params, window int) analytics.Result {
	ctx, span := logger.StartSpan(ctx, "journal.analyze")
	defer span.End()

	if p.Range == "" && p.Days == 0 {
		p.Range = filter.TimeRange(s.cfg.Filter.DefaultRange)
	}
	window = s.rollingWindow(window)

	snapshot := s.Trades()
	subset := filter.Apply(snapshot, p, time.Now())
	res := analytics.Aggregate(subset, window)

	logger.Debug(ctx, "Analysis recomputed",
		"range", string(p.Range),
		"days", p.Days,
		"symbol", p.Symbol,
		"setup", p.Setup,
		"trades", res.Summary.TotalTrades,
		"window", window,
	)
	return res
}

// Trades returns a copy of the journal's annotated trades in import order.
func (s *Service) Trades() []types.AnnotatedTrade {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.AnnotatedTrade, len(s.trades))
	copy(out, s.trades)
	return out
}

// TagSetup attaches a setup name to the trade at index i (import order).
// Returns false when the index is out of range.
func (s *Service) TagSetup(i int, setup string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.trades) {
		return false
	}
	s.trades[i].Setup = setup
	return true
}

// rollingWindow maps a requested window onto the configured choices, so the
// rolling series always matches one of the selector's options.
func (s *Service) rollingWindow(window int) int {
	if window > 0 {
		for _, w := range s.cfg.Analytics.RollingWindows {
			if w == window {
				return window
			}
		}
	}
	return s.cfg.Analytics.DefaultWindow
}

// CompactImportLog gzips import-log files past the configured retention.
func (s *Service) CompactImportLog() error {
	return importlog.CompressOlder(s.cfg.ImportLog.Dir, s.cfg.ImportLog.RetentionDays)
}
