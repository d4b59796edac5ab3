package importlog

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var mu sync.Mutex

// Entry records one import batch: how many rows came in, how many survived
// normalization and how many were dropped. Individual dropped rows are never
// recorded; only the aggregate count is, by design.
type Entry struct {
	Time     string `json:"time"`
	ImportID string `json:"import_id"`
	Exchange string `json:"exchange"`
	RowsIn   int    `json:"rows_in"`
	Parsed   int    `json:"parsed"`
	Dropped  int    `json:"dropped"`
}

// resolveDir picks the log directory: the configured dir wins, then the
// IMPORT_LOG_DIR env var, then the built-in default.
func resolveDir(dir string) string {
	if dir != "" {
		return dir
	}
	if v := os.Getenv("IMPORT_LOG_DIR"); v != "" {
		return v
	}
	return filepath.Join("logs", "imports")
}

func dailyFilepath(dir string, t time.Time) string {
	d := t.UTC().Format("2006-01-02")
	return filepath.Join(resolveDir(dir), d+".jsonl")
}

// Append writes one entry to the current day's file under dir, creating
// directories as needed. Failures are reported but never block an import.
func Append(dir string, e Entry) error {
	mu.Lock()
	defer mu.Unlock()
	now := time.Now().UTC()
	e.Time = now.Format("2006-01-02 15:04:05")
	p := dailyFilepath(dir, now)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	b, _ := json.Marshal(e)
	_, err = fmt.Fprintln(f, string(b))
	return err
}

// CompressOlder gzips daily files under dir older than retentionDays and
// removes the originals. A retention of zero or less disables compaction.
func CompressOlder(dir string, retentionDays int) error {
	if retentionDays <= 0 {
		return nil
	}
	root := resolveDir(dir)
	return filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(p) != ".jsonl" {
			return nil
		}
		info, er := os.Stat(p)
		if er != nil {
			return nil
		}
		cutoff := time.Now().AddDate(0, 0, -retentionDays)
		if !info.ModTime().Before(cutoff) {
			return nil
		}

		gz := p + ".gz"
		if _, e2 := os.Stat(gz); e2 == nil {
			_ = os.Remove(p)
			return nil
		}

		in, e3 := os.Open(p)
		if e3 != nil {
			return nil
		}
		defer in.Close()

		out, e4 := os.OpenFile(gz, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if e4 != nil {
			return nil
		}
		gw := gzip.NewWriter(out)
		if _, e5 := io.Copy(gw, in); e5 == nil {
			_ = gw.Close()
			_ = out.Close()
			_ = os.Remove(p)
		} else {
			_ = gw.Close()
			_ = out.Close()
		}
		return nil
	})
}
