package importlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestAppendWritesDailyFile(t *testing.T) {
	dir := t.TempDir()

	err := Append(dir, Entry{ImportID: "abc-123", Exchange: "bybit", RowsIn: 10, Parsed: 8, Dropped: 2})
	if err != nil {
		t.Fatalf("Expected append to succeed, got %v", err)
	}

	p := filepath.Join(dir, time.Now().UTC().Format("2006-01-02")+".jsonl")
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("Expected daily file at %s, got %v", p, err)
	}
	line := string(b)
	if !strings.Contains(line, `"import_id":"abc-123"`) || !strings.Contains(line, `"dropped":2`) {
		t.Errorf("Unexpected entry: %s", line)
	}
}

func TestAppendIsAdditive(t *testing.T) {
	dir := t.TempDir()

	_ = Append(dir, Entry{ImportID: "one"})
	_ = Append(dir, Entry{ImportID: "two"})

	p := filepath.Join(dir, time.Now().UTC().Format("2006-01-02")+".jsonl")
	b, _ := os.ReadFile(p)
	if got := strings.Count(string(b), "\n"); got != 2 {
		t.Errorf("Expected 2 lines, got %d", got)
	}
}

func TestResolveDirPrecedence(t *testing.T) {
	t.Setenv("IMPORT_LOG_DIR", "/from/env")

	if got := resolveDir("/from/config"); got != "/from/config" {
		t.Errorf("Expected configured dir to win, got %s", got)
	}
	if got := resolveDir(""); got != "/from/env" {
		t.Errorf("Expected env fallback, got %s", got)
	}

	t.Setenv("IMPORT_LOG_DIR", "")
	if got := resolveDir(""); got != filepath.Join("logs", "imports") {
		t.Errorf("Expected built-in default, got %s", got)
	}
}

func TestCompressOlderDisabled(t *testing.T) {
	if err := CompressOlder(t.TempDir(), 0); err != nil {
		t.Errorf("Expected zero retention to be a no-op, got %v", err)
	}
}

func TestCompressOlderGzipsStaleFiles(t *testing.T) {
	dir := t.TempDir()

	p := filepath.Join(dir, "2020-01-01.jsonl")
	if err := os.WriteFile(p, []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	old := time.Now().AddDate(0, 0, -90)
	if err := os.Chtimes(p, old, old); err != nil {
		t.Fatal(err)
	}

	if err := CompressOlder(dir, 30); err != nil {
		t.Fatalf("Expected compaction to succeed, got %v", err)
	}
	if _, err := os.Stat(p + ".gz"); err != nil {
		t.Errorf("Expected gzip file, got %v", err)
	}
	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Error("Expected original file to be removed")
	}
}
