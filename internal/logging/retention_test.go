package logging_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"sndconvert/internal/config"
	"sndconvert/internal/logging"
)

func writeAged(t *testing.T, path string, age time.Duration) {
	t.Helper()
	if err := os.WriteFile(path, []byte("old\n"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	stamp := time.Now().Add(-age)
	if err := os.Chtimes(path, stamp, stamp); err != nil {
		t.Fatalf("chtimes %s: %v", path, err)
	}
}

func TestCleanupOldLogsRemovesExpiredMatches(t *testing.T) {
	dir := t.TempDir()
	expired := filepath.Join(dir, "sndconvert-20200101T000000.000Z.log")
	recent := filepath.Join(dir, "sndconvert-20990101T000000.000Z.log")
	unrelated := filepath.Join(dir, "notes.txt")
	excluded := filepath.Join(dir, "sndconvert-keep.log")
	writeAged(t, expired, 10*24*time.Hour)
	writeAged(t, recent, time.Hour)
	writeAged(t, unrelated, 10*24*time.Hour)
	writeAged(t, excluded, 10*24*time.Hour)

	logging.CleanupOldLogs(logging.NewNop(), 7, logging.RetentionTarget{
		Dir:     dir,
		Pattern: "sndconvert-*.log",
		Exclude: []string{excluded},
	})

	if _, err := os.Stat(expired); !os.IsNotExist(err) {
		t.Fatalf("expected expired log removed, stat err=%v", err)
	}
	for _, path := range []string{recent, unrelated, excluded} {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("expected %s kept: %v", filepath.Base(path), err)
		}
	}
}

func TestCleanupOldLogsDisabled(t *testing.T) {
	dir := t.TempDir()
	expired := filepath.Join(dir, "sndconvert-old.log")
	writeAged(t, expired, 400*24*time.Hour)

	logging.CleanupOldLogs(nil, 0, logging.RetentionTarget{Dir: dir, Pattern: "sndconvert-*.log"})

	if _, err := os.Stat(expired); err != nil {
		t.Fatalf("expected log kept when retention disabled: %v", err)
	}
}

func TestNewFromConfigRepointsCurrentLog(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()
	cfg.Logging.RetentionDays = 7
	stale := filepath.Join(cfg.Paths.LogDir, "sndconvert-20000101T000000.000Z.log")
	writeAged(t, stale, 30*24*time.Hour)

	first, closeFirst, err := logging.NewFromConfig(&cfg, io.Discard)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	defer closeFirst()
	first.Info("first run")
	time.Sleep(5 * time.Millisecond)
	second, closeSecond, err := logging.NewFromConfig(&cfg, io.Discard)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	defer closeSecond()
	second.Info("second run")

	target, err := os.Readlink(cfg.LogFilePath())
	if err != nil {
		t.Fatalf("expected log pointer symlink: %v", err)
	}
	content := readLog(t, filepath.Join(cfg.Paths.LogDir, target))
	if !strings.Contains(content, "second run") || strings.Contains(content, "first run") {
		t.Fatalf("expected pointer to reference the latest run log, got %q", content)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Fatalf("expected stale run log pruned, stat err=%v", err)
	}
	matches, _ := filepath.Glob(filepath.Join(cfg.Paths.LogDir, "sndconvert-*.log"))
	if len(matches) != 2 {
		t.Fatalf("expected two run logs, got %v", matches)
	}
}
