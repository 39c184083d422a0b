package logging_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ridersettings/internal/config"
	"ridersettings/internal/logging"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	return string(content)
}

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "info"
	cfg.Logging.File = filepath.Join(t.TempDir(), "logs", "ridersettings.log")

	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("saved solution name", logging.String("solution_name", "Game"))

	content := readLog(t, cfg.Logging.File)
	if !strings.Contains(content, "saved solution name") || !strings.Contains(content, "solution_name=Game") {
		t.Fatalf("unexpected log content %q", content)
	}
}

func TestConsoleLoggerFormatsComponentAndQuotes(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console.log")

	logger, err := logging.New(logging.Options{
		Format:      "console",
		Level:       "info",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.NewComponentLogger(logger, "projectsettings").Info("message without caller",
		logging.String("path", "/tmp/My Game/Rider.json"),
		logging.Bool("exists", false))

	content := readLog(t, logPath)
	if !strings.Contains(content, " INFO projectsettings: message without caller") {
		t.Fatalf("expected component prefix, got %q", content)
	}
	if !strings.Contains(content, `path="/tmp/My Game/Rider.json"`) {
		t.Fatalf("expected quoted path, got %q", content)
	}
	if strings.Contains(content, ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", content)
	}
}

func TestLevelFiltering(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "warn.log")

	logger, err := logging.New(logging.Options{Level: "warn", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("visible")

	content := readLog(t, logPath)
	if strings.Contains(content, "hidden") {
		t.Fatalf("info line should be filtered, got %q", content)
	}
	if !strings.Contains(content, "WARN visible") {
		t.Fatalf("expected warn line, got %q", content)
	}
}

func TestJSONLoggerCarriesRunID(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "json.log")

	logger, err := logging.New(logging.Options{Format: "json", Level: "info", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx := logging.WithRunID(context.Background(), "run-123")
	logging.WithContext(ctx, logger).Info("hello")

	var entry map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(readLog(t, logPath))), &entry); err != nil {
		t.Fatalf("decode json log: %v", err)
	}
	if entry[logging.FieldRunID] != "run-123" {
		t.Fatalf("expected run_id, got %v", entry)
	}
	if entry["level"] != "info" {
		t.Fatalf("expected lowercase level, got %v", entry["level"])
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", entry)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWarnWithContextInjectsDefaults(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "warn.log")
	logger, err := logging.New(logging.Options{Level: "warn", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.WarnWithContext(logger, "settings unreadable", "parse_failed",
		logging.Error(errors.New("boom")),
		logging.String(logging.FieldImpact, "default name used"))

	content := readLog(t, logPath)
	for _, want := range []string{"event_type=parse_failed", "error_hint=", `impact="default name used"`, "error=boom"} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in %q", want, content)
		}
	}
}

func TestRunIDFromContext(t *testing.T) {
	if _, ok := logging.RunIDFromContext(context.Background()); ok {
		t.Fatal("expected no run id on empty context")
	}
	ctx := logging.WithRunID(context.Background(), "abc")
	if id, ok := logging.RunIDFromContext(ctx); !ok || id != "abc" {
		t.Fatalf("unexpected run id %q (%v)", id, ok)
	}
	if fields := logging.ContextFields(ctx); len(fields) != 1 || fields[0].Key != logging.FieldRunID {
		t.Fatalf("unexpected context fields %v", fields)
	}
}

func TestNopLogger(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(context.Background(), 12) {
		t.Fatal("nop logger should not be enabled")
	}
	logging.WarnWithContext(nil, "ignored", "ignored")
}
