package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiscardBeforeSetup(t *testing.T) {
	if Path() != "" {
		t.Fatalf("expected no log path before setup, got %q", Path())
	}
	L().Info("dropped")
}

func TestSetupWritesJSON(t *testing.T) {
	dir := t.TempDir()
	cleanup, err := Setup(Config{DataDir: dir, Debug: true})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	L().Debug("run.saved", "view", "zeta")
	want := filepath.Join(dir, "logs", "zetalab.log")
	if Path() != want {
		t.Errorf("path = %q, want %q", Path(), want)
	}
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if Path() != "" {
		t.Errorf("path not reset after cleanup")
	}

	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 records, got %d", len(lines))
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &rec); err != nil {
		t.Fatalf("record is not JSON: %v", err)
	}
	if rec["msg"] != "run.saved" || rec["view"] != "zeta" {
		t.Errorf("unexpected record %v", rec)
	}
	if _, ok := rec["source"]; !ok {
		t.Errorf("debug records should carry source")
	}
}
