package logging

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "menu.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})
	return path
}

func TestConfigureCreatesDirectory(t *testing.T) {
	path := useTempLog(t)
	if Path() != path {
		t.Fatalf("expected path %q, got %q", path, Path())
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Fatalf("expected log directory to exist: %v", err)
	}
}

func TestConfigureEmptyFallsBackToDefault(t *testing.T) {
	useTempLog(t)
	Configure("   ")
	if Path() != defaultLogFile {
		t.Fatalf("expected default path, got %q", Path())
	}
}

func TestTraceDisabledWritesNothing(t *testing.T) {
	path := useTempLog(t)
	Trace("menu.commit", map[string]interface{}{"id": "1"})
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file while tracing disabled, stat err=%v", err)
	}
}

func TestTraceWritesJSONLines(t *testing.T) {
	path := useTempLog(t)
	SetTraceEnabled(true)
	Trace("tab.select", map[string]interface{}{"from": "view", "to": "add"})
	Trace("menu.commit", map[string]interface{}{"id": "1"})

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()

	var events []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry struct {
			Event   string                 `json:"event"`
			Payload map[string]interface{} `json:"payload"`
		}
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("decode line %q: %v", scanner.Text(), err)
		}
		events = append(events, entry.Event)
	}
	if got := strings.Join(events, ","); got != "tab.select,menu.commit" {
		t.Fatalf("unexpected events %q", got)
	}
}

func TestErrorAppendsMessage(t *testing.T) {
	path := useTempLog(t)
	Error(nil)
	Error(errors.New("boom"))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "boom") {
		t.Fatalf("expected error text in log, got %q", string(data))
	}
}
