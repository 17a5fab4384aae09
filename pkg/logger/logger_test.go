package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

// Init returns the logger by value; callers must bind it to a variable before
// chaining pointer-receiver methods like Fatal.
func TestInitReturnsBindableLogger(t *testing.T) {
	var buf bytes.Buffer
	log := Init(Options{Level: "debug", Output: &buf})

	log.Info().Str("component", "boot").Msg("server starting")

	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatal("expected a log line")
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["message"] != "server starting" || entry["component"] != "boot" {
		t.Fatalf("unexpected log entry: %v", entry)
	}

	// Get hands back the same initialised instance.
	same := Get()
	same.Debug().Msg("second line")
	if strings.Count(buf.String(), "\n") != 2 {
		t.Fatalf("expected 2 log lines, got output: %q", buf.String())
	}
}
