package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
		wantErr   bool
	}{
		{"", false, true, false},
		{"debug", true, true, false},
		{"INFO", false, true, false},
		{"warn", false, false, false},
		{"chatty", false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(&buf, tt.level)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New(%q) error = %v, wantErr %v", tt.level, err, tt.wantErr)
			}
			if err != nil {
				return
			}

			logger.Debug("debug line")
			logger.Info("info line")
			out := buf.String()

			if got := strings.Contains(out, "debug line"); got != tt.wantDebug {
				t.Errorf("debug logged = %v, want %v", got, tt.wantDebug)
			}
			if got := strings.Contains(out, "info line"); got != tt.wantInfo {
				t.Errorf("info logged = %v, want %v", got, tt.wantInfo)
			}
		})
	}
}

func TestNewPrefix(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("hello", "score", 4)

	out := buf.String()
	if !strings.Contains(out, Prefix) {
		t.Errorf("log line %q has no prefix %q", out, Prefix)
	}
	if !strings.Contains(out, "score=4") {
		t.Errorf("log line %q lost its key/value pair", out)
	}
}

func TestOpenAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "t2048.log")

	logger, closeLog, err := Open(path, "info")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	logger.Info("first")
	if err := closeLog(); err != nil {
		t.Fatalf("close: %v", err)
	}

	logger, closeLog, err = Open(path, "info")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	logger.Info("second")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "first") || !strings.Contains(string(data), "second") {
		t.Errorf("log file = %q, want both lines", data)
	}
}

func TestOpenWithoutPath(t *testing.T) {
	logger, closeLog, err := Open("", "debug")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if logger == nil || closeLog == nil {
		t.Fatal("Open should return a usable logger and close func")
	}
	logger.Info("dropped")
	if err := closeLog(); err != nil {
		t.Errorf("close: %v", err)
	}

	if _, _, err := Open("", "chatty"); err == nil {
		t.Error("Open should reject an unknown level even without a file")
	}
}
