package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPrintControls(t *testing.T) {
	var buf bytes.Buffer
	printControls(&buf)
	out := buf.String()

	for _, want := range []string{"Controls", "W / Up", "Q / Ctrl+C", "Quit", "Board", "@", "#"} {
		if !strings.Contains(out, want) {
			t.Errorf("Controls output missing %q:\n%s", want, out)
		}
	}
}

func TestNewLoggerDiscardsWithoutPath(t *testing.T) {
	logger, closeLog, err := newLogger("")
	if err != nil {
		t.Fatalf("newLogger(\"\") error = %v", err)
	}
	logger.Info("dropped")
	if err := closeLog(); err != nil {
		t.Errorf("closeLog() error = %v", err)
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.log")

	logger, closeLog, err := newLogger(path)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	logger.Debug("food eaten", "score", 3)
	if err := closeLog(); err != nil {
		t.Fatalf("closeLog() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "food eaten") || !strings.Contains(string(data), "score=3") {
		t.Errorf("Log file = %q, expected the debug entry", data)
	}
}

func TestNewLoggerBadPath(t *testing.T) {
	_, _, err := newLogger(filepath.Join(t.TempDir(), "missing", "snake.log"))
	if err == nil {
		t.Error("newLogger() should fail for a missing directory")
	}
}

func TestSeedFlagHidden(t *testing.T) {
	f := rootCmd.PersistentFlags().Lookup("seed")
	if f == nil {
		t.Fatal("seed flag not registered")
	}
	if !f.Hidden {
		t.Error("seed flag should be hidden")
	}
}
