package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelInfo)

	if logger == nil {
		t.Fatal("New returned nil")
	}

	logger.Info("test message", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("Output should contain message: %s", output)
	}
	if !strings.Contains(output, "key=value") {
		t.Errorf("Output should contain key=value: %s", output)
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSON(&buf, LevelInfo)

	logger.Info("test message", "key", "value")

	output := buf.String()
	if !strings.Contains(output, `"msg":"test message"`) {
		t.Errorf("JSON output should contain msg: %s", output)
	}
	if !strings.Contains(output, `"key":"value"`) {
		t.Errorf("JSON output should contain key: %s", output)
	}
}

func TestNewNop(t *testing.T) {
	logger := NewNop()
	logger.Info("this should be discarded")
	logger.Error("this too")
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelInfo)

	childLogger := logger.With("component", "test")
	childLogger.Info("message")

	output := buf.String()
	if !strings.Contains(output, "component=test") {
		t.Errorf("Output should contain component=test: %s", output)
	}
}

func TestLogger_WithPath(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelInfo)

	pathLogger := logger.WithPath("packs/foo/a.rb")
	pathLogger.Info("resolving")

	output := buf.String()
	if !strings.Contains(output, "path=packs/foo/a.rb") {
		t.Errorf("Output should contain path attribute: %s", output)
	}
}

func TestLogger_WithTeam(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelInfo)

	teamLogger := logger.WithTeam("payroll")
	teamLogger.Info("matched")

	output := buf.String()
	if !strings.Contains(output, "team=payroll") {
		t.Errorf("Output should contain team=payroll: %s", output)
	}
}

func TestLogger_WithOperation(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelInfo)

	opLogger := logger.WithOperation("scan")
	opLogger.Info("started")

	output := buf.String()
	if !strings.Contains(output, "op=scan") {
		t.Errorf("Output should contain op=scan: %s", output)
	}
}

func TestLogger_WithError(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelInfo)

	testErr := errors.New("test error")
	errLogger := logger.WithError(testErr)
	errLogger.Info("message with error")

	output := buf.String()
	if !strings.Contains(output, "error") {
		t.Errorf("Output should contain error attribute: %s", output)
	}

	buf.Reset()
	sameLogger := logger.WithError(nil)
	if sameLogger != logger {
		t.Error("WithError(nil) should return the same logger")
	}
}

func TestLogger_WithDuration(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelInfo)

	durLogger := logger.WithDuration(100 * time.Millisecond)
	durLogger.Info("completed")

	output := buf.String()
	if !strings.Contains(output, "duration_ms=100") {
		t.Errorf("Output should contain duration_ms=100: %s", output)
	}
}

func TestLogLevels(t *testing.T) {
	t.Run("Debug not shown at Info level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, LevelInfo)
		logger.Debug("debug message")
		if strings.Contains(buf.String(), "debug message") {
			t.Error("Debug should not be shown at Info level")
		}
	})

	t.Run("Debug shown at Debug level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, LevelDebug)
		logger.Debug("debug message")
		if !strings.Contains(buf.String(), "debug message") {
			t.Error("Debug should be shown at Debug level")
		}
	})

	t.Run("Error shown at all levels", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, LevelError)
		logger.Error("error message")
		if !strings.Contains(buf.String(), "error message") {
			t.Error("Error should always be shown")
		}
	})
}

func TestPackageLevelFunctions(t *testing.T) {
	var buf bytes.Buffer
	SetDefault(New(&buf, LevelInfo))

	Info("package level info")
	if !strings.Contains(buf.String(), "package level info") {
		t.Error("Package level Info should work")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"INFO", LevelInfo},
		{"warn", LevelWarn},
		{"WARN", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"ERROR", LevelError},
		{"unknown", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLevel(tt.input)
			if got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestShortPath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/Users/test/go/src/codeowners/pkg/core/logging/logging.go", "logging/logging.go"},
		{"logging/logging.go", "logging/logging.go"},
		{"logging.go", "logging.go"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := shortPath(tt.input)
			if got != tt.expected {
				t.Errorf("shortPath(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	logger := Default()
	if logger == nil {
		t.Error("Default() should not return nil")
	}
}

func TestChainedWith(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelInfo)

	logger.WithTeam("payroll").
		WithPath("packs/foo/a.rb").
		WithOperation("resolve").
		Info("starting")

	output := buf.String()
	if !strings.Contains(output, "team=payroll") {
		t.Error("Should contain team")
	}
	if !strings.Contains(output, "path=packs/foo/a.rb") {
		t.Error("Should contain path")
	}
	if !strings.Contains(output, "op=resolve") {
		t.Error("Should contain operation")
	}
}
