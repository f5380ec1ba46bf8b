package core

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogConfig{Level: "warn"})

	logger.LogDebug("debug %d", 1)
	logger.LogInfo("info %d", 2)
	logger.LogWarn("warn %d", 3)
	logger.LogError("error %d", 4)

	out := buf.String()
	for _, dropped := range []string{"debug 1", "info 2"} {
		if strings.Contains(out, dropped) {
			t.Errorf("%q logged below the warn level", dropped)
		}
	}
	for _, kept := range []string{"warn 3", "error 4", "trimesh"} {
		if !strings.Contains(out, kept) {
			t.Errorf("%q missing from %q", kept, out)
		}
	}
}

func TestLoggerUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogConfig{Level: "chatty", Prefix: "test"})
	logger.LogDebug("hidden")
	logger.LogInfo("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("output = %q", buf.String())
	}
}

func TestNilLogger(t *testing.T) {
	var logger *Logger
	logger.LogInfo("dropped")
	logger.LogError("dropped")
	if logger.WithPrefix("x") != nil {
		t.Fatal("WithPrefix on nil logger returned a logger")
	}
}
