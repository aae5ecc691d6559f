package logging

import (
	"bytes"
	"strings"
	"testing"
)

func newBufferLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := New(Config{Level: level, Output: &buf, Prefix: "test"})
	return logger, &buf
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn)

	logger.Debug("not shown")
	logger.Info("not shown")
	logger.Warn("shown warn")
	logger.Error("shown error")

	out := buf.String()
	if strings.Contains(out, "not shown") {
		t.Errorf("output contains filtered messages: %q", out)
	}
	if !strings.Contains(out, "shown warn") || !strings.Contains(out, "shown error") {
		t.Errorf("output missing expected messages: %q", out)
	}
}

func TestFormatArgs(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)

	logger.Info("value is %d", 42)

	if !strings.Contains(buf.String(), "value is 42") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestFieldsAreSortedAndInherited(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)

	logger.WithComponent("registers").WithField("adapter", "memory").Error("boom")

	out := buf.String()
	if !strings.Contains(out, "{adapter=memory, component=registers}") {
		t.Errorf("fields missing or unsorted: %q", out)
	}
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)

	_ = logger.WithField("child", "only")
	logger.Info("parent message")

	if strings.Contains(buf.String(), "child=only") {
		t.Errorf("parent logger inherited child field: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"garbage", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestNullLoggerDiscards(t *testing.T) {
	// Must not panic despite having no output writer.
	NullLogger.Error("discarded %s", "message")
}
