package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2026, 1, 2, 9, 4, 5, 0, time.UTC)
}

func TestLogLevelFiltering(t *testing.T) {
	tests := []struct {
		name         string
		logLevel     string
		messageLevel string
		shouldAppear bool
	}{
		{name: "trace sees debug", logLevel: "trace", messageLevel: "debug", shouldAppear: true},
		{name: "debug sees debug", logLevel: "debug", messageLevel: "debug", shouldAppear: true},
		{name: "debug sees warn", logLevel: "debug", messageLevel: "warn", shouldAppear: true},
		{name: "info blocks debug", logLevel: "info", messageLevel: "debug", shouldAppear: false},
		{name: "info sees warn", logLevel: "info", messageLevel: "warn", shouldAppear: true},
		{name: "warn sees warn", logLevel: "warn", messageLevel: "warn", shouldAppear: true},
		{name: "error blocks warn", logLevel: "error", messageLevel: "warn", shouldAppear: false},
		{name: "invalid level defaults to info", logLevel: "loud", messageLevel: "debug", shouldAppear: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewConsoleLogger(buf, tt.logLevel)

			switch tt.messageLevel {
			case "debug":
				logger.LogDebug("msg")
			case "warn":
				logger.LogWarn("msg")
			}

			if got := strings.Contains(buf.String(), "msg"); got != tt.shouldAppear {
				t.Errorf("message appeared = %v, want %v (output %q)", got, tt.shouldAppear, buf.String())
			}
		})
	}
}

func TestLogFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "debug")
	logger.now = fixedClock

	logger.LogWarn("skipping b.md: permission denied")
	logger.Debugf("scanned %d files", 3)

	want := "[09:04:05] [WARN] skipping b.md: permission denied\n" +
		"[09:04:05] [DEBUG] scanned 3 files\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestNilWriter(t *testing.T) {
	logger := NewConsoleLogger(nil, "trace")
	logger.LogWarn("dropped")
}

func TestNormalizeLevel(t *testing.T) {
	tests := map[string]string{
		"DEBUG":  "debug",
		" warn ": "warn",
		"":       "info",
		"nope":   "info",
	}
	for in, want := range tests {
		if got := NormalizeLevel(in); got != want {
			t.Errorf("NormalizeLevel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestConcurrentLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "info")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.LogWarn("line")
		}()
	}
	wg.Wait()

	if got := strings.Count(buf.String(), "\n"); got != 20 {
		t.Errorf("expected 20 lines, got %d", got)
	}
}
