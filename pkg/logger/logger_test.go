package logger

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// swapLogger replaces the package logger with an observer core for the
// duration of one test and returns the recorded sink.
func swapLogger(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	t.Helper()
	original := defaultLogger
	core, recorded := observer.New(level)
	defaultLogger = zap.New(core)
	t.Cleanup(func() { defaultLogger = original })
	return recorded
}

func TestLoggingCapturesMessageAndFields(t *testing.T) {
	recorded := swapLogger(t, zapcore.DebugLevel)

	Debug("debug line", "key", "value")
	Info("info line", "count", 7)
	Warn("warn line")
	Error("error line", "reason", "boom")

	logs := recorded.All()
	if len(logs) != 4 {
		t.Fatalf("expected 4 log entries, got %d", len(logs))
	}

	if logs[0].Level != zapcore.DebugLevel || logs[0].Message != "debug line" {
		t.Errorf("unexpected first entry: %v %q", logs[0].Level, logs[0].Message)
	}
	if len(logs[0].Context) != 1 || logs[0].Context[0].Key != "key" || logs[0].Context[0].String != "value" {
		t.Errorf("unexpected debug context: %v", logs[0].Context)
	}
	if logs[1].Context[0].Integer != 7 {
		t.Errorf("expected count=7, got %d", logs[1].Context[0].Integer)
	}
	if len(logs[2].Context) != 0 {
		t.Errorf("expected bare warn entry, got %v", logs[2].Context)
	}
}

func TestLevelGating(t *testing.T) {
	tests := []struct {
		name      string
		level     zapcore.Level
		logFunc   func(string, ...interface{})
		shouldLog bool
	}{
		{"debug suppressed at info", zapcore.InfoLevel, Debug, false},
		{"info passes at info", zapcore.InfoLevel, Info, true},
		{"info suppressed at warn", zapcore.WarnLevel, Info, false},
		{"warn passes at warn", zapcore.WarnLevel, Warn, true},
		{"error passes at warn", zapcore.WarnLevel, Error, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorded := swapLogger(t, tt.level)
			tt.logFunc("probe")
			if got := len(recorded.All()); tt.shouldLog != (got == 1) {
				t.Errorf("shouldLog=%v but recorded %d entries", tt.shouldLog, got)
			}
		})
	}
}

func TestWithAttachesContext(t *testing.T) {
	recorded := swapLogger(t, zapcore.InfoLevel)

	child := With("component", "memtable").With("table", "main")
	child.Info("attached")

	logs := recorded.All()
	if len(logs) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(logs))
	}

	fields := map[string]string{}
	for _, f := range logs[0].Context {
		if f.Type == zapcore.StringType {
			fields[f.Key] = f.String
		}
	}
	if fields["component"] != "memtable" || fields["table"] != "main" {
		t.Errorf("child fields missing: %v", fields)
	}
}

func TestInitLoggerUnknownLevelFallsBackToInfo(t *testing.T) {
	original := defaultLogger
	defer func() { defaultLogger = original }()

	InitLogger("chatty", "")
	if defaultLogger == nil {
		t.Fatal("logger not rebuilt")
	}
	if !defaultLogger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("info should be enabled after fallback")
	}
	if defaultLogger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug should stay disabled after fallback")
	}
}

func TestInitLoggerWritesFile(t *testing.T) {
	original := defaultLogger
	defer func() { defaultLogger = original }()

	path := filepath.Join(t.TempDir(), "membuf.log")
	InitLogger(DebugLevel, path)
	Info("file sink works", "answer", 42)
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "file sink works") {
		t.Errorf("log file missing message: %s", data)
	}
	if !strings.Contains(string(data), `"answer":42`) {
		t.Errorf("log file missing JSON field: %s", data)
	}
}

func TestConcurrentLogging(t *testing.T) {
	recorded := swapLogger(t, zapcore.InfoLevel)

	const goroutines = 8
	const perGoroutine = 25

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				Info("concurrent", "worker", id, "seq", j)
			}
		}(i)
	}
	wg.Wait()

	if got := len(recorded.All()); got != goroutines*perGoroutine {
		t.Errorf("expected %d entries, got %d", goroutines*perGoroutine, got)
	}
}

func TestDefaultLoggerUsableWithoutInit(t *testing.T) {
	if defaultLogger == nil {
		t.Fatal("default logger should exist after package init")
	}
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("logging panicked: %v", r)
		}
	}()
	Debug("probe")
	Info("probe")
	Warn("probe")
	Error("probe")
}
