package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewWritesJSONToSink(t *testing.T) {
	var buf bytes.Buffer
	logger := New(WithSink(zapcore.AddSync(&buf)), WithFields(zap.String("component", "test")))

	logger.Info("table generated", zap.Int("size", 4096))
	if err := logger.Sync(); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "table generated" {
		t.Fatalf("msg = %v", entry["msg"])
	}
	if entry["size"] != float64(4096) {
		t.Fatalf("size = %v", entry["size"])
	}
	if entry["component"] != "test" {
		t.Fatalf("component = %v", entry["component"])
	}
	if entry["level"] != "info" {
		t.Fatalf("level = %v", entry["level"])
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(WithSink(zapcore.AddSync(&buf)), WithLevel(zapcore.WarnLevel))

	logger.Info("hidden")
	logger.Warn("shown")
	_ = logger.Sync()

	if bytes.Contains(buf.Bytes(), []byte("hidden")) {
		t.Fatal("info entry written at warn level")
	}
	if !bytes.Contains(buf.Bytes(), []byte("shown")) {
		t.Fatal("warn entry missing")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{" INFO ", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Fatalf("ParseLevel(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
