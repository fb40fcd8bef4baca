package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("level parsed", func(t *testing.T) {
		log, err := New(Config{Level: " DEBUG ", Format: "console", Development: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !log.Core().Enabled(zapcore.DebugLevel) {
			t.Fatalf("expected debug level enabled")
		}
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		log, err := New(Config{Level: "chatty", Service: "house-calculator"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if log.Core().Enabled(zapcore.DebugLevel) || !log.Core().Enabled(zapcore.InfoLevel) {
			t.Fatalf("expected info level")
		}
	})

	if NewDefault() == nil {
		t.Fatalf("expected logger")
	}
}
