package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew_ParsesLevel(t *testing.T) {
	log, err := New(" DEBUG ", zapcore.WarnLevel)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !log.Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("debug should be enabled")
	}
}

func TestNew_FallbackOnUnknown(t *testing.T) {
	for _, lvl := range []string{"", "loud"} {
		log, err := New(lvl, zapcore.WarnLevel)
		if err != nil {
			t.Fatalf("New(%q): %v", lvl, err)
		}
		if log.Core().Enabled(zapcore.InfoLevel) {
			t.Fatalf("New(%q): info enabled, want warn fallback", lvl)
		}
		if !log.Core().Enabled(zapcore.WarnLevel) {
			t.Fatalf("New(%q): warn disabled", lvl)
		}
	}
}
