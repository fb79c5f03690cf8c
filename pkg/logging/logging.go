// Package logging builds the zap logger shared by the CLI and the stores.
package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a JSON logger at level. Unknown or empty levels fall back to
// fallback. Output goes to stderr so it never mixes with command output.
func New(level string, fallback zapcore.Level) (*zap.Logger, error) {
	lvl := fallback
	// zapcore maps "" to info, so empty has to be caught here.
	if s := strings.ToLower(strings.TrimSpace(level)); s != "" {
		if err := lvl.Set(s); err != nil {
			lvl = fallback
		}
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "json"
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
