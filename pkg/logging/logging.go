// Package logging builds the zap logger the stores and runners log through.
// Anomalies in the core (missing ids, storage failures, malformed input) are
// logged here and never surfaced as errors.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap logger writing to stderr with the given level and
// encoding ("console" or "json"). Unparseable levels fall back to warn so a
// bad setting never takes the process down.
func New(level, encoding string) *zap.SugaredLogger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	lvl := zapcore.WarnLevel
	if level != "" {
		if err := lvl.Set(level); err != nil {
			lvl = zapcore.WarnLevel
		}
	}

	var encoder zapcore.Encoder
	switch encoding {
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	default:
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	core := zapcore.NewCore(
		encoder,
		zapcore.AddSync(zapcore.Lock(os.Stderr)),
		lvl,
	)

	return zap.New(core).Sugar()
}

// Default is the logger used by the CLI: console encoding, warn level unless
// CUE_LOG says otherwise.
func Default() *zap.SugaredLogger {
	return New(os.Getenv("CUE_LOG"), "console")
}
