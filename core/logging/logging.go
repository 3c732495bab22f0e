// Package logging provides per-package zap loggers for AWDL tools.
//
// Log level is selected through environment variables, see EnvPrefix.
// Output goes to stderr, in the encoding named by EnvFormat.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvFormat is the environment variable that selects "console" or "json" output.
const EnvFormat = EnvPrefix + "_FORMAT"

// newEncoder returns a zapcore.Encoder for a format name.
// Unrecognized names select JSON.
func newEncoder(format string) zapcore.Encoder {
	if format == "console" {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(cfg)
	}
	return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
}

var root = zap.New(zapcore.NewCore(newEncoder(os.Getenv(EnvFormat)), zapcore.Lock(os.Stderr), zap.DebugLevel))

// Named creates a named logger that logs at every level.
func Named(pkg string) *zap.Logger {
	return root.Named(pkg)
}

// New creates a named logger filtered by the level of pkg.
// It should appear next to the package doc:
//
//	var logger = logging.New("awdldump")
func New(pkg string) *zap.Logger {
	return Named(pkg).WithOptions(zap.IncreaseLevel(GetLevel(pkg).al))
}
