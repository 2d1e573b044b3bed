// Package logger builds the bullets loggers used by create-release.
//
// The level comes from the --log-level flag; GitHub Actions step debugging
// (RUNNER_DEBUG=1) raises the default level to debug.
//
// Usage:
//
//	log := logger.NewLogger(logger.ResolveLevel(flagLevel, flagChanged, os.Getenv))
//	log.Debug("Resolving inputs")
//
//	silentLog := logger.NoLogger() // Suppresses all output
package logger

import (
	"os"

	"github.com/sgaunet/bullets"
)

// Log level names accepted on the command line.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"

	runnerDebugEnv = "RUNNER_DEBUG"
)

// NewLogger creates a new logger that writes to stdout at the specified level.
// Unknown levels fall back to info.
func NewLogger(logLevel string) *bullets.Logger {
	logger := bullets.New(os.Stdout)
	logger.SetLevel(parseLevel(logLevel))
	return logger
}

// NoLogger creates a logger that suppresses all output by setting the level to Fatal.
func NoLogger() *bullets.Logger {
	logger := bullets.New(os.Stdout)
	logger.SetLevel(bullets.FatalLevel)
	return logger
}

// ResolveLevel picks the effective level name. An explicitly set flag wins;
// otherwise RUNNER_DEBUG=1 selects debug and anything else keeps flagLevel.
func ResolveLevel(flagLevel string, flagChanged bool, getenv func(string) string) string {
	if flagChanged {
		return flagLevel
	}
	if getenv(runnerDebugEnv) == "1" {
		return LevelDebug
	}
	return flagLevel
}

func parseLevel(logLevel string) bullets.Level {
	switch logLevel {
	case LevelDebug:
		return bullets.DebugLevel
	case LevelWarn:
		return bullets.WarnLevel
	case LevelError:
		return bullets.ErrorLevel
	default:
		return bullets.InfoLevel
	}
}
