// Package cliutil holds the small amount of CLI-only plumbing that the core
// planner package deliberately stays free of: structured logging and the
// adapter that turns planner diagnostics into log lines.
package cliutil

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gitrdm/gostrips/pkg/planner"
)

// NewLogger builds the zap logger the CLI commands share. verbose lowers the
// level to Debug, matching codenerd's root-command verbose flag.
func NewLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// ErrorSink adapts the engine's ErrorSink callback to structured log lines.
// Typing violations are logged at Warn since they silently drop groundings;
// everything else is Debug-level progress detail.
func ErrorSink(logger *zap.Logger) planner.ErrorSink {
	return func(err *planner.PlannerError) {
		fields := []zap.Field{
			zap.String("kind", err.Kind.String()),
			zap.String("message", err.Message),
		}
		if err.Cause != nil {
			fields = append(fields, zap.Error(err.Cause))
		}
		if err.Kind == planner.TypingViolation {
			logger.Warn("planner diagnostic", fields...)
			return
		}
		logger.Debug("planner diagnostic", fields...)
	}
}
