package common

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that discards every record. Enabled reports false so
// callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger shared by every engine package.
// By default nothing is logged. Passing nil restores the silent default.
//
// Log levels used by the engine:
//   - [slog.LevelDebug]: rejected pose writes, ignored scroll updates, tween ticks
//   - [slog.LevelInfo]: lifecycle (profile resolved, preview transitions, profiler stats)
//   - [slog.LevelWarn]: degraded behavior (classifier unavailable, recovered frame panics)
//
// Parameters:
//   - l: the logger to install, or nil to disable logging
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current engine logger. Safe for concurrent use.
//
// Returns:
//   - *slog.Logger: the active logger (never nil)
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
