package levelmesh

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with pipeline runs.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for levelmesh and its sub-packages.
// By default, levelmesh produces no log output.
// Pass nil to restore the default silent behavior.
//
// Log levels used by levelmesh:
//   - [slog.LevelDebug]: skipped degenerate geometry, per-record mesh sizes
//   - [slog.LevelInfo]: pipeline summaries
//   - [slog.LevelWarn]: color groups skipped because tessellation failed
//
// Example:
//
//	levelmesh.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by levelmesh.
// Sub-packages (tess/) call this to share the same logger configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
