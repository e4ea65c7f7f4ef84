package geom

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// geom logs nothing but corrections: a setter that dropped or clamped an
// argument instead of storing it. Those records are Debug level. Intersection
// tests run per frame and never log.

// nopHandler is the default handler. It reports every level as disabled.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by geom.
// By default nothing is logged. Passing nil restores the silent default.
//
// Only [slog.LevelDebug] is used, and only when a setter discards or clamps
// an argument (for example Rectangle.SetTo receiving a negative width).
//
// SetLogger is safe for concurrent use.
//
// Example:
//
//	geom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// correctionLogger returns the logger when it accepts Debug records and nil
// otherwise. Callers check for nil before building attributes, so the float
// arguments of a rejected SetTo are not boxed when nobody listens.
func correctionLogger() *slog.Logger {
	l := loggerPtr.Load()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return nil
	}
	return l
}
