package clientdata

import charmlog "github.com/charmbracelet/log"

// Logger is the diagnostic sink used during extraction. Non-fatal conditions
// (for example a requested field missing from third-party JSON contents) are
// reported here instead of being surfaced as errors, so rendering a result
// page never aborts on one odd payload.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
}

type charmLogger struct {
	l *charmlog.Logger
}

func (c charmLogger) Debug(msg string, keyvals ...any) { c.l.Debug(msg, keyvals...) }
func (c charmLogger) Info(msg string, keyvals ...any)  { c.l.Info(msg, keyvals...) }
func (c charmLogger) Warn(msg string, keyvals ...any)  { c.l.Warn(msg, keyvals...) }
func (c charmLogger) Error(msg string, keyvals ...any) { c.l.Error(msg, keyvals...) }

// NewLogger adapts a charm logger to the Logger interface.
func NewLogger(l *charmlog.Logger) Logger {
	return charmLogger{l: l}
}

// DefaultLogger returns a Logger backed by the process-wide charm logger.
func DefaultLogger() Logger {
	return charmLogger{l: charmlog.Default()}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// NopLogger returns a Logger that discards everything.
func NopLogger() Logger {
	return nopLogger{}
}
