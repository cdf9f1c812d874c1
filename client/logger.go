package client

// Logger is an optional package logger. Internals log sparingly:
// warnings for degraded fallbacks, info for bulk-save progress.
type Logger interface {
	// Infof logs a formatted informational message.
	Infof(format string, args ...any)
	// Warnf logs a formatted warning message.
	Warnf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Infof(string, ...any) {}
func (nopLogger) Warnf(string, ...any) {}
