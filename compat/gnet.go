// Package compat adapts ulog to the logger interfaces of third-party network
// stacks, so a host transport routes its diagnostics through the same
// mutex-serialized stream as the rest of the application.
package compat

import (
	"os"

	"github.com/notthetup/ulog"
)

// GnetAdapter wraps a ulog.Logger to implement the gnet logging.Logger
// interface.
type GnetAdapter struct {
	logger       *ulog.Logger
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter.
func NewGnetAdapter(logger *ulog.Logger, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		logger: logger,
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior.
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler.
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// Debugf logs at debug level with printf-style formatting.
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.logger.DebugAt("gnet", 0, format, args...)
}

// Infof logs at info level with printf-style formatting.
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.logger.InfoAt("gnet", 0, format, args...)
}

// Warnf logs at warning level with printf-style formatting.
func (a *GnetAdapter) Warnf(format string, args ...any) {
	_ = a.logger.WarningAt("gnet", 0, format, args...)
}

// Errorf logs at error level with printf-style formatting.
func (a *GnetAdapter) Errorf(format string, args ...any) {
	_ = a.logger.ErrorAt("gnet", 0, format, args...)
}

// Fatalf logs at error level and triggers the fatal handler. The handler, not
// the logger, owns termination so hosts can substitute their own shutdown.
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	err := a.logger.ErrorAt("gnet", 0, format, args...)

	if a.fatalHandler != nil {
		a.fatalHandler(err.Error())
	}
}
