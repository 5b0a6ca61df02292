package compat

import (
	"fmt"
	"strings"

	"github.com/notthetup/ulog"
)

// FastHTTPAdapter wraps a ulog.Logger to implement the fasthttp Logger
// interface.
type FastHTTPAdapter struct {
	logger        *ulog.Logger
	defaultLevel  int64
	levelDetector func(string) int64 // Function to detect log level from message
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter.
func NewFastHTTPAdapter(logger *ulog.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		logger:        logger,
		defaultLevel:  ulog.LevelInfo,
		levelDetector: DetectLogLevel, // Default level detection
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior.
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the default log level for Printf calls.
func WithDefaultLevel(level int64) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom function to detect log level from message
// content.
func WithLevelDetector(detector func(string) int64) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// Printf implements fasthttp's Logger interface.
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected := a.levelDetector(msg); detected != 0 {
			level = detected
		}
	}

	switch level {
	case ulog.LevelDebug:
		a.logger.DebugAt("fasthttp", 0, "%s", msg)
	case ulog.LevelWarnings:
		_ = a.logger.WarningAt("fasthttp", 0, "%s", msg)
	case ulog.LevelErrors:
		_ = a.logger.ErrorAt("fasthttp", 0, "%s", msg)
	default:
		a.logger.InfoAt("fasthttp", 0, "%s", msg)
	}
}

// DetectLogLevel attempts to detect a log level from message content.
func DetectLogLevel(msg string) int64 {
	msgLower := strings.ToLower(msg)

	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") ||
		strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") {
		return ulog.LevelErrors
	}

	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "warning") ||
		strings.Contains(msgLower, "deprecated") {
		return ulog.LevelWarnings
	}

	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return ulog.LevelDebug
	}

	return ulog.LevelInfo
}
