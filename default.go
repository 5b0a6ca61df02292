package ulog

import (
	"io"
)

// Global instance for package-level functions
var defaultLogger = NewLogger()

// Default returns the package-level logger instance.
func Default() *Logger {
	return defaultLogger
}

// Package-level functions that delegate to the default logger. The f variants
// capture the caller here so the logged location is the call site, not this
// file.

// Open attaches the default logger to a file, rotating numbered siblings.
func Open(filename string, maxFiles int) error {
	return defaultLogger.Open(filename, maxFiles)
}

// Close closes the default logger's file.
func Close() error {
	return defaultLogger.Close()
}

// SetLevel sets the default logger's threshold and returns the result.
func SetLevel(level int64) int64 {
	return defaultLogger.SetLevel(level)
}

// GetLevel returns the default logger's threshold.
func GetLevel() int64 {
	return defaultLogger.GetLevel()
}

// SetOutput redirects the default logger's sink.
func SetOutput(w io.Writer) {
	defaultLogger.SetOutput(w)
}

// ApplyConfig applies a configuration to the default logger.
func ApplyConfig(cfg *Config) error {
	return defaultLogger.ApplyConfig(cfg)
}

// Fatalf logs at the caller's location and terminates the process.
func Fatalf(format string, args ...any) {
	file, line := caller(1)
	defaultLogger.FatalAt(file, line, format, args...)
}

// Errorf logs at error level and returns the message as an error.
func Errorf(format string, args ...any) error {
	file, line := caller(1)
	return defaultLogger.ErrorAt(file, line, format, args...)
}

// Warningf logs at warning level and returns the message as an error.
func Warningf(format string, args ...any) error {
	file, line := caller(1)
	return defaultLogger.WarningAt(file, line, format, args...)
}

// Infof logs at info level.
func Infof(format string, args ...any) {
	file, line := caller(1)
	defaultLogger.InfoAt(file, line, format, args...)
}

// Debugf logs at debug level.
func Debugf(format string, args ...any) {
	file, line := caller(1)
	defaultLogger.DebugAt(file, line, format, args...)
}

// Dump logs a compact structural dump of v at debug level.
func Dump(label string, v any) {
	if defaultLogger.GetLevel() < LevelDebug {
		return
	}
	file, line := caller(1)
	defaultLogger.DebugAt(file, line, "%s: %s", label, DumpValue(v))
}
