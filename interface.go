package ulog

// Leveled emitters. Each *At variant takes an explicit module path and line
// number; the f variants capture the caller's file and line themselves. The
// module path is reduced to its final component before writing.
//
// Level guidelines, in the spirit of the host signal-processing stack:
//   - Fatal to log and terminate.
//   - Error where functionality is permanently compromised.
//   - Warning where functionality may be temporarily compromised.
//   - Info for status messages during normal operation.
//   - Debug for detail that is normally not needed.

// FatalAt writes a record tagged ABORT and terminates the process with exit
// status 1. The message is suppressed when the level is LevelNone, but
// termination is unconditional.
func (l *Logger) FatalAt(module string, line int, format string, args ...any) {
	if l.level.Load() > LevelNone {
		l.emit(tagAbort, module, line, format, args...)
	}
	l.exit(1)
}

// ErrorAt logs at error level. It always returns the formatted message as an
// error so call sites can `return l.ErrorAt(...)` directly; suppression by
// level does not change the return value.
func (l *Logger) ErrorAt(module string, line int, format string, args ...any) error {
	if l.level.Load() >= LevelErrors {
		l.emit(tagError, module, line, format, args...)
	}
	return fmtMessageError(format, args...)
}

// WarningAt logs at warning level. Returns the formatted message as an error,
// same contract as ErrorAt.
func (l *Logger) WarningAt(module string, line int, format string, args ...any) error {
	if l.level.Load() >= LevelWarnings {
		l.emit(tagWarning, module, line, format, args...)
	}
	return fmtMessageError(format, args...)
}

// InfoAt logs at info level.
func (l *Logger) InfoAt(module string, line int, format string, args ...any) {
	if l.level.Load() >= LevelInfo {
		l.emit(tagInfo, module, line, format, args...)
	}
}

// DebugAt logs at debug level.
func (l *Logger) DebugAt(module string, line int, format string, args ...any) {
	if l.level.Load() >= LevelDebug {
		l.emit(tagDebug, module, line, format, args...)
	}
}

// Fatalf logs at the caller's location and terminates the process.
func (l *Logger) Fatalf(format string, args ...any) {
	file, line := caller(1)
	l.FatalAt(file, line, format, args...)
}

// Errorf logs at the caller's location and returns the message as an error.
func (l *Logger) Errorf(format string, args ...any) error {
	file, line := caller(1)
	return l.ErrorAt(file, line, format, args...)
}

// Warningf logs at the caller's location and returns the message as an error.
func (l *Logger) Warningf(format string, args ...any) error {
	file, line := caller(1)
	return l.WarningAt(file, line, format, args...)
}

// Infof logs at the caller's location at info level.
func (l *Logger) Infof(format string, args ...any) {
	file, line := caller(1)
	l.InfoAt(file, line, format, args...)
}

// Debugf logs at the caller's location at debug level.
func (l *Logger) Debugf(format string, args ...any) {
	file, line := caller(1)
	l.DebugAt(file, line, format, args...)
}

// Dump logs a compact structural dump of v at debug level, labelled.
func (l *Logger) Dump(label string, v any) {
	if l.level.Load() < LevelDebug {
		return
	}
	file, line := caller(1)
	l.DebugAt(file, line, "%s: %s", label, DumpValue(v))
}
