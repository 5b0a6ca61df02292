package ulog

import (
	"fmt"
	"runtime"
	"strings"
)

// fmtErrorf wrapper, keeps the "ulog: " prefix consistent
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "ulog: ") {
		format = "ulog: " + format
	}
	return fmt.Errorf(format, args...)
}

// fmtMessageError builds the error value returned by the error/warning
// emitters. No package prefix: it carries the caller's own message.
func fmtMessageError(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

// moduleBase strips any directory prefix from a module path, keeping only the
// final path component for compact log lines.
func moduleBase(module string) string {
	if i := strings.LastIndexByte(module, '/'); i >= 0 {
		return module[i+1:]
	}
	return module
}

// caller returns the file and line of the caller skip frames up the stack.
func caller(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "???", 0
	}
	return file, line
}

// Level converts a level string to its numeric constant.
func Level(levelStr string) (int64, error) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "none":
		return LevelNone, nil
	case "errors":
		return LevelErrors, nil
	case "warnings":
		return LevelWarnings, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "all":
		return LevelAll, nil
	default:
		return 0, fmtErrorf("invalid level string: '%s' (use none, errors, warnings, info, debug, all)", levelStr)
	}
}

// LevelName returns the string form of a level constant.
func LevelName(level int64) string {
	switch level {
	case LevelNone:
		return "none"
	case LevelErrors:
		return "errors"
	case LevelWarnings:
		return "warnings"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	case LevelAll:
		return "all"
	default:
		return fmt.Sprintf("level(%d)", level)
	}
}
