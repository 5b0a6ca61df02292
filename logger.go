package ulog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Logger holds the shared logging state: a level threshold read without
// locking, and a sink guarded by a mutex. The mutex serializes every emit
// against any Open/Close that swaps the stream underneath it, so concurrent
// callers can never tear a line or write to a half-closed file.
type Logger struct {
	level atomic.Int64

	mu   sync.Mutex
	sink io.Writer
	file *os.File
	buf  []byte

	// Counts writes that failed on the underlying sink. Emit errors are
	// never propagated to callers.
	writeFailures atomic.Uint64

	now  func() time.Time
	exit func(code int)
}

// NewLogger creates a logger at info level writing to standard error.
func NewLogger() *Logger {
	l := &Logger{
		sink: os.Stderr,
		buf:  make([]byte, 0, 256),
		now:  time.Now,
		exit: os.Exit,
	}
	l.level.Store(LevelInfo)
	return l
}

// SetLevel sets the threshold if lvl is within [LevelNone, LevelAll] and
// returns the resulting threshold. Out-of-range values are silently ignored
// and the unchanged threshold is returned.
func (l *Logger) SetLevel(lvl int64) int64 {
	if lvl >= LevelNone && lvl <= LevelAll {
		l.level.Store(lvl)
	}
	return l.level.Load()
}

// GetLevel returns the current threshold.
func (l *Logger) GetLevel() int64 {
	return l.level.Load()
}

// Open attaches the logger to filename in append mode. When maxFiles > 1 and
// the filename carries the "-0." marker, existing numbered siblings are
// shifted up one slot first, discarding anything at the retention cap. On
// failure a warning is logged and the previous sink stays attached.
func (l *Logger) Open(filename string, maxFiles int) error {
	if maxFiles > 1 {
		if pattern, ok := rotationPattern(filename); ok {
			rotateFiles(pattern, maxFiles)
		}
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFileMode)
	if err != nil {
		l.WarningAt("ulog", 0, "cannot open log file %s: %v", filename, err)
		return fmtErrorf("cannot open log file %s: %w", filename, err)
	}

	l.mu.Lock()
	if l.file != nil {
		_ = l.file.Close()
	}
	l.file = f
	l.sink = f
	l.mu.Unlock()

	return nil
}

// Close closes the current log file. Emitters called afterwards write to
// io.Discard until the next Open or SetOutput.
func (l *Logger) Close() error {
	l.mu.Lock()
	f := l.file
	l.file = nil
	l.sink = io.Discard
	l.mu.Unlock()

	if f == nil {
		return nil
	}
	if err := f.Close(); err != nil {
		return fmtErrorf("failed to close log file: %w", err)
	}
	return nil
}

// SetOutput redirects the sink to an arbitrary writer, for hosts that own
// their own stream. A nil writer restores standard error. Any file attached
// by Open stays open; Close still releases it.
func (l *Logger) SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	l.mu.Lock()
	l.sink = w
	l.mu.Unlock()
}

// WriteFailures returns the number of emits whose underlying write failed.
func (l *Logger) WriteFailures() uint64 {
	return l.writeFailures.Load()
}

// emit formats and writes one record. The lock is held across format, write
// and unlock is deferred so a panicking operand cannot leave it held. Writes
// go straight to the sink with no buffering layer, so every line is flushed
// by the time emit returns.
func (l *Logger) emit(tag, module string, line int, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Clock read inside the critical section so line order and timestamp
	// order never diverge under contention
	millis := uint64(l.now().UnixMilli())

	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	l.buf = appendRecord(l.buf[:0], millis, tag, moduleBase(module), line, msg)
	if _, err := l.sink.Write(l.buf); err != nil {
		l.writeFailures.Add(1)
	}
}
