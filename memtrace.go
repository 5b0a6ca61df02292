package ulog

// MemTracer wraps buffer allocation with info-level allocate/release records
// for tracking buffer lifetimes in long-running DSP pipelines. Purely
// diagnostic; buffers behave like plain make/GC otherwise.
type MemTracer struct {
	logger *Logger
}

// NewMemTracer creates a tracer logging through l.
func NewMemTracer(l *Logger) *MemTracer {
	return &MemTracer{logger: l}
}

// Alloc returns a fresh byte buffer of the given size, logging its address
// and size at info level.
func (m *MemTracer) Alloc(size int) []byte {
	b := make([]byte, size)
	file, line := caller(1)
	if size > 0 {
		m.logger.InfoAt(file, line, "MEM:ALLOC %p (%d bytes)", &b[0], size)
	} else {
		m.logger.InfoAt(file, line, "MEM:ALLOC nil (0 bytes)")
	}
	return b
}

// Free logs the release of a buffer obtained from Alloc. The buffer itself is
// left to the garbage collector.
func (m *MemTracer) Free(b []byte) {
	file, line := caller(1)
	if len(b) > 0 {
		m.logger.InfoAt(file, line, "MEM:FREE %p", &b[0])
	} else {
		m.logger.InfoAt(file, line, "MEM:FREE nil")
	}
}
