package ulog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemTracerLogsAllocAndFree(t *testing.T) {
	l, buf := newTestLogger()
	tracer := NewMemTracer(l)

	b := tracer.Alloc(512)
	require.Len(t, b, 512)
	tracer.Free(b)

	out := buf.String()
	assert.Contains(t, out, "MEM:ALLOC")
	assert.Contains(t, out, "(512 bytes)")
	assert.Contains(t, out, "MEM:FREE")
	assert.Contains(t, out, "memtrace_test.go:", "records carry the call site")
}

func TestMemTracerZeroSize(t *testing.T) {
	l, buf := newTestLogger()
	tracer := NewMemTracer(l)

	b := tracer.Alloc(0)
	assert.Empty(t, b)
	tracer.Free(b)

	assert.Contains(t, buf.String(), "MEM:ALLOC nil (0 bytes)")
	assert.Contains(t, buf.String(), "MEM:FREE nil")
}

func TestMemTracerSuppressedBelowInfo(t *testing.T) {
	l, buf := newTestLogger()
	l.SetLevel(LevelErrors)
	tracer := NewMemTracer(l)

	tracer.Free(tracer.Alloc(64))
	assert.Zero(t, buf.Len())
}
