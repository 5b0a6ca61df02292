package ulog

import (
	"io"
	"testing"
)

func BenchmarkInfoAt(b *testing.B) {
	l := NewLogger()
	l.SetOutput(io.Discard)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.InfoAt("bench.c", 1, "sample %d", i)
	}
}

func BenchmarkInfoAtParallel(b *testing.B) {
	l := NewLogger()
	l.SetOutput(io.Discard)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l.InfoAt("bench.c", 1, "sample %d", 42)
		}
	})
}

func BenchmarkSuppressedDebug(b *testing.B) {
	l := NewLogger()
	l.SetOutput(io.Discard)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.DebugAt("bench.c", 1, "suppressed %d", i)
	}
}

func BenchmarkAppendRecord(b *testing.B) {
	buf := make([]byte, 0, 256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = appendRecord(buf[:0], 1724572800123, tagInfo, "modem.c", 42, "sync acquired")
	}
}
