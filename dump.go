package ulog

import (
	"bufio"
	"encoding/hex"
	"os"
	"strconv"
)

// Diagnostics helpers for offline inspection of signal buffers. Stateless,
// no locking, independent of any Logger.

// BytesToHex encodes data as lowercase hex, two characters per byte, no
// separators.
func BytesToHex(data []byte) string {
	return hex.EncodeToString(data)
}

// DumpComplexSignal writes a baseband signal to a text file, one sample per
// line as "real,imag" with six decimal places. The file is created or
// truncated; partial content from a later write failure is not rolled back.
func DumpComplexSignal(filename string, signal []complex64) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmtErrorf("cannot create signal dump %s: %w", filename, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	buf := make([]byte, 0, 32)
	for _, s := range signal {
		buf = strconv.AppendFloat(buf[:0], float64(real(s)), 'f', 6, 32)
		buf = append(buf, ',')
		buf = strconv.AppendFloat(buf, float64(imag(s)), 'f', 6, 32)
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return fmtErrorf("failed to write signal dump %s: %w", filename, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmtErrorf("failed to write signal dump %s: %w", filename, err)
	}
	return nil
}

// DumpIntegerSignal writes a passband signal to a text file, one sample per
// line as a decimal integer. Same creation and failure semantics as
// DumpComplexSignal.
func DumpIntegerSignal(filename string, signal []int32) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmtErrorf("cannot create signal dump %s: %w", filename, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	buf := make([]byte, 0, 16)
	for _, s := range signal {
		buf = strconv.AppendInt(buf[:0], int64(s), 10)
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return fmtErrorf("failed to write signal dump %s: %w", filename, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmtErrorf("failed to write signal dump %s: %w", filename, err)
	}
	return nil
}
