package ulog

import (
	"bytes"
	"strconv"

	"github.com/davecgh/go-spew/spew"
)

// appendRecord builds one log line in place:
//
//	<millis>|<SEVERITY>|<module>:<line>|<message>\n
func appendRecord(buf []byte, millis uint64, tag, module string, line int, msg string) []byte {
	buf = strconv.AppendUint(buf, millis, 10)
	buf = append(buf, '|')
	buf = append(buf, tag...)
	buf = append(buf, '|')
	buf = append(buf, module...)
	buf = append(buf, ':')
	buf = strconv.AppendInt(buf, int64(line), 10)
	buf = append(buf, '|')
	buf = append(buf, msg...)
	buf = append(buf, '\n')
	return buf
}

// valueDumper is tuned for log-friendly, compact output.
var valueDumper = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// DumpValue renders an arbitrary value (struct, map, slice, pointer chain)
// as a single compact line for inclusion in a log message.
func DumpValue(v any) string {
	var b bytes.Buffer
	valueDumper.Fdump(&b, v)
	out := bytes.TrimSpace(b.Bytes())
	// Keep one record per line on the wire
	return string(bytes.ReplaceAll(out, []byte{'\n'}, []byte{' '}))
}
