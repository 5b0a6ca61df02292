package ulog

// Log level constants, ordered. An emitter at severity S writes only when the
// current threshold is >= its required level.
const (
	LevelNone     int64 = 0
	LevelErrors   int64 = 1
	LevelWarnings int64 = 2
	LevelInfo     int64 = 3
	LevelDebug    int64 = 4
	LevelAll      int64 = 5
)

// Severity tags as they appear on the wire. Fatal emits ABORT, matching the
// convention of downstream log parsers.
const (
	tagAbort   = "ABORT"
	tagError   = "ERROR"
	tagWarning = "WARNING"
	tagInfo    = "INFO"
	tagDebug   = "DEBUG"
)

// Rotation marker that identifies a filename as the index-0 slot of a
// numbered log chain, e.g. "phy-0.log" rotates to "phy-1.log", "phy-2.log".
const rotationMarker = "-0."

const logFileMode = 0644
