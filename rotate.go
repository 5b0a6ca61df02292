package ulog

import (
	"fmt"
	"os"
	"strings"
)

// rotationPattern derives an index-parameterized filename pattern from a
// "-0."-marked filename: "phy-0.log" becomes "phy-%d.log". Filenames without
// the marker are not rotation-eligible.
func rotationPattern(filename string) (string, bool) {
	i := strings.Index(filename, rotationMarker)
	if i < 0 {
		return "", false
	}
	return filename[:i] + "-%d." + filename[i+len(rotationMarker):], true
}

// rotateFiles shifts the numbered log chain up one slot, freeing index 0.
// The file at the retention cap is removed first, then renames run highest
// index down; ascending order would overwrite files before they move. Missing
// files and individual rename failures are tolerated, rotation is best effort.
func rotateFiles(pattern string, maxFiles int) {
	_ = os.Remove(fmt.Sprintf(pattern, maxFiles-1))
	for i := maxFiles - 2; i >= 0; i-- {
		_ = os.Rename(fmt.Sprintf(pattern, i), fmt.Sprintf(pattern, i+1))
	}
}
