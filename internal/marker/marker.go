// Package marker derives sample identifiers from sequencing read file names.
//
// Illumina demultiplexers name read files like
// PID-0760-108s_S57_L001_R1_001.fastq.gz, where S57 is the sample sheet
// position. Combined with a LIMS identifier it gives a name that is unique
// within a run and safe to use in file names.
package marker

import (
	"fmt"
	"regexp"
	"strings"
)

// NoMarker is embedded in place of the marker when the file name has none.
const NoMarker = "None"

// Separator joins the identifier and the marker.
const Separator = "_"

var markerPattern = regexp.MustCompile(`S[0-9]+`)

// ExtractionError reports a read path whose file name has no sample marker.
type ExtractionError struct {
	Path string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("no sample marker (S<digits>) in file name of %q", e.Path)
}

// Basename returns the final segment of a slash-separated path.
// A path ending in a slash has an empty basename.
func Basename(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}

// ExtractMarker returns the first S<digits> run in the basename of path.
// Directory components are never searched.
func ExtractMarker(path string) (string, bool) {
	m := markerPattern.FindString(Basename(path))
	if m == "" {
		return "", false
	}
	return m, true
}

// SafeID joins id and the marker of rawForward and reports whether a
// marker was found. Without one the literal NoMarker text is used.
func SafeID(id, rawForward string) (string, bool) {
	m, ok := ExtractMarker(rawForward)
	if !ok {
		m = NoMarker
	}
	return id + Separator + m, ok
}

// BuildSafeID joins id and the marker of rawForward.
// When rawForward has no marker the literal NoMarker text is used.
func BuildSafeID(id, rawForward string) string {
	v, _ := SafeID(id, rawForward)
	return v
}

// BuildSafeIDStrict is like BuildSafeID but fails when rawForward has no marker.
func BuildSafeIDStrict(id, rawForward string) (string, error) {
	v, ok := SafeID(id, rawForward)
	if !ok {
		return "", &ExtractionError{Path: rawForward}
	}
	return v, nil
}
