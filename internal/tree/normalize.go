package tree

import (
	"regexp"
	"strings"
)

// drivePrefix matches a Windows drive root such as C:\ or d:/.
var drivePrefix = regexp.MustCompile(`^[A-Za-z]:[\\/]`)

// Segments splits path on both / and \ and drops root markers, drive
// prefixes and empty segments. A "." is kept only as the first segment of a
// relative path, so find(1) output keeps its "." root; any other "." is
// folded away.
func Segments(path string) []string {
	trimmed := drivePrefix.ReplaceAllLiteralString(path, "")
	rooted := trimmed != path || strings.IndexFunc(trimmed, isSeparator) == 0

	parts := strings.FieldsFunc(trimmed, isSeparator)
	segments := parts[:0]
	for i, p := range parts {
		if p == "." && (i > 0 || rooted) {
			continue
		}
		segments = append(segments, p)
	}
	return segments
}

func isSeparator(r rune) bool {
	return r == '/' || r == '\\'
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
