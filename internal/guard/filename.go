package guard

import (
	"regexp"
	"strings"
)

// maxFilenameLength is the longest single path segment most filesystems accept.
const maxFilenameLength = 255

var unsafeFilenameCharsRegex = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// SanitizeFilename converts an arbitrary user-supplied string into a name
// safe to use as a single path segment inside a fixed output directory.
// Every character outside [A-Za-z0-9._-] becomes an underscore, any leading
// run of dots is stripped, and the result is truncated to 255 characters.
// The function is total and idempotent; it never fails. An input made
// entirely of disallowed characters degrades to a string of underscores,
// so callers needing uniqueness must handle collisions themselves.
//
// The result must be joined directly under the output directory as one
// segment, never interpreted as a sub-path.
func SanitizeFilename(candidate string) string {
	name := unsafeFilenameCharsRegex.ReplaceAllString(candidate, "_")
	name = strings.TrimLeft(name, ".")
	if len(name) > maxFilenameLength {
		name = name[:maxFilenameLength]
	}
	return name
}
