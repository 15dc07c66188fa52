package storage

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

const objectPrefix = "applications"

var (
	unsafeChars = regexp.MustCompile(`[^가-힣a-zA-Z0-9._-]`)
	dotRuns     = regexp.MustCompile(`\.{2,}`)
)

// SanitizeFilename makes an applicant-supplied filename safe to use as part
// of an object key: everything outside Hangul, Latin letters, digits, dot,
// underscore and hyphen becomes an underscore, and runs of dots collapse to
// one so the extension stays unambiguous.
func SanitizeFilename(name string) string {
	sanitized := unsafeChars.ReplaceAllString(name, "_")
	return dotRuns.ReplaceAllString(sanitized, ".")
}

// ObjectKey derives a collision-resistant object name for an attachment:
// millisecond timestamp, the student id, and the sanitized original
// filename. When sanitizing leaves nothing usable, a random name stands in.
func ObjectKey(studentID, filename string) string {
	name := SanitizeFilename(filename)
	if name == "" || name == "." {
		name = uuid.NewString()
	}
	return fmt.Sprintf("%s/%d_%s_%s", objectPrefix, time.Now().UnixMilli(), studentID, name)
}
