// Package naming derives sanitized, collision-checked output paths from
// track metadata.
package naming

import (
	"path/filepath"
	"strings"
	"time"
)

// Characters that are illegal in filenames on at least one supported
// platform; each is replaced by "_".
var sanitizer = strings.NewReplacer(
	"<", "_",
	">", "_",
	":", "_",
	`"`, "_",
	"/", "_",
	`\`, "_",
	"|", "_",
	"?", "_",
	"*", "_",
)

// Basename returns the unsanitized output filename stem: the track date
// followed by the track name. The pre-sanitization form is also what the KML
// placemark is named after.
func Basename(date time.Time, name string) string {
	return date.Format("2006-01-02") + " " + name
}

// Sanitize replaces forbidden filename characters with "_" and trims
// leading/trailing whitespace.
func Sanitize(filename string) string {
	return strings.TrimSpace(sanitizer.Replace(filename))
}

// OutputPath joins outputDir with the sanitized "<date> <name>.kml" filename.
// It is re-derived on every run; results are never cached across files.
func OutputPath(outputDir string, date time.Time, name string) string {
	return filepath.Join(outputDir, Sanitize(Basename(date, name)+".kml"))
}
