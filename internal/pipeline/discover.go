package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// inputExtension is the only extension admitted to the batch, compared
// case-insensitively.
const inputExtension = ".gpx"

// Discover lists the regular files in inputDir whose extension matches
// inputExtension. The scan is non-recursive; subdirectories are not descended
// into. Nothing downstream may depend on the returned order.
func Discover(inputDir string) ([]string, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), inputExtension) {
			continue
		}
		files = append(files, filepath.Join(inputDir, entry.Name()))
	}
	return files, nil
}
