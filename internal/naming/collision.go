package naming

import (
	"fmt"
	"os"
)

// CollisionError reports that a conversion's output path is already occupied.
// Existing files are never overwritten.
type CollisionError struct {
	Path string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("output file already exists, skipping %q", e.Path)
}

// CheckCollision returns a *CollisionError if a file already exists at path.
// The check is not atomic with respect to concurrent tasks computing the same
// path; the serializer's exclusive-create open covers that window.
func CheckCollision(path string) error {
	if _, err := os.Stat(path); err == nil {
		return &CollisionError{Path: path}
	}
	return nil
}
