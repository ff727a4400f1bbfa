// Package reader implements the driven.SourceReader port over the local
// filesystem. Each read opens, fully reads and closes one file; no
// handle is held longer than a single call.
package reader

import (
	"fmt"
	"os"

	"github.com/Erotemic/ahoy/internal/core/domain"
	"github.com/Erotemic/ahoy/internal/core/ports/driven"
)

// Ensure File implements the interface.
var _ driven.SourceReader = (*File)(nil)

// File reads source text from disk.
type File struct{}

// New creates a filesystem source reader.
func New() *File {
	return &File{}
}

// Read returns the file's full text, wrapping failures with the
// offending path and the underlying cause.
func (*File) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %w", path, domain.ErrRead, err)
	}
	return string(data), nil
}

// Exists reports whether the path is present on disk.
func (*File) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
