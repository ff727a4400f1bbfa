package driven

import "github.com/Erotemic/ahoy/internal/core/domain"

// ManifestComposer renders a PackageManifest into aggregator file text.
// Rendering is pure formatting; it never touches the filesystem.
type ManifestComposer interface {
	Render(manifest *domain.PackageManifest, opts domain.FormatOptions) string
}

// InitPatcher merges generated text into an existing aggregator file,
// preserving manually authored preamble or explicit insertion markers,
// and writes the final result.
type InitPatcher interface {
	// Merge combines the existing file content with the generated block.
	Merge(existing, generated string) string

	// Write atomically replaces the file at path with text.
	Write(path, text string) error
}
