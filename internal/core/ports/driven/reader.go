package driven

// SourceReader provides scoped access to source files. Each read opens,
// fully reads and closes one file; no handle outlives the call.
type SourceReader interface {
	// Read returns the file's full text. Failures wrap domain.ErrRead
	// together with the underlying cause and the offending path.
	Read(path string) (string, error)

	// Exists reports whether the path is present on disk.
	Exists(path string) bool
}
