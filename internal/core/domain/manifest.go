package domain

import "sort"

// PrivacyPrefix marks private names and submodules. Names and modules
// starting with it are never exported or discovered.
const PrivacyPrefix = "_"

// SourceUnit is one submodule of the analyzed package. It is immutable
// once its source has been read and retains no state between runs.
type SourceUnit struct {
	// Name is the relative module name under the package (no extension).
	Name string

	// Path is the absolute location of the submodule's source file.
	// For subpackages this is the path of their __init__.py.
	Path string

	// Source is the raw source text, filled when the unit is read.
	Source string
}

// ExportList is the sorted set of public symbol names for one submodule.
type ExportList []string

// ModuleExports pairs a submodule's relative name with its export list.
type ModuleExports struct {
	Module  string
	Exports ExportList
}

// PackageManifest is the final product of a run: the ordered set of
// (submodule, exports) pairs for one package. Entries are sorted by
// relative module name and names are unique.
type PackageManifest struct {
	// Package is the top-level package name used for absolute imports.
	Package string

	// Path is the package directory on disk.
	Path string

	Entries []ModuleExports
}

// Normalize sorts entries by module name and drops duplicates, keeping
// the first occurrence of each name.
func (m *PackageManifest) Normalize() {
	sort.Slice(m.Entries, func(i, j int) bool {
		return m.Entries[i].Module < m.Entries[j].Module
	})
	deduped := m.Entries[:0]
	seen := make(map[string]struct{}, len(m.Entries))
	for _, entry := range m.Entries {
		if _, dup := seen[entry.Module]; dup {
			continue
		}
		seen[entry.Module] = struct{}{}
		deduped = append(deduped, entry)
	}
	m.Entries = deduped
}

// InitUpdate is the result of merging generated text into a package's
// existing aggregator file.
type InitUpdate struct {
	// Path is the aggregator file the text belongs to.
	Path string

	// Text is the complete new file content.
	Text string
}
