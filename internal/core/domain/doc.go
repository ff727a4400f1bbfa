// Package domain defines the core entities for ahoy.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SourceUnit: One submodule of the analyzed package
//   - Module: The analysis subset of a submodule's syntax tree
//   - ExportList: Sorted public symbol names for one submodule
//   - PackageManifest: The final (submodule, exports) product
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
