package driven

import "github.com/Erotemic/ahoy/internal/core/domain"

// ModuleLocator resolves package locations on disk and enumerates
// submodules. It never reads or parses source text.
type ModuleLocator interface {
	// Resolve turns a filesystem path or a dotted module name into an
	// absolute package directory. Returns domain.ErrNotFound when the
	// target cannot be located.
	Resolve(nameOrPath string) (string, error)

	// PackageName returns the import name for a resolved package
	// directory, used for absolute import rendering.
	PackageName(pkgPath string) string

	// InitFile returns the path of the package's aggregator file. The
	// file need not exist yet.
	InitFile(pkgPath string) string

	// Submodules enumerates the package's immediate child modules and
	// subpackages, excluding privacy-prefixed names and the aggregator
	// file itself. The result is sorted by relative name.
	Submodules(pkgPath string) ([]domain.SourceUnit, error)

	// Locate resolves one named submodule to its source file. Returns
	// domain.ErrNotFound when no such child exists.
	Locate(pkgPath, relName string) (string, error)
}
