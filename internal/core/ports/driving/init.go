package driving

import (
	"context"

	"github.com/Erotemic/ahoy/internal/core/domain"
)

// InitService generates aggregator files for packages.
type InitService interface {
	// ResolvePackage turns a path or dotted module name into the
	// package directory that a run would operate on.
	ResolvePackage(nameOrPath string) (string, error)

	// Manifest resolves the submodule set and produces the
	// (submodule, exports) pairs for the package, sorted by name.
	Manifest(ctx context.Context, nameOrPath string, opts domain.Options) (*domain.PackageManifest, error)

	// StaticInit renders the generated aggregator block for the
	// package without touching any existing file.
	StaticInit(ctx context.Context, nameOrPath string, opts domain.Options) (string, error)

	// AutogenInit merges the generated block into the package's
	// aggregator file, preserving manually authored text, and writes
	// the result unless opts.Dry is set. The returned update always
	// carries the final text.
	AutogenInit(ctx context.Context, nameOrPath string, opts domain.Options) (*domain.InitUpdate, error)
}
