package services

import (
	"context"
	"fmt"

	"github.com/Erotemic/ahoy/internal/core/domain"
	"github.com/Erotemic/ahoy/internal/core/ports/driven"
	"github.com/Erotemic/ahoy/internal/core/ports/driving"

	"github.com/Erotemic/ahoy/internal/logger"
)

// Ensure InitService implements the interface.
var _ driving.InitService = (*InitService)(nil)

// InitService orchestrates a generation run: resolve the package, decide
// the submodule set, analyze and collect per submodule, compose the
// manifest and patch the aggregator file. Submodule analyses are pure
// functions of their own source text; each file is read and released
// before the next is touched.
type InitService struct {
	locator  driven.ModuleLocator
	reader   driven.SourceReader
	parser   driven.SyntaxParser
	composer driven.ManifestComposer
	patcher  driven.InitPatcher

	resolver  *SubmoduleResolver
	collector *Collector
}

// NewInitService creates the generation service. The denylist is the
// builtin-identifier set excluded from derived export lists.
func NewInitService(
	locator driven.ModuleLocator,
	reader driven.SourceReader,
	parser driven.SyntaxParser,
	composer driven.ManifestComposer,
	patcher driven.InitPatcher,
	denylist []string,
) *InitService {
	return &InitService{
		locator:   locator,
		reader:    reader,
		parser:    parser,
		composer:  composer,
		patcher:   patcher,
		resolver:  NewSubmoduleResolver(locator, reader, parser),
		collector: NewCollector(NewAnalyzer(), denylist),
	}
}

// ResolvePackage turns a path or dotted module name into the package
// directory a run would operate on.
func (s *InitService) ResolvePackage(nameOrPath string) (string, error) {
	return s.locator.Resolve(nameOrPath)
}

// Manifest produces the (submodule, exports) pairs for the package.
func (s *InitService) Manifest(ctx context.Context, nameOrPath string, opts domain.Options) (*domain.PackageManifest, error) {
	pkgPath, err := s.locator.Resolve(nameOrPath)
	if err != nil {
		return nil, fmt.Errorf("resolving %q: %w", nameOrPath, err)
	}
	logger.Section("Manifest")
	logger.Debug("package path: %s", pkgPath)

	units, err := s.resolver.Resolve(pkgPath, opts.Imports)
	if err != nil {
		return nil, err
	}

	manifest := &domain.PackageManifest{
		Package: s.locator.PackageName(pkgPath),
		Path:    pkgPath,
		Entries: make([]domain.ModuleExports, 0, len(units)),
	}
	for _, unit := range units {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		source, err := s.reader.Read(unit.Path)
		if err != nil {
			return nil, err
		}
		unit.Source = source
		mod, err := s.parser.Parse(unit.Source)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", unit.Path, err)
		}
		exports := s.collector.Collect(unit, mod, opts.UseAll)
		logger.Debug("%s: %d exported symbols", unit.Name, len(exports))
		manifest.Entries = append(manifest.Entries, domain.ModuleExports{
			Module:  unit.Name,
			Exports: exports,
		})
	}
	manifest.Normalize()
	return manifest, nil
}

// StaticInit renders the generated aggregator block without touching any
// existing file.
func (s *InitService) StaticInit(ctx context.Context, nameOrPath string, opts domain.Options) (string, error) {
	manifest, err := s.Manifest(ctx, nameOrPath, opts)
	if err != nil {
		return "", err
	}
	return s.composer.Render(manifest, opts.Format), nil
}

// AutogenInit merges the generated block into the package's aggregator
// file and writes the result unless opts.Dry is set.
func (s *InitService) AutogenInit(ctx context.Context, nameOrPath string, opts domain.Options) (*domain.InitUpdate, error) {
	manifest, err := s.Manifest(ctx, nameOrPath, opts)
	if err != nil {
		return nil, err
	}
	generated := s.composer.Render(manifest, opts.Format)

	initPath := s.locator.InitFile(manifest.Path)
	existing := ""
	if s.reader.Exists(initPath) {
		existing, err = s.reader.Read(initPath)
		if err != nil {
			return nil, err
		}
	}

	update := &domain.InitUpdate{
		Path: initPath,
		Text: s.patcher.Merge(existing, generated),
	}
	if opts.Dry {
		logger.Info("(dry) would write %s", initPath)
		return update, nil
	}
	if err := s.patcher.Write(update.Path, update.Text); err != nil {
		return nil, err
	}
	logger.Info("wrote %s", initPath)
	return update, nil
}
