package services

import (
	"fmt"
	"sort"

	"github.com/Erotemic/ahoy/internal/core/domain"
	"github.com/Erotemic/ahoy/internal/core/ports/driven"

	"github.com/Erotemic/ahoy/internal/logger"
)

// Accepted spellings of the submodule declaration in a package's
// aggregator file.
var submoduleDeclarations = []string{"__submodules__", "__SUBMODULES__"}

// SubmoduleResolver decides which submodules of a package to process. A
// static declaration in the package's aggregator file overrides
// discovery; without one, the locator enumerates children directly.
type SubmoduleResolver struct {
	locator driven.ModuleLocator
	reader  driven.SourceReader
	parser  driven.SyntaxParser
}

// NewSubmoduleResolver creates a submodule set resolver.
func NewSubmoduleResolver(locator driven.ModuleLocator, reader driven.SourceReader, parser driven.SyntaxParser) *SubmoduleResolver {
	return &SubmoduleResolver{locator: locator, reader: reader, parser: parser}
}

// Resolve returns the submodules to process, sorted by relative name.
// The explicit list takes precedence over any declaration; each named
// entry must resolve to a location on disk or the run fails.
func (r *SubmoduleResolver) Resolve(pkgPath string, explicit []string) ([]domain.SourceUnit, error) {
	names := explicit
	if names == nil {
		declared, err := r.declaredSubmodules(pkgPath)
		if err != nil {
			return nil, err
		}
		names = declared
	}

	if names == nil {
		units, err := r.locator.Submodules(pkgPath)
		if err != nil {
			return nil, err
		}
		logger.Debug("discovered %d submodules under %s", len(units), pkgPath)
		return units, nil
	}

	units := make([]domain.SourceUnit, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		path, err := r.locator.Locate(pkgPath, name)
		if err != nil {
			return nil, fmt.Errorf("submodule %q: %w", name, err)
		}
		units = append(units, domain.SourceUnit{Name: name, Path: path})
	}
	sort.Slice(units, func(i, j int) bool { return units[i].Name < units[j].Name })
	return units, nil
}

// declaredSubmodules reads the package's aggregator file, if present,
// and extracts a statically evaluable submodule list. A declaration that
// is not a literal list of strings is treated as absent, degrading to
// discovery; a missing aggregator file is not an error.
func (r *SubmoduleResolver) declaredSubmodules(pkgPath string) ([]string, error) {
	initPath := r.locator.InitFile(pkgPath)
	if !r.reader.Exists(initPath) {
		return nil, nil
	}
	source, err := r.reader.Read(initPath)
	if err != nil {
		return nil, err
	}
	mod, err := r.parser.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", initPath, err)
	}
	for _, declaration := range submoduleDeclarations {
		if names, ok := mod.StaticStringList(declaration); ok {
			logger.Debug("using %s declaration from %s", declaration, initPath)
			return names, nil
		}
	}
	return nil, nil
}
