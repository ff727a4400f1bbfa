package locator

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Erotemic/ahoy/internal/core/domain"
	"github.com/Erotemic/ahoy/internal/core/ports/driven"

	"github.com/Erotemic/ahoy/internal/logger"
)

// InitFileName is the aggregator file of a package directory.
const InitFileName = "__init__.py"

const sourceSuffix = ".py"

// Ensure Filesystem implements the interface.
var _ driven.ModuleLocator = (*Filesystem)(nil)

// Filesystem resolves packages and submodules on the local disk.
type Filesystem struct {
	searchPath []string
}

// New creates a filesystem locator. A nil searchPath uses the current
// directory plus the PYTHONPATH environment variable.
func New(searchPath []string) *Filesystem {
	if searchPath == nil {
		searchPath = append([]string{"."}, filepath.SplitList(os.Getenv("PYTHONPATH"))...)
	}
	return &Filesystem{searchPath: searchPath}
}

// Resolve turns a filesystem path or dotted module name into an absolute
// package directory.
func (f *Filesystem) Resolve(nameOrPath string) (string, error) {
	if info, err := os.Stat(nameOrPath); err == nil && info.IsDir() {
		return filepath.Abs(nameOrPath)
	}

	parts := strings.Split(nameOrPath, ".")
	for _, root := range f.searchPath {
		if root == "" {
			continue
		}
		candidate := filepath.Join(append([]string{root}, parts...)...)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			logger.Debug("resolved %q under %s", nameOrPath, root)
			return filepath.Abs(candidate)
		}
	}
	return "", fmt.Errorf("package %q: %w", nameOrPath, domain.ErrNotFound)
}

// PackageName returns the import name of a package directory.
func (f *Filesystem) PackageName(pkgPath string) string {
	return filepath.Base(pkgPath)
}

// InitFile returns the path of the package's aggregator file.
func (f *Filesystem) InitFile(pkgPath string) string {
	return filepath.Join(pkgPath, InitFileName)
}

// Submodules enumerates immediate child modules and subpackages,
// excluding privacy-prefixed names. The privacy rule also excludes the
// aggregator file itself, so a package never lists itself as its own
// submodule.
func (f *Filesystem) Submodules(pkgPath string) ([]domain.SourceUnit, error) {
	entries, err := os.ReadDir(pkgPath)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", pkgPath, domain.ErrNotFound)
	}

	units := make([]domain.SourceUnit, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, domain.PrivacyPrefix) {
			continue
		}
		if entry.IsDir() {
			initPath := filepath.Join(pkgPath, name, InitFileName)
			if _, err := os.Stat(initPath); err != nil {
				continue
			}
			units = append(units, domain.SourceUnit{Name: name, Path: initPath})
			continue
		}
		if !strings.HasSuffix(name, sourceSuffix) {
			continue
		}
		units = append(units, domain.SourceUnit{
			Name: strings.TrimSuffix(name, sourceSuffix),
			Path: filepath.Join(pkgPath, name),
		})
	}
	sort.Slice(units, func(i, j int) bool { return units[i].Name < units[j].Name })
	return units, nil
}

// Locate resolves one named submodule to its source file: either a
// sibling module file or a subpackage's aggregator file.
func (f *Filesystem) Locate(pkgPath, relName string) (string, error) {
	modFile := filepath.Join(pkgPath, relName+sourceSuffix)
	if info, err := os.Stat(modFile); err == nil && !info.IsDir() {
		return modFile, nil
	}
	initPath := filepath.Join(pkgPath, relName, InitFileName)
	if _, err := os.Stat(initPath); err == nil {
		return initPath, nil
	}
	return "", fmt.Errorf("%s under %s: %w", relName, pkgPath, domain.ErrNotFound)
}
