package services

import (
	"path/filepath"

	"github.com/Erotemic/ahoy/internal/core/domain"
)

// mockLocator is a mock implementation of driven.ModuleLocator backed by
// in-memory maps.
type mockLocator struct {
	pkgPath    string
	pkgName    string
	submodules []domain.SourceUnit
	located    map[string]string
	resolveErr error
	listErr    error
	locateErr  error
}

func (m *mockLocator) Resolve(_ string) (string, error) {
	if m.resolveErr != nil {
		return "", m.resolveErr
	}
	return m.pkgPath, nil
}

func (m *mockLocator) PackageName(_ string) string {
	return m.pkgName
}

func (m *mockLocator) InitFile(pkgPath string) string {
	return filepath.Join(pkgPath, "__init__.py")
}

func (m *mockLocator) Submodules(_ string) ([]domain.SourceUnit, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.submodules, nil
}

func (m *mockLocator) Locate(_, relName string) (string, error) {
	if m.locateErr != nil {
		return "", m.locateErr
	}
	path, ok := m.located[relName]
	if !ok {
		return "", domain.ErrNotFound
	}
	return path, nil
}

// mockReader is a mock implementation of driven.SourceReader serving
// sources from a path-keyed map.
type mockReader struct {
	files   map[string]string
	readErr error
}

func (m *mockReader) Read(path string) (string, error) {
	if m.readErr != nil {
		return "", m.readErr
	}
	source, ok := m.files[path]
	if !ok {
		return "", domain.ErrRead
	}
	return source, nil
}

func (m *mockReader) Exists(path string) bool {
	_, ok := m.files[path]
	return ok
}

// mockParser is a mock implementation of driven.SyntaxParser returning
// pre-lowered trees keyed by source text.
type mockParser struct {
	modules  map[string]*domain.Module
	parseErr error
}

func (m *mockParser) Parse(source string) (*domain.Module, error) {
	if m.parseErr != nil {
		return nil, m.parseErr
	}
	if mod, ok := m.modules[source]; ok {
		return mod, nil
	}
	return &domain.Module{}, nil
}

// mockComposer is a mock implementation of driven.ManifestComposer.
type mockComposer struct {
	rendered string
	manifest *domain.PackageManifest
}

func (m *mockComposer) Render(manifest *domain.PackageManifest, _ domain.FormatOptions) string {
	m.manifest = manifest
	return m.rendered
}

// mockPatcher is a mock implementation of driven.InitPatcher recording
// what was merged and written.
type mockPatcher struct {
	mergedExisting  string
	mergedGenerated string
	wrotePath       string
	wroteText       string
	writeErr        error
}

func (m *mockPatcher) Merge(existing, generated string) string {
	m.mergedExisting = existing
	m.mergedGenerated = generated
	return existing + generated
}

func (m *mockPatcher) Write(path, text string) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.wrotePath = path
	m.wroteText = text
	return nil
}
