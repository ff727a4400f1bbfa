package mcp

import (
	"context"

	"github.com/Erotemic/ahoy/internal/core/domain"
)

// mockInitService is a mock implementation of driving.InitService.
type mockInitService struct {
	pkgPath  string
	manifest *domain.PackageManifest
	rendered string
	update   *domain.InitUpdate
	lastOpts domain.Options
	err      error
}

func (m *mockInitService) ResolvePackage(_ string) (string, error) {
	return m.pkgPath, m.err
}

func (m *mockInitService) Manifest(_ context.Context, _ string, opts domain.Options) (*domain.PackageManifest, error) {
	m.lastOpts = opts
	return m.manifest, m.err
}

func (m *mockInitService) StaticInit(_ context.Context, _ string, opts domain.Options) (string, error) {
	m.lastOpts = opts
	return m.rendered, m.err
}

func (m *mockInitService) AutogenInit(_ context.Context, _ string, opts domain.Options) (*domain.InitUpdate, error) {
	m.lastOpts = opts
	return m.update, m.err
}
