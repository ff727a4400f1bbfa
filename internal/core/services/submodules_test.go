package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Erotemic/ahoy/internal/core/domain"
)

func TestSubmoduleResolver_Resolve(t *testing.T) {
	pkgPath := "/pkg/mypkg"
	initPath := "/pkg/mypkg/__init__.py"

	t.Run("explicit list overrides everything", func(t *testing.T) {
		locator := &mockLocator{
			pkgPath: pkgPath,
			located: map[string]string{
				"beta":  "/pkg/mypkg/beta.py",
				"alpha": "/pkg/mypkg/alpha.py",
			},
			submodules: []domain.SourceUnit{{Name: "ignored"}},
		}
		resolver := NewSubmoduleResolver(locator, &mockReader{}, &mockParser{})

		units, err := resolver.Resolve(pkgPath, []string{"beta", "alpha", "beta"})
		require.NoError(t, err)
		require.Len(t, units, 2)
		assert.Equal(t, "alpha", units[0].Name)
		assert.Equal(t, "beta", units[1].Name)
		assert.Equal(t, "/pkg/mypkg/alpha.py", units[0].Path)
	})

	t.Run("explicit entry that cannot be located fails the run", func(t *testing.T) {
		locator := &mockLocator{pkgPath: pkgPath, located: map[string]string{}}
		resolver := NewSubmoduleResolver(locator, &mockReader{}, &mockParser{})

		_, err := resolver.Resolve(pkgPath, []string{"missing"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Contains(t, err.Error(), "missing")
	})

	t.Run("declaration in the aggregator file drives the set", func(t *testing.T) {
		locator := &mockLocator{
			pkgPath: pkgPath,
			located: map[string]string{"declared": "/pkg/mypkg/declared.py"},
		}
		reader := &mockReader{files: map[string]string{initPath: "init source"}}
		parser := &mockParser{modules: map[string]*domain.Module{
			"init source": {Body: domain.Block{
				bindLit("__submodules__", strList("declared")),
			}},
		}}
		resolver := NewSubmoduleResolver(locator, reader, parser)

		units, err := resolver.Resolve(pkgPath, nil)
		require.NoError(t, err)
		require.Len(t, units, 1)
		assert.Equal(t, "declared", units[0].Name)
	})

	t.Run("uppercase declaration spelling is accepted", func(t *testing.T) {
		locator := &mockLocator{
			pkgPath: pkgPath,
			located: map[string]string{"mod": "/pkg/mypkg/mod.py"},
		}
		reader := &mockReader{files: map[string]string{initPath: "init source"}}
		parser := &mockParser{modules: map[string]*domain.Module{
			"init source": {Body: domain.Block{
				bindLit("__SUBMODULES__", strList("mod")),
			}},
		}}
		resolver := NewSubmoduleResolver(locator, reader, parser)

		units, err := resolver.Resolve(pkgPath, nil)
		require.NoError(t, err)
		require.Len(t, units, 1)
		assert.Equal(t, "mod", units[0].Name)
	})

	t.Run("non-literal declaration degrades to discovery", func(t *testing.T) {
		locator := &mockLocator{
			pkgPath:    pkgPath,
			submodules: []domain.SourceUnit{{Name: "found", Path: "/pkg/mypkg/found.py"}},
		}
		reader := &mockReader{files: map[string]string{initPath: "init source"}}
		parser := &mockParser{modules: map[string]*domain.Module{
			"init source": {Body: domain.Block{
				bindLit("__submodules__", domain.Opaque{}),
			}},
		}}
		resolver := NewSubmoduleResolver(locator, reader, parser)

		units, err := resolver.Resolve(pkgPath, nil)
		require.NoError(t, err)
		require.Len(t, units, 1)
		assert.Equal(t, "found", units[0].Name)
	})

	t.Run("missing aggregator file falls back to discovery", func(t *testing.T) {
		locator := &mockLocator{
			pkgPath:    pkgPath,
			submodules: []domain.SourceUnit{{Name: "found"}},
		}
		resolver := NewSubmoduleResolver(locator, &mockReader{}, &mockParser{})

		units, err := resolver.Resolve(pkgPath, nil)
		require.NoError(t, err)
		require.Len(t, units, 1)
	})
}
