package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Erotemic/ahoy/internal/core/domain"
)

func testManifest() *domain.PackageManifest {
	return &domain.PackageManifest{
		Package: "mypkg",
		Path:    "/pkg/mypkg",
		Entries: []domain.ModuleExports{
			{Module: "alpha", Exports: domain.ExportList{"cat", "dog"}},
			{Module: "beta", Exports: domain.ExportList{}},
		},
	}
}

func TestComposer_Render(t *testing.T) {
	c := New()

	t.Run("absolute imports", func(t *testing.T) {
		got := c.Render(testManifest(), domain.DefaultFormatOptions())
		want := "from mypkg import alpha\n" +
			"from mypkg import beta\n" +
			"\n" +
			"from mypkg.alpha import cat, dog\n" +
			"\n" +
			"__all__ = ['alpha', 'beta', 'cat', 'dog']\n"
		assert.Equal(t, want, got)
	})

	t.Run("relative imports", func(t *testing.T) {
		opts := domain.DefaultFormatOptions()
		opts.Relative = true
		got := c.Render(testManifest(), opts)
		assert.Contains(t, got, "from . import alpha")
		assert.Contains(t, got, "from .alpha import cat, dog")
	})

	t.Run("sections can be disabled", func(t *testing.T) {
		opts := domain.DefaultFormatOptions()
		opts.WithMods = false
		opts.WithAll = false
		got := c.Render(testManifest(), opts)
		assert.Equal(t, "from mypkg.alpha import cat, dog\n", got)
	})

	t.Run("empty manifest renders only the export list", func(t *testing.T) {
		manifest := &domain.PackageManifest{Package: "mypkg"}
		got := c.Render(manifest, domain.DefaultFormatOptions())
		assert.Equal(t, "__all__ = []\n", got)
	})
}

func TestComposer_Wrapping(t *testing.T) {
	c := New()
	manifest := &domain.PackageManifest{
		Package: "mypkg",
		Entries: []domain.ModuleExports{
			{Module: "mod", Exports: domain.ExportList{"alpha_one", "beta_two", "gamma_three"}},
		},
	}

	opts := domain.FormatOptions{LineWidth: 30, WithAttrs: true}
	got := c.Render(manifest, opts)

	// The prefix and first name always share a line; later names wrap.
	want := "from mypkg.mod import (alpha_one,\n" +
		"    beta_two, gamma_three,)\n"
	assert.Equal(t, want, got)
}
