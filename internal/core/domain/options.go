package domain

// FormatOptions customises how the composer renders the generated block.
// The analysis core treats these as opaque.
type FormatOptions struct {
	// LineWidth wraps generated lines. Zero means the default width.
	LineWidth int

	// Relative renders "from . import x" instead of absolute imports.
	Relative bool

	// WithMods includes plain submodule imports.
	WithMods bool

	// WithAttrs includes per-submodule attribute imports.
	WithAttrs bool

	// WithAll includes the generated __all__ list.
	WithAll bool
}

// Options configures one generation run.
type Options struct {
	// Imports restricts generation to these submodules, in place of
	// automatic discovery and any declared submodule list. Nil means
	// discover.
	Imports []string

	// UseAll honours an explicit __all__ declaration in a submodule,
	// bypassing reachability analysis for that submodule.
	UseAll bool

	// Dry renders the updated aggregator text without writing it.
	Dry bool

	Format FormatOptions
}

// DefaultLineWidth matches the conventional source line limit of the
// analyzed language.
const DefaultLineWidth = 79

// DefaultFormatOptions returns the standard rendering configuration.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		LineWidth: DefaultLineWidth,
		WithMods:  true,
		WithAttrs: true,
		WithAll:   true,
	}
}

// DefaultOptions returns the standard generation configuration.
func DefaultOptions() Options {
	return Options{
		UseAll: true,
		Format: DefaultFormatOptions(),
	}
}
