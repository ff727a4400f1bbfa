package composer

import (
	"fmt"
	"strings"

	"github.com/Erotemic/ahoy/internal/core/domain"
	"github.com/Erotemic/ahoy/internal/core/ports/driven"
)

// Ensure Composer implements the interface.
var _ driven.ManifestComposer = (*Composer)(nil)

// Composer renders manifests into import/export statements.
type Composer struct{}

// New creates a manifest composer.
func New() *Composer {
	return &Composer{}
}

// Render assembles the generated aggregator block: submodule imports,
// per-submodule attribute imports and the combined __all__ list.
func (c *Composer) Render(manifest *domain.PackageManifest, opts domain.FormatOptions) string {
	width := opts.LineWidth
	if width <= 0 {
		width = domain.DefaultLineWidth
	}

	var sections []string

	if opts.WithMods {
		lines := make([]string, 0, len(manifest.Entries))
		for _, entry := range manifest.Entries {
			lines = append(lines, fmt.Sprintf("from %s import %s", importBase(manifest, opts, ""), entry.Module))
		}
		if len(lines) > 0 {
			sections = append(sections, strings.Join(lines, "\n"))
		}
	}

	if opts.WithAttrs {
		var lines []string
		for _, entry := range manifest.Entries {
			if len(entry.Exports) == 0 {
				continue
			}
			prefix := fmt.Sprintf("from %s import ", importBase(manifest, opts, entry.Module))
			lines = append(lines, wrapNames(prefix, entry.Exports, "(", ")", width))
		}
		if len(lines) > 0 {
			sections = append(sections, strings.Join(lines, "\n"))
		}
	}

	if opts.WithAll {
		var names []string
		for _, entry := range manifest.Entries {
			names = append(names, entry.Module)
		}
		for _, entry := range manifest.Entries {
			names = append(names, entry.Exports...)
		}
		quoted := make([]string, len(names))
		for i, name := range names {
			quoted[i] = "'" + name + "'"
		}
		sections = append(sections, wrapNames("__all__ = ", quoted, "[", "]", width))
	}

	return strings.Join(sections, "\n\n") + "\n"
}

// importBase builds the from-clause target for a submodule ("" means the
// package itself): pkg, pkg.sub, or their relative spellings.
func importBase(manifest *domain.PackageManifest, opts domain.FormatOptions, submodule string) string {
	if opts.Relative {
		if submodule == "" {
			return "."
		}
		return "." + submodule
	}
	if submodule == "" {
		return manifest.Package
	}
	return manifest.Package + "." + submodule
}

// wrapNames renders the name list on one line when it fits the width,
// or as a bracketed continuation with trailing commas otherwise. List
// brackets always appear; from-import parentheses only when wrapping.
func wrapNames(prefix string, names []string, opening, closing string, width int) string {
	single := prefix + strings.Join(names, ", ")
	if opening == "[" {
		single = prefix + opening + strings.Join(names, ", ") + closing
	}
	if len(single) <= width {
		return single
	}

	const continuation = "    "
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(opening)
	lineLen := len(prefix) + len(opening)
	for i, name := range names {
		piece := name + ","
		switch {
		case i == 0:
		case lineLen+len(piece)+1 > width:
			b.WriteString("\n")
			b.WriteString(continuation)
			lineLen = len(continuation)
		default:
			b.WriteString(" ")
			lineLen++
		}
		b.WriteString(piece)
		lineLen += len(piece)
	}
	b.WriteString(closing)
	return b.String()
}
