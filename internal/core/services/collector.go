package services

import (
	"sort"
	"strings"

	"github.com/Erotemic/ahoy/internal/core/domain"

	"github.com/Erotemic/ahoy/internal/logger"
)

// Collector turns a submodule's syntax tree into its export list. An
// explicit __all__ declaration is authoritative; otherwise the
// reachability analyzer's result is filtered against the privacy marker
// and the builtin denylist.
type Collector struct {
	analyzer *Analyzer
	denylist map[string]struct{}
}

// NewCollector creates a symbol collector. The denylist is received by
// value and copied; callers keep ownership of the slice.
func NewCollector(analyzer *Analyzer, denylist []string) *Collector {
	deny := make(map[string]struct{}, len(denylist))
	for _, name := range denylist {
		deny[name] = struct{}{}
	}
	return &Collector{analyzer: analyzer, denylist: deny}
}

// Collect produces the export list for one submodule. It is a pure
// function of the syntax tree and the useAll flag.
func (c *Collector) Collect(unit domain.SourceUnit, mod *domain.Module, useAll bool) domain.ExportList {
	if useAll {
		if declared, ok := mod.StaticStringList("__all__"); ok {
			// The author's declaration is trusted verbatim, even for
			// names the analyzer could not prove bound.
			sort.Strings(declared)
			return declared
		}
		logger.Debug("%s: no static __all__, falling back to analysis", unit.Name)
	}

	exports := make(domain.ExportList, 0)
	for _, name := range c.analyzer.AlwaysBound(mod) {
		if strings.HasPrefix(name, domain.PrivacyPrefix) {
			continue
		}
		if _, shadowed := c.denylist[name]; shadowed {
			continue
		}
		exports = append(exports, name)
	}
	sort.Strings(exports)
	return exports
}
