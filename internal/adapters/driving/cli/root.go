package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Erotemic/ahoy/internal/core/ports/driven"
	"github.com/Erotemic/ahoy/internal/core/ports/driving"
	"github.com/Erotemic/ahoy/internal/logger"
)

var (
	// version is set from the composition root at build time.
	version = "dev"

	// verbose enables debug logging on stderr.
	verbose bool

	// initService is the generation service, injected via Configure.
	initService driving.InitService

	// configStore supplies persisted option defaults. May be nil; the
	// CLI then falls back to built-in defaults.
	configStore driven.ConfigStore
)

var rootCmd = &cobra.Command{
	Use:   "ahoy",
	Short: "Statically generate __init__.py re-exports",
	Long: `ahoy inspects a Python package's submodules without executing them and
generates the package __init__.py: every public symbol that is guaranteed
to exist at import time is re-exported at the package top level.

Symbols are found by static reachability analysis of each submodule, or
taken verbatim from an explicit __all__ declaration when one is present.
Manually authored text in the existing __init__.py is preserved; wrap the
generated region in '# <AUTOGEN_INIT>' / '# </AUTOGEN_INIT>' comments for
precise control.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// Configure injects the ports the commands run against. Must be called
// before Execute.
func Configure(svc driving.InitService, cfg driven.ConfigStore) {
	initService = svc
	configStore = cfg
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the command tree with the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
