package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Erotemic/ahoy/internal/adapters/driving/tui"
	"github.com/Erotemic/ahoy/internal/core/domain"
)

var (
	generateImports  []string
	generateNoAll    bool
	generateDry      bool
	generateRelative bool
	generateWidth    int
	generateWatch    bool
	generatePager    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [module]",
	Short: "Generate a package's __init__.py",
	Long: `Resolves the package (by path or dotted module name), analyzes its
submodules and updates the package __init__.py. With --dry the updated
file is printed instead of written.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringSliceVar(&generateImports, "imports", nil, "explicit submodule names, overrides discovery")
	generateCmd.Flags().BoolVar(&generateNoAll, "noall", false, "ignore explicit __all__ declarations in submodules")
	generateCmd.Flags().BoolVar(&generateDry, "dry", false, "print the updated file instead of writing it")
	generateCmd.Flags().BoolVar(&generateRelative, "relative", false, "render relative imports (from . import x)")
	generateCmd.Flags().IntVar(&generateWidth, "width", 0, "line width for wrapping (0 = config or terminal)")
	generateCmd.Flags().BoolVar(&generateWatch, "watch", false, "regenerate whenever package sources change")
	generateCmd.Flags().BoolVar(&generatePager, "pager", false, "page the dry-run output (implies --dry)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if initService == nil {
		return errors.New("generation service not configured")
	}

	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	opts := buildOptions()

	if generateWatch {
		return runWatch(cmd, target, opts)
	}
	return generateOnce(cmd, target, opts)
}

func generateOnce(cmd *cobra.Command, target string, opts domain.Options) error {
	update, err := initService.AutogenInit(cmd.Context(), target, opts)
	if err != nil {
		return fmt.Errorf("generating %s: %w", target, err)
	}

	if opts.Dry {
		if generatePager {
			return tui.Preview(update.Path, update.Text)
		}
		cmd.Println(warnStyle.Render("(dry) would write: ") + pathStyle.Render(update.Path))
		cmd.Println(update.Text)
		return nil
	}

	cmd.Println(successStyle.Render("wrote ") + pathStyle.Render(update.Path))
	return nil
}

// buildOptions folds flag values over persisted config defaults.
func buildOptions() domain.Options {
	opts := domain.DefaultOptions()
	opts.Imports = generateImports
	opts.UseAll = !generateNoAll
	opts.Dry = generateDry || generatePager
	opts.Format.Relative = generateRelative
	opts.Format.LineWidth = resolveWidth()

	if configStore != nil {
		if generateImports == nil {
			if imports := configStore.GetStringSlice("imports"); len(imports) > 0 {
				opts.Imports = imports
			}
		}
		if !generateNoAll && configStore.GetBool("noall") {
			opts.UseAll = false
		}
		if !generateRelative && configStore.GetBool("format.relative") {
			opts.Format.Relative = true
		}
	}
	return opts
}

// resolveWidth picks the wrap width: explicit flag, persisted config,
// then the terminal width capped at the conventional default.
func resolveWidth() int {
	if generateWidth > 0 {
		return generateWidth
	}
	if configStore != nil {
		if width := configStore.GetInt("format.line_width"); width > 0 {
			return width
		}
	}
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 && width < domain.DefaultLineWidth {
		return width
	}
	return domain.DefaultLineWidth
}
