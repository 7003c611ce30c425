// Package app contains the Cobra command tree for argpath.
package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/argpath/internal/config"
	"github.com/blackwell-systems/argpath/internal/pathargs"
)

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagNull    bool
	flagVerbose bool
	flagGoto    bool
	flagCwd     string
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "argpath [flags] <path>...",
	Short: "Normalize file path arguments for an editor",
	Long: `argpath resolves file path arguments the way an editor launcher does:
relative paths are resolved against the working directory, symlinks and
"."/".." segments are resolved, invalid file names are dropped and
duplicates are collapsed. Paths that do not exist yet are kept.

With --goto each argument may carry a FILE:LINE[:COLUMN] locator, which
is re-attached to the normalized path.

The working directory is read from $ARGPATH_CWD (see cwd_env in the
config) or the process directory, unless --cwd is given. Pass "-" as the
only argument to read arguments from stdin, one per line. A file named
like a subcommand must be written as a path, e.g. ./explain.

Examples:
  argpath src/../main.go README.md
  argpath --goto main.go:12:5
  git ls-files | argpath -0 - | xargs -0 editor`,
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runNormalize,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps malformed goto arguments to a usage error.
func exitCode(err error) int {
	var fe *pathargs.FormatError
	if errors.As(err, &fe) {
		return 2
	}
	return 1
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/argpath/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log resolution details to stderr")
	rootCmd.PersistentFlags().BoolVarP(&flagGoto, "goto", "g", false, "Parse FILE:LINE[:COLUMN] locators")
	rootCmd.PersistentFlags().StringVar(&flagCwd, "cwd", "", "Resolve relative paths against this directory")

	rootCmd.Flags().BoolVarP(&flagNull, "null", "0", false, "Separate output paths with NUL instead of newline")
}

func runNormalize(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	args, err := expandStdin(cmd, args)
	if err != nil {
		return err
	}

	n, err := newNormalizer()
	if err != nil {
		return err
	}

	gotoLine := gotoMode(cmd)
	out := cmd.OutOrStdout()

	if outputFormat() == config.FormatJSON {
		entries, err := n.Explain(args, gotoLine)
		if err != nil {
			return err
		}
		return renderLocationsJSON(out, entries)
	}

	paths, err := n.Normalize(args, gotoLine)
	if err != nil {
		return err
	}
	return renderPaths(out, paths, outputFormat() == config.FormatNull)
}
