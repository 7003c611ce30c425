package app

import (
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/argpath/internal/config"
)

var explainCmd = &cobra.Command{
	Use:   "explain [flags] <path>...",
	Short: "Show how each argument is normalized",
	Long: `Explain runs the same normalization as argpath itself but reports
every argument, including the ones that are dropped: file names that are
invalid on this platform and duplicates of an earlier argument. Paths
that do not exist yet are marked "new".`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	args, err := expandStdin(cmd, args)
	if err != nil {
		return err
	}

	n, err := newNormalizer()
	if err != nil {
		return err
	}

	entries, err := n.Explain(args, gotoMode(cmd))
	if err != nil {
		return err
	}

	if outputFormat() == config.FormatJSON {
		return renderExplainJSON(cmd.OutOrStdout(), entries)
	}
	return renderExplainTable(cmd.OutOrStdout(), entries)
}
