package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamusis/skills-scout/internal/signals"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Print the keywords inferred from the repository",
	Long: `Print, one per line, the technology keywords skills-scout derives from the
repository's manifests, lockfiles, CI directory and tool configuration.`,
	Args: cobra.NoArgs,
	RunE: runKeywords,
}

func init() {
	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(cmd *cobra.Command, _ []string) error {
	opts, err := buildOptions(scoutEnv, false)
	if err != nil {
		return err
	}
	keywords := signals.NewCollector(opts.RepoRoot, signals.WithAliases(opts.Aliases)).Collect()

	w := cmd.OutOrStdout()
	if keywords.Len() == 0 {
		printMiss(cmd.ErrOrStderr(), "", "no repository signals found")
		return nil
	}
	for _, kw := range keywords.Sorted() {
		fmt.Fprintln(w, kw)
	}
	return nil
}
