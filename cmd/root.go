package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	scouterrors "github.com/kamusis/skills-scout/internal/errors"
	"github.com/kamusis/skills-scout/internal/logging"
)

var (
	flagRepo       string
	flagSkillRoots []string
	flagVerbose    bool
	flagLogJSON    bool
)

var rootCmd = &cobra.Command{
	Use:   "skills-scout",
	Short: "Pin the skills that fit a repository into its AGENTS.md",
	Long: `skills-scout looks at a repository's manifests, lockfiles, CI and tool
configuration, ranks the SKILL.md documents found under the skill roots by
how many of those signals they mention, and keeps a generated section listing
them in the repository's AGENTS.md.

Without --write the updated document is printed and nothing is changed.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true, // don't print usage on operational errors
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logging.Setup(flagVerbose, flagLogJSON, os.Stderr)
	},
	RunE: runPin,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagRepo, "repo", "", "Repository root (default: current directory)")
	pf.StringArrayVar(&flagSkillRoots, "skill-root", nil,
		"Skill catalog root, repeatable (default: ~/.codex/skills, ~/.agents/skills, <repo>/.codex/skills, <repo>/.agents/skills)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	pf.BoolVar(&flagLogJSON, "log-json", false, "Write logs in JSON format")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "✗ %v\n", err)
		os.Exit(scouterrors.GetExitCode(err))
	}
}
