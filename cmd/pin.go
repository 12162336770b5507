package cmd

import (
	"fmt"
	"io"

	shellquote "github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/kamusis/skills-scout/internal/logging"
	"github.com/kamusis/skills-scout/internal/pipeline"
)

var (
	flagWrite   bool
	flagPreview bool
)

func init() {
	rootCmd.Flags().BoolVar(&flagWrite, "write", false, "Write the target document (default: print it)")
	rootCmd.Flags().BoolVar(&flagPreview, "preview", false, "Render the printed document as formatted markdown when stdout is a terminal")
}

func runPin(cmd *cobra.Command, _ []string) error {
	opts, err := buildOptions(scoutEnv, flagWrite)
	if err != nil {
		return err
	}
	res, err := pipeline.Run(opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !res.Wrote {
		printDocument(out, res.Content, flagPreview)
		logging.Info("dry run, target not modified",
			"target", res.TargetPath,
			"apply", applyCommand(opts.RepoRoot, flagSkillRoots),
		)
		return nil
	}

	reportWrite(out, res)
	return nil
}

func printDocument(w io.Writer, content string, preview bool) {
	if preview {
		if rendered, ok := renderPreview(content); ok {
			fmt.Fprint(w, rendered)
			return
		}
	}
	fmt.Fprint(w, content)
}

func reportWrite(w io.Writer, res *pipeline.Result) {
	pinned := res.Pinned()
	if res.Changed {
		printOK(w, "", fmt.Sprintf("updated %s (%d skill(s) pinned)", res.TargetPath, len(pinned)))
	} else {
		printSkip(w, "", fmt.Sprintf("%s already up to date (%d skill(s) pinned)", res.TargetPath, len(pinned)))
	}
	for _, name := range pinned {
		printInfo(w, "", name)
	}
}

// applyCommand returns the shell command that repeats this run with --write.
func applyCommand(repo string, roots []string) string {
	args := []string{"skills-scout", "--repo", repo}
	for _, r := range roots {
		args = append(args, "--skill-root", r)
	}
	args = append(args, "--write")
	return shellquote.Join(args...)
}
