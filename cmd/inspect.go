package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamusis/skills-scout/internal/catalog"
	scouterrors "github.com/kamusis/skills-scout/internal/errors"
	"github.com/kamusis/skills-scout/internal/pipeline"
	"github.com/kamusis/skills-scout/internal/ranking"
	"github.com/kamusis/skills-scout/internal/signals"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <skill-name>",
	Short: "Show a catalog skill and how it matches the repository",
	Long: `Display a skill's metadata and the repository keywords it matches.

The name is matched exactly first; if nothing matches, every skill whose name
contains it (case-insensitive) is shown.

Example:
  skills-scout inspect playwright-expert
  skills-scout inspect playwright`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	opts, err := buildOptions(scoutEnv, false)
	if err != nil {
		return err
	}
	a, err := pipeline.Analyze(opts)
	if err != nil {
		return err
	}

	matches := catalog.Find(a.Skills, args[0])
	if len(matches) == 0 {
		return scouterrors.SkillNotFound(args[0])
	}

	w := cmd.OutOrStdout()
	for i, s := range matches {
		if i > 0 {
			fmt.Fprintln(w, strings.Repeat("─", 50))
		}
		printInspect(w, s, a.Keywords)
	}
	return nil
}

// printInspect displays one skill. Metadata comes from the full YAML header
// when it parses, otherwise from the catalog record.
func printInspect(w io.Writer, s catalog.Skill, keywords signals.KeywordSet) {
	meta, err := catalog.ReadMetadata(s.Path)
	if err != nil {
		meta = catalog.Metadata{Name: s.Name, Description: s.Description}
	}

	fmt.Fprintf(w, "📦 Skill: %s\n", s.Name)
	if meta.Version != "" {
		fmt.Fprintf(w, "Version:  %s\n", meta.Version)
	}
	if meta.License != "" {
		fmt.Fprintf(w, "License:  %s\n", meta.License)
	}
	if desc := strings.TrimSpace(meta.Description); desc != "" {
		fmt.Fprintf(w, "Summary:  %s\n", strings.ReplaceAll(desc, "\n", " "))
	}

	if triggers := meta.TriggerPatterns(); len(triggers) > 0 {
		fmt.Fprintln(w, "\nTriggers:")
		for _, t := range triggers {
			fmt.Fprintf(w, "  - %s\n", t)
		}
	}
	if len(meta.AllowedTools) > 0 {
		fmt.Fprintf(w, "\nAllowed Tools: %s\n", strings.Join(meta.AllowedTools, ", "))
	}

	matched := ranking.Match(s, keywords)
	fmt.Fprintf(w, "\nScore: %d\n", len(matched))
	if len(matched) > 0 {
		fmt.Fprintf(w, "Matched keywords: %s\n", strings.Join(matched, ", "))
	} else {
		fmt.Fprintln(w, "Matched keywords: (none, not pinned for this repo)")
	}
	fmt.Fprintf(w, "\nPath: %s\n", s.Path)
	if s.RealPath != "" && s.RealPath != s.Path {
		fmt.Fprintf(w, "Real path: %s\n", s.RealPath)
	}
}
