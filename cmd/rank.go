package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	scouterrors "github.com/kamusis/skills-scout/internal/errors"
	"github.com/kamusis/skills-scout/internal/pipeline"
	"github.com/kamusis/skills-scout/internal/ranking"
)

var (
	flagRankK      int
	flagRankFormat string
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "List catalog skills ranked against the repository",
	Long: `Score every skill in the catalog against the repository's keywords and
list the matches, best first, with the keywords each one matched.

Example:
  skills-scout rank --k 5
  skills-scout rank --format json | jq .name`,
	Args: cobra.NoArgs,
	RunE: runRank,
}

func init() {
	rankCmd.Flags().IntVar(&flagRankK, "k", 0, "Number of results to show (0 = all)")
	rankCmd.Flags().StringVar(&flagRankFormat, "format", "text", "Output format: text or json (one object per line)")
	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	if flagRankFormat != "text" && flagRankFormat != "json" {
		return scouterrors.ValidationError(fmt.Sprintf("unknown format %q", flagRankFormat), nil)
	}
	opts, err := buildOptions(scoutEnv, false)
	if err != nil {
		return err
	}
	a, err := pipeline.Analyze(opts)
	if err != nil {
		return err
	}

	results := a.Ranked
	if flagRankK > 0 && len(results) > flagRankK {
		results = results[:flagRankK]
	}

	w := cmd.OutOrStdout()
	if flagRankFormat == "json" {
		return writeRankJSON(w, results)
	}
	writeRankTable(w, results, len(a.Ranked), len(a.Skills))
	return nil
}

// rankRecord is one JSON line of `rank --format json`.
type rankRecord struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Score       int      `json:"score"`
	Matched     []string `json:"matched"`
	File        string   `json:"file"`
}

func writeRankJSON(w io.Writer, results []ranking.Scored) error {
	enc := json.NewEncoder(w)
	for _, r := range results {
		rec := rankRecord{
			Name:        r.Skill.Name,
			Description: r.Skill.Description,
			Score:       r.Score,
			Matched:     r.Matched,
			File:        r.Skill.Path,
		}
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("cannot encode %s: %w", r.Skill.Name, err)
		}
	}
	return nil
}

func writeRankTable(w io.Writer, results []ranking.Scored, matched, total int) {
	fmt.Fprintf(w, "Results (%d of %d skills matched, %d shown):\n", matched, total, len(results))
	if len(results) == 0 {
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  #\tSCORE\tNAME\tMATCHED\tFILE")
	for i, r := range results {
		fmt.Fprintf(tw, "  %d\t%d\t%s\t%s\t%s\n", i+1, r.Score, r.Skill.Name, strings.Join(r.Matched, ","), r.Skill.Path)
	}
	_ = tw.Flush()
}
