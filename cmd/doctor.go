package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kamusis/skills-scout/internal/agentsmd"
	"github.com/kamusis/skills-scout/internal/catalog"
	"github.com/kamusis/skills-scout/internal/config"
	"github.com/kamusis/skills-scout/internal/signals"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the repository, skill roots and target document",
	Long: `Check that skills-scout can read the repository config, find skills under
the configured roots and safely update the target document.
Run this command when the pinned section looks wrong.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// doctor accumulates check results for one run.
type doctor struct {
	out   io.Writer
	errw  io.Writer
	allOK bool
}

func (d *doctor) fail(format string, args ...any) {
	printErr(d.errw, "", fmt.Sprintf(format, args...))
	d.allOK = false
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	d := &doctor{out: cmd.OutOrStdout(), errw: cmd.ErrOrStderr(), allOK: true}
	env := scoutEnv

	printSection(d.out, "skills-scout doctor")
	fmt.Fprintln(d.out)

	// ── Repository ───────────────────────────────────────────────────────────
	printCheck(d.out, "repository")
	repo, err := resolveRepo(env, flagRepo)
	repoOK := false
	if err != nil {
		d.fail("%v", err)
	} else if info, err := os.Stat(repo); err != nil || !info.IsDir() {
		d.fail("not a directory: %s", repo)
	} else {
		printOK(d.out, "", repo)
		repoOK = true
	}
	fmt.Fprintln(d.out)

	if !repoOK {
		return d.summary()
	}

	// ── Repository config ────────────────────────────────────────────────────
	printCheck(d.out, config.RepoConfigName)
	cfg := d.checkConfig(repo)
	fmt.Fprintln(d.out)

	// ── Skill roots ──────────────────────────────────────────────────────────
	printCheck(d.out, "skill roots")
	d.checkSkillRoots(env, repo, cfg)
	fmt.Fprintln(d.out)

	// ── Signals ──────────────────────────────────────────────────────────────
	printCheck(d.out, "signals")
	keywords := signals.NewCollector(repo, signals.WithAliases(cfg.Aliases)).Collect()
	if keywords.Len() == 0 {
		printWarn(d.out, "", "no repository signals found; nothing will be pinned")
	} else {
		printOK(d.out, "", fmt.Sprintf("%d keyword(s) inferred", keywords.Len()))
	}
	fmt.Fprintln(d.out)

	// ── Target document ──────────────────────────────────────────────────────
	target := cfg.EffectiveTarget()
	printCheck(d.out, target)
	d.checkTarget(filepath.Join(repo, target))
	fmt.Fprintln(d.out)

	return d.summary()
}

func (d *doctor) checkConfig(repo string) *config.RepoConfig {
	path := config.RepoConfigPath(repo)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		printSkip(d.out, "", "not present, defaults in use")
		return &config.RepoConfig{}
	}
	cfg, err := config.LoadRepoConfig(repo)
	if err != nil {
		d.fail("%v", err)
		return &config.RepoConfig{}
	}
	printOK(d.out, "", fmt.Sprintf("valid YAML, %d skill root(s), %d alias(es), target %s",
		len(cfg.SkillRoots), len(cfg.Aliases), cfg.EffectiveTarget()))
	return cfg
}

func (d *doctor) checkSkillRoots(env config.Env, repo string, cfg *config.RepoConfig) {
	roots, err := resolveSkillRoots(env, repo, flagSkillRoots, cfg)
	if err != nil {
		d.fail("%v", err)
		return
	}
	if roots == nil {
		if roots, err = config.DefaultSkillRoots(env, repo); err != nil {
			d.fail("cannot determine default skill roots: %v", err)
			return
		}
	}

	// Counts are cumulative so a skill shared by several roots is credited
	// to the first one only, as in a real run.
	var loaded []string
	total := 0
	for _, root := range roots {
		abs, err := config.ResolvePath(env, root)
		if err != nil {
			d.fail("[%s] %v", root, err)
			continue
		}
		if _, err := os.Stat(abs); err != nil {
			printMiss(d.out, abs, "not found")
			continue
		}
		loaded = append(loaded, abs)
		n := len(catalog.Load(loaded, env)) - total
		total += n
		printOK(d.out, abs, fmt.Sprintf("%d skill(s)", n))
	}
	if total == 0 {
		printWarn(d.out, "", "no skills found under any root")
	}
}

func (d *doctor) checkTarget(path string) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		printSkip(d.out, "", "not present, will be created on --write")
		return
	}
	if err != nil {
		d.fail("cannot read %s: %v", path, err)
		return
	}
	mc := agentsmd.CountMarkers(string(b))
	switch {
	case !mc.Valid():
		d.fail("found %d start and %d end marker(s); expected one ordered pair. Remove the extra markers by hand.", mc.Start, mc.End)
	case mc.Start == 0:
		printOK(d.out, "", "no generated section yet")
	default:
		printOK(d.out, "", "one generated section")
	}
}

func (d *doctor) summary() error {
	fmt.Fprintln(d.out, "===================")
	if d.allOK {
		fmt.Fprintln(d.out, "✓  All checks passed.")
		return nil
	}
	fmt.Fprintln(d.errw, "✗  One or more checks failed. See details above.")
	return fmt.Errorf("doctor found issues")
}
