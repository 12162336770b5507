// Package pipeline runs a full pin pass: collect repository keywords, load
// and rank the skill catalog, and merge the rendered block into the target
// document.
package pipeline

import (
	"fmt"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/kamusis/skills-scout/internal/agentsmd"
	"github.com/kamusis/skills-scout/internal/catalog"
	"github.com/kamusis/skills-scout/internal/config"
	scouterrors "github.com/kamusis/skills-scout/internal/errors"
	"github.com/kamusis/skills-scout/internal/logging"
	"github.com/kamusis/skills-scout/internal/ranking"
	"github.com/kamusis/skills-scout/internal/signals"
)

var validate = validator.New()

// Options configures a run. RepoRoot must already be resolved to an
// existing directory.
type Options struct {
	RepoRoot string `validate:"required,dir"`
	// SkillRoots overrides the default catalog roots when non-empty.
	SkillRoots []string
	// Target is the document file name inside RepoRoot.
	Target string `validate:"required,excludesall=/\\"`
	Write  bool
	// Aliases adds exact-match dependency aliases to the built-in table.
	Aliases map[string][]string
	Env     config.Env
	Writer  agentsmd.Writer
}

// Validate checks the options before a run.
func (o *Options) Validate() error {
	if o.Env == nil {
		return scouterrors.ValidationError("invalid run options", fmt.Errorf("no environment"))
	}
	if err := validate.Struct(o); err != nil {
		return scouterrors.ValidationError("invalid run options", err)
	}
	return nil
}

// Result describes what a run produced.
type Result struct {
	TargetPath string
	// Content is the full document after the merge.
	Content string
	// Wrote is true when the run was asked to write.
	Wrote bool
	// Changed is true when the file on disk was replaced.
	Changed  bool
	Keywords signals.KeywordSet
	Ranked   []ranking.Scored
}

// Pinned returns the names of the pinned skills in output order.
func (r *Result) Pinned() []string {
	out := make([]string, 0, len(r.Ranked))
	for _, s := range r.Ranked {
		out = append(out, s.Skill.Name)
	}
	return out
}

// Analysis is the keyword and ranking stage of a run, without rendering.
type Analysis struct {
	Keywords signals.KeywordSet
	Skills   []catalog.Skill
	Ranked   []ranking.Scored
}

// Analyze collects keywords, loads the catalog and ranks it.
func Analyze(opts Options) (*Analysis, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	roots, err := skillRoots(opts)
	if err != nil {
		return nil, err
	}

	keywords := signals.NewCollector(opts.RepoRoot, signals.WithAliases(opts.Aliases)).Collect()
	skills := catalog.Load(roots, opts.Env)
	ranked := ranking.Rank(skills, keywords)

	logging.Debug("analysis complete",
		"repo", opts.RepoRoot,
		"keywords", keywords.Len(),
		"skills", len(skills),
		"matched", len(ranked),
	)
	return &Analysis{Keywords: keywords, Skills: skills, Ranked: ranked}, nil
}

// Run performs a full pass and, when opts.Write is set, updates the target.
func Run(opts Options) (*Result, error) {
	a, err := Analyze(opts)
	if err != nil {
		return nil, err
	}

	target := filepath.Join(opts.RepoRoot, opts.Target)
	existing, err := agentsmd.ReadDocument(target)
	if err != nil {
		return nil, scouterrors.WriteError(target, err)
	}

	block := agentsmd.BuildBlock(agentsmd.RenderSection(ranking.Skills(a.Ranked)))
	res := &Result{
		TargetPath: target,
		Content:    agentsmd.Upsert(existing, block),
		Wrote:      opts.Write,
		Keywords:   a.Keywords,
		Ranked:     a.Ranked,
	}
	if !opts.Write {
		return res, nil
	}

	changed, err := opts.Writer.Write(target, res.Content)
	if err != nil {
		return nil, scouterrors.WriteError(target, err)
	}
	res.Changed = changed
	return res, nil
}

func skillRoots(opts Options) ([]string, error) {
	if len(opts.SkillRoots) > 0 {
		return opts.SkillRoots, nil
	}
	roots, err := config.DefaultSkillRoots(opts.Env, opts.RepoRoot)
	if err != nil {
		return nil, scouterrors.ConfigError("cannot determine default skill roots", err)
	}
	return roots, nil
}
