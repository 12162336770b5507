package cmd

import (
	"path/filepath"

	"github.com/kamusis/skills-scout/internal/agentsmd"
	"github.com/kamusis/skills-scout/internal/config"
	scouterrors "github.com/kamusis/skills-scout/internal/errors"
	"github.com/kamusis/skills-scout/internal/logging"
	"github.com/kamusis/skills-scout/internal/pipeline"
)

// scoutEnv is the environment every command resolves paths against.
var scoutEnv config.Env = config.OSEnv{}

// resolveRepo returns the absolute repository root from --repo or the
// working directory.
func resolveRepo(env config.Env, repoFlag string) (string, error) {
	if repoFlag == "" {
		repoFlag = "."
	}
	repo, err := config.ResolvePath(env, repoFlag)
	if err != nil {
		return "", scouterrors.ValidationError("cannot resolve repository root", err)
	}
	return repo, nil
}

// resolveSkillRoots applies root precedence: --skill-root flags, then
// SKILLS_SCOUT_SKILL_ROOTS, then skill_roots from the repository config.
// A nil result means the built-in defaults. Config roots that are relative
// are taken relative to the repository.
func resolveSkillRoots(env config.Env, repo string, flagRoots []string, cfg *config.RepoConfig) ([]string, error) {
	if len(flagRoots) > 0 {
		return flagRoots, nil
	}
	envRoots, err := config.SkillRootsFromEnv(env)
	if err != nil {
		return nil, scouterrors.ConfigError("cannot read "+config.EnvSkillRoots, err)
	}
	if len(envRoots) > 0 {
		return envRoots, nil
	}
	if cfg == nil || len(cfg.SkillRoots) == 0 {
		return nil, nil
	}
	roots := make([]string, 0, len(cfg.SkillRoots))
	for _, r := range cfg.SkillRoots {
		p, err := config.ExpandPath(env, r)
		if err != nil {
			return nil, scouterrors.ConfigError("invalid skill root "+r, err)
		}
		if !filepath.IsAbs(p) {
			p = filepath.Join(repo, p)
		}
		roots = append(roots, p)
	}
	return roots, nil
}

// buildOptions assembles pipeline options from the shared flags.
func buildOptions(env config.Env, write bool) (pipeline.Options, error) {
	repo, err := resolveRepo(env, flagRepo)
	if err != nil {
		return pipeline.Options{}, err
	}
	cfg, err := config.LoadRepoConfig(repo)
	if err != nil {
		return pipeline.Options{}, scouterrors.ConfigError("cannot load repository config", err)
	}
	roots, err := resolveSkillRoots(env, repo, flagSkillRoots, cfg)
	if err != nil {
		return pipeline.Options{}, err
	}

	opts := pipeline.Options{
		RepoRoot:   repo,
		SkillRoots: roots,
		Target:     cfg.EffectiveTarget(),
		Write:      write,
		Aliases:    cfg.Aliases,
		Env:        env,
	}
	if write {
		lockDir, err := agentsmd.DefaultLockDir()
		if err != nil {
			logging.Warn("writing without a lock", "error", err)
		}
		opts.Writer = agentsmd.Writer{LockDir: lockDir}
	}
	return opts, nil
}
