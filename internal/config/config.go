package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// RepoConfigName is the optional per-repository settings file.
	RepoConfigName = ".skills-scout.yaml"

	// DefaultTarget is the instructions document updated in the repo root.
	DefaultTarget = "AGENTS.md"

	// EnvSkillRoots lists catalog roots separated by the OS path-list separator.
	EnvSkillRoots = "SKILLS_SCOUT_SKILL_ROOTS"
)

// RepoConfig is the in-memory representation of <repo>/.skills-scout.yaml.
type RepoConfig struct {
	SkillRoots []string            `yaml:"skill_roots,omitempty"`
	Target     string              `yaml:"target,omitempty"`
	Aliases    map[string][]string `yaml:"aliases,omitempty"`
}

// EffectiveTarget returns the configured target file name or DefaultTarget.
func (c *RepoConfig) EffectiveTarget() string {
	if c == nil || strings.TrimSpace(c.Target) == "" {
		return DefaultTarget
	}
	return strings.TrimSpace(c.Target)
}

// RepoConfigPath returns the settings file path for repo.
func RepoConfigPath(repo string) string {
	return filepath.Join(repo, RepoConfigName)
}

// LoadRepoConfig reads <repo>/.skills-scout.yaml. A missing file yields an
// empty config.
func LoadRepoConfig(repo string) (*RepoConfig, error) {
	path := RepoConfigPath(repo)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &RepoConfig{}, nil
		}
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	var cfg RepoConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	return &cfg, nil
}

// ScoutDir returns ~/.skills-scout.
func ScoutDir(env Env) (string, error) {
	home, err := env.HomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".skills-scout"), nil
}

// ExpandPath expands a leading ~ to the home directory reported by env.
func ExpandPath(env Env, p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := env.HomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// ResolvePath expands ~ and makes p absolute against env's working directory.
func ResolvePath(env Env, p string) (string, error) {
	p, err := ExpandPath(env, p)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p), nil
	}
	cwd, err := env.Getwd()
	if err != nil {
		return "", fmt.Errorf("cannot resolve %s: %w", p, err)
	}
	return filepath.Join(cwd, p), nil
}

// DefaultSkillRoots returns the user-level and repo-level catalog roots, in
// that order, without duplicates.
func DefaultSkillRoots(env Env, repo string) ([]string, error) {
	home, err := env.HomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot determine home directory: %w", err)
	}
	return uniqStrings([]string{
		filepath.Join(home, ".codex", "skills"),
		filepath.Join(home, ".agents", "skills"),
		filepath.Join(repo, ".codex", "skills"),
		filepath.Join(repo, ".agents", "skills"),
	}), nil
}

// SkillRootsFromEnv returns the roots listed in SKILLS_SCOUT_SKILL_ROOTS,
// from the process environment or ~/.skills-scout/.env.
func SkillRootsFromEnv(env Env) ([]string, error) {
	v, err := GetConfigValue(env, EnvSkillRoots)
	if err != nil {
		return nil, err
	}
	var roots []string
	for _, p := range filepath.SplitList(v) {
		if p = strings.TrimSpace(p); p != "" {
			roots = append(roots, p)
		}
	}
	return uniqStrings(roots), nil
}

func uniqStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
