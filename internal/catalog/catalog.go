// Package catalog discovers and parses SKILL.md documents under a set of
// catalog roots.
package catalog

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/kamusis/skills-scout/internal/config"
	"github.com/kamusis/skills-scout/internal/logging"
)

// Skill is one parsed skill document.
type Skill struct {
	Name        string
	Description string
	// Path is the location the file was discovered at.
	Path string
	// RealPath is Path with symlinks resolved; it identifies the document.
	RealPath string
}

// Load walks each root in order and returns the skills found, in discovery
// order. A document reachable through several roots is returned once.
// Missing roots, unreadable files and documents without a usable header are
// skipped.
func Load(roots []string, env config.Env) []Skill {
	seen := make(map[string]bool)
	var out []Skill

	for _, root := range roots {
		if strings.TrimSpace(root) == "" {
			continue
		}
		abs, err := config.ResolvePath(env, root)
		if err != nil {
			logging.Debug("skipping skill root", "root", root, "error", err)
			continue
		}
		if _, err := os.Stat(abs); err != nil {
			logging.Debug("skill root not found", "root", abs)
			continue
		}

		for _, file := range findSkillFiles(abs) {
			resolved, err := filepath.EvalSymlinks(file)
			if err != nil {
				resolved = file
			}
			if seen[resolved] {
				logging.Debug("skipping duplicate skill", "path", file, "real", resolved)
				continue
			}
			seen[resolved] = true

			s, err := loadSkill(file, resolved)
			if err != nil {
				logging.Debug("skipping skill", "path", file, "error", err)
				continue
			}
			out = append(out, s)
		}
	}
	return out
}

func loadSkill(path, realPath string) (Skill, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Skill{}, err
	}
	h, err := ParseHeader(string(b))
	if err != nil {
		return Skill{}, err
	}
	return Skill{
		Name:        h.Name,
		Description: h.Description,
		Path:        path,
		RealPath:    realPath,
	}, nil
}

// Find returns the skills whose name equals name. When there is none, it
// falls back to a case-insensitive substring match.
func Find(skills []Skill, name string) []Skill {
	var out []Skill
	for _, s := range skills {
		if s.Name == name {
			out = append(out, s)
		}
	}
	if len(out) > 0 {
		return out
	}
	lower := strings.ToLower(name)
	for _, s := range skills {
		if strings.Contains(strings.ToLower(s.Name), lower) {
			out = append(out, s)
		}
	}
	return out
}
