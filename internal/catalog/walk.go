package catalog

import (
	"os"
	"path/filepath"

	"github.com/kamusis/skills-scout/internal/logging"
)

// SkillFileName is the document name that marks a skill.
const SkillFileName = "SKILL.md"

// skippedDirs are never descended into.
var skippedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
}

// findSkillFiles walks root with an explicit stack and returns every regular
// file named SKILL.md. Symlinked entries are neither followed nor collected,
// and unreadable directories are skipped.
func findSkillFiles(root string) []string {
	var out []string
	stack := []string{root}
	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			logging.Debug("skipping unreadable directory", "path", dir, "error", err)
			continue
		}
		for _, e := range entries {
			full := filepath.Join(dir, e.Name())
			switch {
			case e.IsDir():
				if !skippedDirs[e.Name()] {
					stack = append(stack, full)
				}
			case e.Type().IsRegular() && e.Name() == SkillFileName:
				out = append(out, full)
			}
		}
	}
	return out
}
