// Package signals infers technology keywords from a repository's files.
package signals

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/kamusis/skills-scout/internal/logging"
)

// ciMarker is a path whose presence says which CI system a repo uses.
type ciMarker struct {
	path   string
	tokens []string
}

var ciMarkers = []ciMarker{
	{".github/workflows", []string{"github", "actions", "workflow", "ci"}},
	{".gitlab-ci.yml", []string{"gitlab", "ci"}},
	{".circleci", []string{"circleci", "ci"}},
}

var lockfiles = []string{"pnpm-lock.yaml", "yarn.lock", "package-lock.json"}

var (
	toolConfigStems = []string{"playwright.config", "next.config", "vite.config", "cypress.config"}
	toolConfigExts  = []string{".js", ".cjs", ".mjs", ".ts"}
)

// toolConfigPattern matches every stem/extension pair at the repo root.
var toolConfigPattern = "{" + strings.Join(toolConfigStems, ",") + "}{" + strings.Join(toolConfigExts, ",") + "}"

// Collector gathers keywords from a single repository root. Every probe is
// best-effort: a missing or unreadable file contributes nothing.
type Collector struct {
	root    string
	aliases []AliasRule
}

// Option configures a Collector.
type Option func(*Collector)

// WithAliases appends exact-match alias rules, keyed by dependency name.
func WithAliases(extra map[string][]string) Option {
	return func(c *Collector) {
		names := make([]string, 0, len(extra))
		for name := range extra {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			c.aliases = append(c.aliases, AliasRule{
				Exact:  strings.ToLower(strings.TrimSpace(name)),
				Tokens: extra[name],
			})
		}
	}
}

// NewCollector creates a collector for repoRoot using DefaultAliases.
func NewCollector(repoRoot string, opts ...Option) *Collector {
	c := &Collector{
		root:    repoRoot,
		aliases: append([]AliasRule(nil), DefaultAliases...),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect probes the repository and returns the union of all signals.
func (c *Collector) Collect() KeywordSet {
	logging.Debug("collecting repository signals", "path", c.root)

	set := NewKeywordSet()
	c.collectManifests(set)

	for _, m := range ciMarkers {
		if c.exists(m.path) {
			c.add(set, m.path, m.tokens)
		}
	}

	for _, name := range lockfiles {
		if c.exists(name) {
			prefix, _, _ := strings.Cut(name, "-")
			c.add(set, name, []string{prefix})
		}
	}

	for _, match := range c.toolConfigs() {
		stem := strings.TrimSuffix(match, path.Ext(match))
		c.add(set, match, Tokenize(stem))
	}

	logging.Debug("repository signals collected", "path", c.root, "keywords", set.Len())
	return set
}

func (c *Collector) add(set KeywordSet, source string, tokens []string) {
	if len(tokens) == 0 {
		return
	}
	logging.Debug("signal", "source", source, "tokens", tokens)
	set.Add(tokens...)
}

func (c *Collector) toolConfigs() []string {
	matches, err := doublestar.Glob(os.DirFS(c.root), toolConfigPattern)
	if err != nil {
		logging.Debug("tool config glob failed", "path", c.root, "error", err)
		return nil
	}
	sort.Strings(matches)
	return matches
}

// resolve returns the on-disk path of a repo-relative probe. Symlinks are
// followed wherever they point, the same as for tool configs.
func (c *Collector) resolve(rel string) string {
	return filepath.Join(c.root, filepath.FromSlash(rel))
}

func (c *Collector) exists(rel string) bool {
	_, err := os.Stat(c.resolve(rel))
	return err == nil
}

func (c *Collector) readFile(rel string) ([]byte, bool) {
	p := c.resolve(rel)
	data, err := os.ReadFile(p)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logging.Debug("cannot read manifest", "path", p, "error", err)
		}
		return nil, false
	}
	return data, true
}
