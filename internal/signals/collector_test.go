package signals

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, body string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
}

func TestCollect_PlaywrightRepo(t *testing.T) {
	repo := t.TempDir()
	writeFile(t, repo, "package.json", `{"devDependencies": {"@playwright/test": "^1.0.0", "next": "^14.0.0"}}`)
	writeFile(t, repo, ".github/workflows/ci.yml", "name: ci\n")

	got := NewCollector(repo).Collect()

	for _, want := range []string{"playwright", "e2e", "test", "next", "nextjs", "vercel", "github", "actions", "workflow", "ci"} {
		assert.True(t, got.Has(want), "missing %q in %v", want, got.Sorted())
	}
}

func TestCollect_EmptyRepo(t *testing.T) {
	assert.Equal(t, 0, NewCollector(t.TempDir()).Collect().Len())
}

func TestCollect_MissingRepo(t *testing.T) {
	assert.Equal(t, 0, NewCollector(filepath.Join(t.TempDir(), "nope")).Collect().Len())
}

func TestCollect_InvalidPackageJSONIgnored(t *testing.T) {
	repo := t.TempDir()
	writeFile(t, repo, "package.json", `{"dependencies": {`)
	writeFile(t, repo, "pnpm-lock.yaml", "lockfileVersion: 9\n")

	got := NewCollector(repo).Collect()
	assert.Equal(t, []string{"pnpm"}, got.Sorted())
}

func TestCollect_WrongSectionTypeSkipped(t *testing.T) {
	repo := t.TempDir()
	writeFile(t, repo, "package.json", `{"dependencies": ["react"], "devDependencies": {"vitest": "1"}}`)

	got := NewCollector(repo).Collect()
	assert.Equal(t, []string{"vitest"}, got.Sorted())
}

func TestCollect_Lockfiles(t *testing.T) {
	repo := t.TempDir()
	writeFile(t, repo, "yarn.lock", "")
	writeFile(t, repo, "package-lock.json", "{}")

	got := NewCollector(repo).Collect()
	assert.Equal(t, []string{"package", "yarn.lock"}, got.Sorted())
}

func TestCollect_ToolConfigs(t *testing.T) {
	repo := t.TempDir()
	writeFile(t, repo, "vite.config.ts", "export default {}\n")
	writeFile(t, repo, "cypress.config.cjs", "module.exports = {}\n")
	writeFile(t, repo, "webpack.config.js", "module.exports = {}\n")
	writeFile(t, repo, "nested/next.config.js", "module.exports = {}\n")

	got := NewCollector(repo).Collect()
	assert.Equal(t, []string{"config", "cypress", "vite"}, got.Sorted())
}

func TestCollect_OtherCISystems(t *testing.T) {
	repo := t.TempDir()
	writeFile(t, repo, ".gitlab-ci.yml", "stages: [test]\n")
	writeFile(t, repo, ".circleci/config.yml", "version: 2.1\n")

	got := NewCollector(repo).Collect()
	assert.Equal(t, []string{"ci", "circleci", "gitlab"}, got.Sorted())
}

func TestCollect_ExtraManifests(t *testing.T) {
	repo := t.TempDir()
	writeFile(t, repo, "Cargo.toml", "[package]\nname = \"x\"\n\n[dependencies]\ntokio = { version = \"1\" }\n\n[dev-dependencies]\ncriterion = \"0.5\"\n")
	writeFile(t, repo, "pyproject.toml", "[project]\nname = \"x\"\ndependencies = [\"Django>=5.0\", \"pytest[cov] ; python_version > '3.9'\"]\n\n[tool.poetry.dependencies]\npython = \"^3.11\"\nfastapi = \"*\"\n")
	writeFile(t, repo, "go.mod", "module example.com/x\n\ngo 1.22\n\nrequire (\n\tgithub.com/spf13/cobra v1.10.2\n\tgopkg.in/yaml.v3 v3.0.1\n\tgithub.com/jackc/pgx/v5 v5.8.0\n\tgithub.com/kr/text v0.2.0 // indirect\n)\n")

	got := NewCollector(repo).Collect()

	for _, want := range []string{"tokio", "criterion", "django", "pytest", "fastapi", "cobra", "yaml", "pgx"} {
		assert.True(t, got.Has(want), "missing %q in %v", want, got.Sorted())
	}
	for _, absent := range []string{"python", "github", "com", "text", "jackc"} {
		assert.False(t, got.Has(absent), "unexpected %q", absent)
	}
}

func TestCollect_BrokenManifestDoesNotAffectOthers(t *testing.T) {
	repo := t.TempDir()
	writeFile(t, repo, "Cargo.toml", "[dependencies\n")
	writeFile(t, repo, "package.json", `{"dependencies": {"express": "4"}}`)

	got := NewCollector(repo).Collect()
	assert.Equal(t, []string{"express"}, got.Sorted())
}

func TestCollect_ConfiguredAliases(t *testing.T) {
	repo := t.TempDir()
	writeFile(t, repo, "package.json", `{"dependencies": {"@tanstack/react-query": "5"}}`)

	got := NewCollector(repo, WithAliases(map[string][]string{
		"@TanStack/react-query": {"data-fetching"},
	})).Collect()

	assert.True(t, got.Has("data-fetching"))
	assert.True(t, got.Has("tanstack"))
}

func TestCollect_FollowsSymlinksOutsideRepo(t *testing.T) {
	shared := t.TempDir()
	writeFile(t, shared, "package.json", `{"devDependencies": {"@playwright/test": "1"}}`)
	writeFile(t, shared, "workflows/ci.yml", "name: ci\n")
	writeFile(t, shared, "vite.config.ts", "export default {}\n")
	repo := t.TempDir()
	links := map[string]string{
		"package.json":   filepath.Join(shared, "package.json"),
		".github":        shared,
		"vite.config.ts": filepath.Join(shared, "vite.config.ts"),
	}
	for name, dest := range links {
		if err := os.Symlink(dest, filepath.Join(repo, name)); err != nil {
			t.Skipf("symlinks unavailable: %v", err)
		}
	}

	got := NewCollector(repo).Collect()
	for _, want := range []string{"playwright", "e2e", "github", "ci", "vite", "config"} {
		assert.True(t, got.Has(want), "missing %q", want)
	}
}
