package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMetadata_YAML(t *testing.T) {
	p := filepath.Join(t.TempDir(), SkillFileName)
	body := "---\nname: playwright-expert\ndescription: >\n  Use for end-to-end tests.\nversion: 1.2.0\nlicense: MIT\nallowed-tools: [Bash, Read]\ntriggers:\n  - e2e\n  - pattern: \"*.spec.ts\"\n    description: spec files\n---\nbody\n"
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))

	meta, err := ReadMetadata(p)
	require.NoError(t, err)
	assert.Equal(t, "playwright-expert", meta.Name)
	assert.Equal(t, "Use for end-to-end tests.", meta.Description)
	assert.Equal(t, "1.2.0", meta.Version)
	assert.Equal(t, "MIT", meta.License)
	assert.Equal(t, []string{"Bash", "Read"}, meta.AllowedTools)
	assert.Equal(t, []string{"e2e", "*.spec.ts"}, meta.TriggerPatterns())
}

func TestReadMetadata_FallsBackOnInvalidYAML(t *testing.T) {
	p := filepath.Join(t.TempDir(), SkillFileName)
	require.NoError(t, os.WriteFile(p, []byte("---\nname: odd\ndescription: has: colons: [unbalanced\n---\n"), 0o644))

	meta, err := ReadMetadata(p)
	require.NoError(t, err)
	assert.Equal(t, "odd", meta.Name)
	assert.Equal(t, "has: colons: [unbalanced", meta.Description)
	assert.Nil(t, meta.TriggerPatterns())
}

func TestReadMetadata_MissingHeader(t *testing.T) {
	p := filepath.Join(t.TempDir(), SkillFileName)
	require.NoError(t, os.WriteFile(p, []byte("plain\n"), 0o644))

	_, err := ReadMetadata(p)
	assert.ErrorIs(t, err, ErrMissingHeader)
}
