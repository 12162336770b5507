package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticEnv(t *testing.T) {
	env := StaticEnv{Home: "/home/dev", Cwd: "/work", Vars: map[string]string{"A": "1"}}

	home, err := env.HomeDir()
	require.NoError(t, err)
	assert.Equal(t, "/home/dev", home)
	assert.Equal(t, "1", env.Getenv("A"))
	assert.Empty(t, env.Getenv("B"))

	_, err = StaticEnv{}.HomeDir()
	assert.Error(t, err)
	_, err = StaticEnv{}.Getwd()
	assert.Error(t, err)
}

func TestResolvePath(t *testing.T) {
	home := t.TempDir()
	cwd := t.TempDir()
	env := StaticEnv{Home: home, Cwd: cwd}

	tests := []struct {
		in   string
		want string
	}{
		{"~/skills", filepath.Join(home, "skills")},
		{"~", home},
		{"rel/dir", filepath.Join(cwd, "rel", "dir")},
		{filepath.Join(cwd, "abs", "..", "x"), filepath.Join(cwd, "x")},
	}
	for _, tt := range tests {
		got, err := ResolvePath(env, tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
