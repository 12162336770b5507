package errors

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain", fmt.Errorf("boom"), ExitGeneralError},
		{"config", ConfigError("bad yaml", fmt.Errorf("line 3")), ExitConfigError},
		{"write wrapped", fmt.Errorf("pin: %w", WriteError("AGENTS.md", fs.ErrPermission)), ExitWriteError},
		{"not found", SkillNotFound("playwright-expert"), ExitSkillNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetExitCode(tt.err))
		})
	}
}

func TestScoutErrorMessageAndUnwrap(t *testing.T) {
	err := WriteError("/repo/AGENTS.md", fs.ErrPermission)

	assert.Equal(t, "cannot update /repo/AGENTS.md: permission denied", err.Error())
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Equal(t, "skill not found: x", SkillNotFound("x").Error())
}
