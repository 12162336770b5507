package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantName string
		wantDesc string
		wantErr  error
	}{
		{
			name:     "basic",
			content:  "---\nname: playwright-expert\ndescription: Use when a repo uses Playwright.\n---\n# Body\n",
			wantName: "playwright-expert",
			wantDesc: "Use when a repo uses Playwright.",
		},
		{
			name:     "quoted values",
			content:  "---\nname: \"quoted\"\ndescription: ' spaced '\n---\n",
			wantName: "quoted",
			wantDesc: "spaced",
		},
		{
			name:     "unmatched quote kept",
			content:  "---\nname: it's\n---\n",
			wantName: "it's",
		},
		{
			name:     "crlf and bom",
			content:  "\ufeff---\r\nname: win\r\ndescription: crlf  \r\n---\r\nbody",
			wantName: "win",
			wantDesc: "crlf",
		},
		{
			name:     "description optional",
			content:  "---\nname: solo\n---",
			wantName: "solo",
		},
		{
			name:     "later key wins",
			content:  "---\nname: first\nname: second\n---\n",
			wantName: "second",
		},
		{
			name:     "non-field lines ignored",
			content:  "---\nname: tools\n  - nested\n# comment\ndescription: x\n---\n",
			wantName: "tools",
			wantDesc: "x",
		},
		{
			name:    "no header",
			content: "# Just markdown\nname: nope\n",
			wantErr: ErrMissingHeader,
		},
		{
			name:    "unterminated",
			content: "---\nname: open\n",
			wantErr: ErrMissingHeader,
		},
		{
			name:    "empty header",
			content: "---\n---\nbody\n",
			wantErr: ErrMissingName,
		},
		{
			name:    "blank name",
			content: "---\nname: \"  \"\ndescription: d\n---\n",
			wantErr: ErrMissingName,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := ParseHeader(tt.content)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, h.Name)
			assert.Equal(t, tt.wantDesc, h.Description)
		})
	}
}

func TestParseHeader_ClosingLineMustBeExact(t *testing.T) {
	h, err := ParseHeader("---\nname: a\n----\ndescription: b\n---\n")
	require.NoError(t, err)
	assert.Equal(t, "a", h.Name)
	assert.Equal(t, "b", h.Description)
}
