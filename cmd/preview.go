package cmd

import (
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	"github.com/kamusis/skills-scout/internal/logging"
)

const defaultPreviewWidth = 100

// renderPreview formats markdown for the terminal. It reports false when
// stdout is not a terminal or rendering fails, so callers print raw text.
func renderPreview(content string) (string, bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return "", false
	}
	width := defaultPreviewWidth
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		width = w
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		logging.Debug("preview renderer unavailable", "error", err)
		return "", false
	}
	out, err := r.Render(content)
	if err != nil {
		logging.Debug("preview render failed", "error", err)
		return "", false
	}
	return out, true
}
