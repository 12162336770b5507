// Package agentsmd renders the pinned-skills section and merges it into a
// project instructions document.
package agentsmd

import (
	"strings"
	"unicode"

	"github.com/kamusis/skills-scout/internal/catalog"
)

const (
	StartMarker = "<!-- skills-scout:start -->"
	EndMarker   = "<!-- skills-scout:end -->"

	// InstructionsCloseTag is the insertion anchor used when no block exists yet.
	InstructionsCloseTag = "</INSTRUCTIONS>"

	// DefaultDocument is the skeleton used when the target file does not exist.
	DefaultDocument = "<INSTRUCTIONS>\n\n# Repo Agent Instructions\n\n</INSTRUCTIONS>\n"
)

const (
	sectionHeading = "## Skills (Auto-Pinned by skills-scout)"
	sectionNotice  = "This section is generated. Re-run pinning to update."
	listHeading    = "### Available skills"
	emptyBullet    = "- (none matched this repo)"
)

// RenderSection formats skills, in the given order, as the markdown section
// placed inside the generated block.
func RenderSection(skills []catalog.Skill) string {
	lines := []string{sectionHeading, "", sectionNotice, "", listHeading}
	if len(skills) == 0 {
		lines = append(lines, emptyBullet)
	}
	for _, s := range skills {
		lines = append(lines, bullet(s))
	}
	return strings.Join(lines, "\n")
}

func bullet(s catalog.Skill) string {
	var b strings.Builder
	b.WriteString("- ")
	b.WriteString(escapeComments(s.Name))
	if desc := strings.TrimSpace(s.Description); desc != "" {
		b.WriteString(": ")
		b.WriteString(escapeComments(desc))
	}
	b.WriteString(" (file: ")
	b.WriteString(escapeComments(s.Path))
	b.WriteString(")")
	return b.String()
}

// escapeComments keeps skill text from opening an HTML comment, so it can
// never contain a block marker.
func escapeComments(s string) string { return strings.ReplaceAll(s, "<!--", "&lt;!--") }

// BuildBlock wraps section in the start and end markers.
func BuildBlock(section string) string {
	return StartMarker + "\n" + trimRightSpace(section) + "\n" + EndMarker
}

func trimRightSpace(s string) string { return strings.TrimRightFunc(s, unicode.IsSpace) }

func trimLeftSpace(s string) string { return strings.TrimLeftFunc(s, unicode.IsSpace) }
