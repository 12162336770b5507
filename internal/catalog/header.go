package catalog

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrMissingHeader means the document does not open with a --- block.
	ErrMissingHeader = errors.New("missing --- header")
	// ErrMissingName means the header has no non-empty name field.
	ErrMissingName = errors.New("header has no name")
)

var (
	headerBlock = regexp.MustCompile(`(?s)\A---[ \t]*\n(?:(.*?)\n)?---[ \t]*(?:\n|\z)`)
	headerField = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9_-]*):\s*(.*)$`)
)

// Header is the key/value block at the top of a skill document.
type Header struct {
	Name        string
	Description string
	Fields      map[string]string
}

// ParseHeader reads the leading --- delimited block of a skill document.
// Only single-line "key: value" entries are recognised; later keys win.
func ParseHeader(content string) (Header, error) {
	block, ok := headerText(content)
	if !ok {
		return Header{}, ErrMissingHeader
	}

	fields := make(map[string]string)
	for _, line := range strings.Split(block, "\n") {
		m := headerField.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		fields[m[1]] = unquote(m[2])
	}

	h := Header{
		Name:        fields["name"],
		Description: fields["description"],
		Fields:      fields,
	}
	if h.Name == "" {
		return h, ErrMissingName
	}
	return h, nil
}

// headerText returns the raw text between the opening and closing markers.
func headerText(content string) (string, bool) {
	m := headerBlock.FindStringSubmatch(normalize(content))
	if m == nil {
		return "", false
	}
	return m[1], true
}

func normalize(content string) string {
	content = strings.TrimPrefix(content, "\ufeff")
	return strings.ReplaceAll(content, "\r\n", "\n")
}

func unquote(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		v = strings.TrimSpace(v[1 : len(v)-1])
	}
	return v
}
