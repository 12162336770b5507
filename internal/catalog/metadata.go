package catalog

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Metadata is the full YAML view of a skill header, used for display.
// Unknown fields are ignored.
type Metadata struct {
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description"`
	Version      string   `yaml:"version"`
	License      string   `yaml:"license"`
	AllowedTools []string `yaml:"allowed-tools"`

	// Triggers is either a list of strings or a list of {pattern, description}.
	Triggers yaml.Node `yaml:"triggers"`
}

// ReadMetadata parses the header of the document at path as YAML. Headers
// that are not valid YAML fall back to the line-based name and description.
func ReadMetadata(path string) (Metadata, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, err
	}
	block, ok := headerText(string(b))
	if !ok {
		return Metadata{}, ErrMissingHeader
	}

	var meta Metadata
	if err := yaml.Unmarshal([]byte(block), &meta); err != nil || strings.TrimSpace(meta.Name) == "" {
		h, herr := ParseHeader(string(b))
		if herr != nil {
			return Metadata{}, herr
		}
		return Metadata{Name: h.Name, Description: h.Description}, nil
	}
	meta.Name = strings.TrimSpace(meta.Name)
	meta.Description = strings.TrimSpace(meta.Description)
	return meta, nil
}

// TriggerPatterns flattens Triggers into plain strings.
func (m Metadata) TriggerPatterns() []string {
	node := m.Triggers
	switch node.Kind {
	case yaml.ScalarNode:
		return []string{node.Value}
	case yaml.SequenceNode:
		var out []string
		for _, item := range node.Content {
			switch item.Kind {
			case yaml.ScalarNode:
				out = append(out, item.Value)
			case yaml.MappingNode:
				for i := 0; i+1 < len(item.Content); i += 2 {
					if item.Content[i].Value == "pattern" {
						out = append(out, item.Content[i+1].Value)
					}
				}
			}
		}
		return out
	}
	return nil
}
