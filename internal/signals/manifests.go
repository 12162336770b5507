package signals

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/mod/modfile"

	"github.com/kamusis/skills-scout/internal/logging"
)

func (c *Collector) collectManifests(set KeywordSet) {
	sources := []struct {
		name  string
		parse func([]byte) ([]string, error)
	}{
		{"package.json", packageJSONDeps},
		{"Cargo.toml", cargoDeps},
		{"pyproject.toml", pyprojectDeps},
		{"go.mod", goModDeps},
	}
	for _, src := range sources {
		data, ok := c.readFile(src.name)
		if !ok {
			continue
		}
		deps, err := src.parse(data)
		if err != nil {
			logging.Debug("ignoring unparsable manifest", "manifest", src.name, "error", err)
			continue
		}
		for _, dep := range deps {
			c.add(set, src.name+":"+dep, KeywordsFromPackageName(dep, c.aliases))
		}
	}
}

// packageJSONDeps returns the keys of dependencies and devDependencies. A
// section that is not an object is skipped on its own.
func packageJSONDeps(data []byte) ([]string, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	var out []string
	for _, section := range []string{"dependencies", "devDependencies"} {
		raw, ok := doc[section]
		if !ok {
			continue
		}
		var deps map[string]json.RawMessage
		if err := json.Unmarshal(raw, &deps); err != nil {
			logging.Debug("ignoring package.json section", "section", section, "error", err)
			continue
		}
		out = append(out, sortedKeys(deps)...)
	}
	return out, nil
}

type cargoManifest struct {
	Dependencies    map[string]any `toml:"dependencies"`
	DevDependencies map[string]any `toml:"dev-dependencies"`
}

func cargoDeps(data []byte) ([]string, error) {
	var m cargoManifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return append(sortedKeys(m.Dependencies), sortedKeys(m.DevDependencies)...), nil
}

type pyprojectManifest struct {
	Project struct {
		Dependencies []string `toml:"dependencies"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Dependencies    map[string]any `toml:"dependencies"`
			DevDependencies map[string]any `toml:"dev-dependencies"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

// requirementName matches the distribution name at the start of a PEP 508
// requirement string.
var requirementName = regexp.MustCompile(`^\s*([A-Za-z0-9][A-Za-z0-9._-]*)`)

func pyprojectDeps(data []byte) ([]string, error) {
	var m pyprojectManifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	var out []string
	for _, req := range m.Project.Dependencies {
		if sub := requirementName.FindStringSubmatch(req); sub != nil {
			out = append(out, sub[1])
		}
	}
	for _, section := range []map[string]any{m.Tool.Poetry.Dependencies, m.Tool.Poetry.DevDependencies} {
		for _, name := range sortedKeys(section) {
			if strings.EqualFold(name, "python") {
				continue
			}
			out = append(out, name)
		}
	}
	return out, nil
}

var majorVersionElem = regexp.MustCompile(`^v[0-9]+$`)

// goModDeps returns one name per direct requirement: the last module path
// element that is not a major-version suffix, so hosting prefixes such as
// github.com never become keywords.
func goModDeps(data []byte) ([]string, error) {
	f, err := modfile.Parse("go.mod", data, nil)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, r := range f.Require {
		if r.Indirect {
			continue
		}
		elems := strings.Split(r.Mod.Path, "/")
		for i := len(elems) - 1; i >= 0; i-- {
			if !majorVersionElem.MatchString(elems[i]) {
				out = append(out, elems[i])
				break
			}
		}
	}
	return out, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
