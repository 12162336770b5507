// Package ranking scores catalog skills against repository keywords.
package ranking

import (
	"sort"
	"strings"

	"github.com/kamusis/skills-scout/internal/catalog"
	"github.com/kamusis/skills-scout/internal/signals"
)

// Scored is a skill together with the keywords that matched it.
type Scored struct {
	Skill   catalog.Skill
	Score   int
	Matched []string
}

// Match returns the sorted keywords that occur as substrings of the skill's
// lowercased name and description.
func Match(s catalog.Skill, keywords signals.KeywordSet) []string {
	text := strings.ToLower(s.Name + "\n" + s.Description)
	var out []string
	for kw := range keywords {
		if kw != "" && strings.Contains(text, kw) {
			out = append(out, kw)
		}
	}
	sort.Strings(out)
	return out
}

// Score counts the distinct keywords found in the skill's text.
func Score(s catalog.Skill, keywords signals.KeywordSet) int {
	return len(Match(s, keywords))
}

// Rank drops skills with no matches and orders the rest by score
// (descending), then by name (ascending, byte-wise). Equal keys keep their
// input order.
func Rank(skills []catalog.Skill, keywords signals.KeywordSet) []Scored {
	var out []Scored
	for _, s := range skills {
		matched := Match(s, keywords)
		if len(matched) == 0 {
			continue
		}
		out = append(out, Scored{Skill: s, Score: len(matched), Matched: matched})
	}
	Sort(out)
	return out
}

// Sort orders results by score (descending), then by skill name (ascending).
func Sort(results []Scored) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score == results[j].Score {
			return results[i].Skill.Name < results[j].Skill.Name
		}
		return results[i].Score > results[j].Score
	})
}

// Skills projects ranked results back to their skills.
func Skills(results []Scored) []catalog.Skill {
	out := make([]catalog.Skill, 0, len(results))
	for _, r := range results {
		out = append(out, r.Skill)
	}
	return out
}
