package signals

import (
	"regexp"
	"sort"
	"strings"
)

// minTokenLen drops short fragments such as "js" or "v3" that would match
// almost any description.
const minTokenLen = 3

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// KeywordSet is a deduplicated set of lowercase, non-empty tokens.
type KeywordSet map[string]struct{}

// NewKeywordSet returns a set holding the normalized tokens.
func NewKeywordSet(tokens ...string) KeywordSet {
	s := make(KeywordSet, len(tokens))
	s.Add(tokens...)
	return s
}

// Add trims and lowercases each token and inserts the non-empty ones.
func (s KeywordSet) Add(tokens ...string) {
	for _, t := range tokens {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		s[t] = struct{}{}
	}
}

func (s KeywordSet) Has(token string) bool {
	_, ok := s[token]
	return ok
}

func (s KeywordSet) Len() int { return len(s) }

// Sorted returns the tokens in ascending order.
func (s KeywordSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Tokenize lowercases s, splits it on non-alphanumeric runs and keeps the
// parts of at least three characters.
func Tokenize(s string) []string {
	var out []string
	for _, p := range nonAlnum.Split(strings.ToLower(s), -1) {
		if len(p) >= minTokenLen {
			out = append(out, p)
		}
	}
	return out
}

// AliasRule adds fixed tokens for a dependency name matched exactly or by
// prefix. Names are compared after trimming and lowercasing.
type AliasRule struct {
	Exact  string
	Prefix string
	Tokens []string
}

func (r AliasRule) matches(name string) bool {
	if r.Exact != "" && name == r.Exact {
		return true
	}
	return r.Prefix != "" && strings.HasPrefix(name, r.Prefix)
}

// DefaultAliases maps well-known package names to the words skill authors
// use for them. The @playwright/ prefix also covers @playwright/test.
var DefaultAliases = []AliasRule{
	{Prefix: "@playwright/", Tokens: []string{"playwright", "e2e"}},
	{Exact: "playwright", Tokens: []string{"playwright", "e2e"}},
	{Exact: "next", Tokens: []string{"next", "nextjs", "vercel"}},
}

// KeywordsFromPackageName derives tokens from a dependency name: the scope
// and path segments are tokenized separately, then alias tokens are added.
func KeywordsFromPackageName(name string, aliases []AliasRule) []string {
	raw := strings.ToLower(strings.TrimSpace(name))
	if raw == "" {
		return nil
	}

	var out []string
	for _, part := range strings.FieldsFunc(raw, func(r rune) bool { return r == '@' || r == '/' }) {
		out = append(out, Tokenize(part)...)
	}
	for _, rule := range aliases {
		if rule.matches(raw) {
			out = append(out, rule.Tokens...)
		}
	}
	return out
}
