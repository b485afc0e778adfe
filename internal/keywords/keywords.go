// Package keywords synthesizes a plugin's search keywords from four sources
// with a fixed priority order: explicit front-matter keywords, name-derived
// tokens, static category defaults, and description-derived tokens.
package keywords

import (
	"regexp"
	"strings"

	goslug "github.com/gosimple/slug"

	"github.com/aidanlsb/bifrost/internal/category"
)

// Soft bounds for the advisory keyword-count check. Lists outside this range
// are still produced; the caller may warn.
const (
	MinCount = 15
	MaxCount = 35
)

var (
	acronymRe   = regexp.MustCompile(`\b[A-Z]{2,}\b`)
	camelCaseRe = regexp.MustCompile(`\b[a-z]+(?:[A-Z][a-zA-Z0-9]*)+\b`)
)

// Synthesize merges keyword sources for one plugin.
//
// When explicit keywords are present, category defaults are excluded
// entirely; name-derived and description-derived tokens always supplement.
// The result is lowercase, deduplicated case-insensitively preserving first
// occurrence, and filtered through the length and stoplist rules. Tokens of
// length <=2 and stoplisted tokens survive only when they are substrings of
// the plugin's own name.
func Synthesize(name string, cat category.Category, description string, explicit []string) []string {
	var candidates []string
	candidates = append(candidates, explicit...)
	candidates = append(candidates, FromName(name)...)
	if len(explicit) == 0 {
		candidates = append(candidates, defaultsFor(cat, name, explicit)...)
	}
	candidates = append(candidates, FromDescription(description)...)

	lowerName := strings.ToLower(name)
	seen := make(map[string]struct{}, len(candidates))
	result := make([]string, 0, len(candidates))
	for _, raw := range candidates {
		token := strings.ToLower(strings.TrimSpace(raw))
		if token == "" {
			continue
		}
		inName := strings.Contains(lowerName, token)
		if len(token) <= 2 && !inName {
			continue
		}
		if _, stopped := stoplist[token]; stopped && !inName {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		result = append(result, token)
	}
	return result
}

// FromName derives keywords from the plugin name itself: the full
// hyphenated name plus every hyphen-separated segment longer than two
// characters.
func FromName(name string) []string {
	out := []string{name}
	for _, seg := range strings.Split(name, "-") {
		if len(seg) > 2 {
			out = append(out, seg)
		}
	}
	return out
}

// FromDescription extracts tokens from free description text: capitalized
// acronyms, camelCase identifiers, and matches against the fixed vocabulary
// of valuable terms. Tokens are slug-normalized to lowercase ASCII.
func FromDescription(description string) []string {
	var out []string
	for _, m := range acronymRe.FindAllString(description, -1) {
		out = append(out, goslug.Make(m))
	}
	for _, m := range camelCaseRe.FindAllString(description, -1) {
		out = append(out, goslug.Make(m))
	}

	lower := strings.ToLower(description)
	words := make(map[string]struct{})
	for _, w := range strings.FieldsFunc(lower, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9' || r == '-')
	}) {
		words[w] = struct{}{}
	}
	for _, term := range valuableTerms {
		if _, ok := words[term]; ok {
			out = append(out, term)
		}
	}
	return out
}

// defaultsFor returns the category-default list with per-category exceptions
// applied: a default keyword is suppressed when every keyword it is
// redundant with already co-occurs among the other candidate sources.
func defaultsFor(cat category.Category, name string, explicit []string) []string {
	defaults := categoryDefaults[cat]

	present := make(map[string]struct{}, len(defaults)+len(explicit)+4)
	for _, d := range defaults {
		present[strings.ToLower(d)] = struct{}{}
	}
	for _, e := range explicit {
		present[strings.ToLower(e)] = struct{}{}
	}
	for _, n := range FromName(name) {
		present[strings.ToLower(n)] = struct{}{}
	}

	out := make([]string, 0, len(defaults))
	for _, d := range defaults {
		if suppressed(cat, d, present) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func suppressed(cat category.Category, keyword string, present map[string]struct{}) bool {
	for _, exc := range defaultExceptions {
		if exc.Category != cat || exc.Keyword != keyword {
			continue
		}
		all := true
		for _, req := range exc.Requires {
			if _, ok := present[req]; !ok {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

// CountInBounds reports whether n falls inside the advisory [MinCount,
// MaxCount] range.
func CountInBounds(n int) bool {
	return n >= MinCount && n <= MaxCount
}
