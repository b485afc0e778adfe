// Package skilldoc extracts plugin metadata from SKILL.md documents.
//
// A skill document is YAML front-matter (the first block delimited by a pair
// of "---" lines) followed by an opaque markdown body. Only the front-matter
// is in scope here; the body is never interpreted.
package skilldoc

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Filename is the canonical skill document name inside a plugin's skill
// directory.
const Filename = "SKILL.md"

// Metadata is the typed projection of a skill document's front-matter.
type Metadata struct {
	// Description is the plugin description, whitespace-normalized to a
	// single line. Never empty: a missing or malformed description is
	// replaced by FallbackDescription.
	Description string

	// ExplicitKeywords is the authored keyword list, if any. Either a
	// top-level "keywords" list or one nested under "metadata".
	ExplicitKeywords []string

	// Dependencies lists package names for optional registry lookups.
	Dependencies []string

	// UsedFallback reports that Description was substituted.
	UsedFallback bool
}

// FallbackDescription returns the substitute description for plugins whose
// document carries none. Short by construction, so it can never trip the
// manifest length gate.
func FallbackDescription(name string) string {
	return fmt.Sprintf("Production-ready skill for %s", name)
}

// frontmatter mirrors the recognized front-matter fields. Everything else
// in the block is ignored.
type frontmatter struct {
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
	Metadata    struct {
		Keywords []string `yaml:"keywords"`
	} `yaml:"metadata"`
	Dependencies []string `yaml:"dependencies"`
}

// Bounds returns the line index of the closing front-matter delimiter.
// Front-matter is only recognized when the first line is "---". If the
// block is unclosed, endLine is -1.
func Bounds(lines []string) (endLine int, ok bool) {
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return -1, false
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return i, true
		}
	}
	return -1, true
}

// ParseFile reads and extracts metadata for the named plugin from the skill
// document at path.
func ParseFile(path, pluginName string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read skill document: %w", err)
	}
	return Parse(string(data), pluginName), nil
}

// Parse extracts metadata from skill document content.
//
// Parse never fails: content without front-matter, with unclosed
// front-matter, or with YAML that does not decode yields the fallback
// description and no explicit keywords, mirroring how a missing field is
// handled.
func Parse(content, pluginName string) *Metadata {
	meta := &Metadata{}

	lines := strings.Split(content, "\n")
	endLine, ok := Bounds(lines)
	if ok && endLine > 0 {
		var fm frontmatter
		block := strings.Join(lines[1:endLine], "\n")
		if err := yaml.Unmarshal([]byte(block), &fm); err == nil {
			meta.Description = normalizeDescription(fm.Description)
			meta.ExplicitKeywords = fm.Keywords
			if len(meta.ExplicitKeywords) == 0 {
				meta.ExplicitKeywords = fm.Metadata.Keywords
			}
			meta.Dependencies = fm.Dependencies
		}
	}

	if meta.Description == "" {
		meta.Description = FallbackDescription(pluginName)
		meta.UsedFallback = true
	}
	return meta
}

// normalizeDescription flattens block-scalar descriptions to one line and
// discards bare-marker parsing artifacts ("|" or ">" with no content).
func normalizeDescription(s string) string {
	s = strings.TrimSpace(s)
	if s == "|" || s == ">" {
		return ""
	}

	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}
