package skilldoc

import (
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantDesc     string
		wantKeywords []string
		wantFallback bool
	}{
		{
			name: "single-line description",
			content: `---
description: Query D1 databases from Workers
---

# Body`,
			wantDesc: "Query D1 databases from Workers",
		},
		{
			name: "literal block scalar description",
			content: `---
description: |
  Query D1 databases from Workers
  with prepared statements
keywords:
  - d1-sql
---
Body`,
			wantDesc:     "Query D1 databases from Workers with prepared statements",
			wantKeywords: []string{"d1-sql"},
		},
		{
			name: "folded block scalar description",
			content: `---
description: >
  Scrape websites
  into markdown
---
Body`,
			wantDesc: "Scrape websites into markdown",
		},
		{
			name: "top-level keywords list",
			content: `---
description: A scraper
keywords:
  - scraping
  - firecrawl
---`,
			wantDesc:     "A scraper",
			wantKeywords: []string{"scraping", "firecrawl"},
		},
		{
			name: "keywords nested under metadata",
			content: `---
description: A scraper
metadata:
  keywords:
    - scraping
    - firecrawl
---`,
			wantDesc:     "A scraper",
			wantKeywords: []string{"scraping", "firecrawl"},
		},
		{
			name: "top-level keywords win over nested",
			content: `---
description: A scraper
keywords:
  - outer
metadata:
  keywords:
    - inner
---`,
			wantDesc:     "A scraper",
			wantKeywords: []string{"outer"},
		},
		{
			name: "missing description falls back",
			content: `---
keywords:
  - something
---`,
			wantDesc:     "Production-ready skill for my-plugin",
			wantKeywords: []string{"something"},
			wantFallback: true,
		},
		{
			name:         "no front-matter falls back",
			content:      "# Just a heading\n\nSome content",
			wantDesc:     "Production-ready skill for my-plugin",
			wantFallback: true,
		},
		{
			name: "unclosed front-matter falls back",
			content: `---
description: never closed`,
			wantDesc:     "Production-ready skill for my-plugin",
			wantFallback: true,
		},
		{
			name: "bare block marker artifact falls back",
			content: `---
description: "|"
---`,
			wantDesc:     "Production-ready skill for my-plugin",
			wantFallback: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := Parse(tt.content, "my-plugin")

			if meta.Description != tt.wantDesc {
				t.Errorf("description = %q, want %q", meta.Description, tt.wantDesc)
			}
			if meta.UsedFallback != tt.wantFallback {
				t.Errorf("UsedFallback = %v, want %v", meta.UsedFallback, tt.wantFallback)
			}
			if tt.wantKeywords != nil && !reflect.DeepEqual(meta.ExplicitKeywords, tt.wantKeywords) {
				t.Errorf("keywords = %v, want %v", meta.ExplicitKeywords, tt.wantKeywords)
			}
		})
	}
}

func TestParseDependencies(t *testing.T) {
	meta := Parse(`---
description: Validation helpers
dependencies:
  - zod
  - valibot
---`, "zod-helpers")

	want := []string{"zod", "valibot"}
	if !reflect.DeepEqual(meta.Dependencies, want) {
		t.Errorf("dependencies = %v, want %v", meta.Dependencies, want)
	}
}

func TestFallbackNeverExceedsLengthGate(t *testing.T) {
	// Plugin directory names are short; even a generous one stays well
	// under the 250-char manifest gate.
	name := strings.Repeat("a", 100)
	if got := len(FallbackDescription(name)); got > 250 {
		t.Errorf("fallback description is %d chars", got)
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		wantEnd int
		wantOK  bool
	}{
		{"closed block", []string{"---", "a: b", "---", "body"}, 2, true},
		{"unclosed block", []string{"---", "a: b"}, -1, true},
		{"no front-matter", []string{"# heading"}, -1, false},
		{"empty input", nil, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end, ok := Bounds(tt.lines)
			if end != tt.wantEnd || ok != tt.wantOK {
				t.Errorf("Bounds() = (%d, %v), want (%d, %v)", end, ok, tt.wantEnd, tt.wantOK)
			}
		})
	}
}
