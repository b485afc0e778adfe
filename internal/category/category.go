// Package category assigns exactly one category label to a plugin name via
// an ordered first-match-wins rule table.
package category

import "strings"

// Category is one label from the fixed marketplace enumeration.
type Category string

const (
	Cloudflare    Category = "cloudflare"
	MCP           Category = "mcp"
	Scraping      Category = "scraping"
	AI            Category = "ai"
	Database      Category = "database"
	Web           Category = "web"
	Validation    Category = "validation"
	Testing       Category = "testing"
	DevOps        Category = "devops"
	Security      Category = "security"
	Documentation Category = "documentation"
	Productivity  Category = "productivity"
)

// Default is the fallback label when no rule matches.
const Default = Productivity

// Rule pairs a name-matching predicate with a category label.
type Rule struct {
	Label Category

	// Prefixes match the start of the name.
	Prefixes []string

	// Contains match anywhere in the name.
	Contains []string

	// Segments match whole hyphen-separated name components.
	Segments []string
}

// Matches reports whether any predicate of the rule matches name.
func (r Rule) Matches(name string) bool {
	for _, p := range r.Prefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	for _, c := range r.Contains {
		if strings.Contains(name, c) {
			return true
		}
	}
	if len(r.Segments) > 0 {
		for _, seg := range strings.Split(name, "-") {
			for _, s := range r.Segments {
				if seg == s {
					return true
				}
			}
		}
	}
	return false
}

// rules is evaluated top to bottom; the first match wins. Narrow families
// are listed before the broader rules that would otherwise shadow them
// (cloudflare before ai, so "cloudflare-workers-ai" stays cloudflare; mcp
// before ai, so "fastmcp-agent" stays mcp).
var rules = []Rule{
	{Label: Cloudflare, Contains: []string{"cloudflare", "wrangler"}},
	{Label: MCP, Contains: []string{"fastmcp"}, Segments: []string{"mcp"}},
	{Label: Scraping, Contains: []string{"scraper", "scraping", "crawl", "firecrawl"}},
	{Label: AI, Contains: []string{"openai", "anthropic", "gemini", "generative"}, Segments: []string{"ai", "llm", "agent", "agents", "claude"}},
	{Label: Database, Contains: []string{"database", "postgres", "sqlite", "mongo", "mysql", "redis"}, Segments: []string{"db", "sql", "orm"}},
	{Label: Validation, Contains: []string{"zod", "schema", "validation"}, Segments: []string{"lint"}},
	{Label: Web, Contains: []string{"react", "nextjs", "svelte", "vue", "frontend", "tailwind"}, Segments: []string{"ui", "web", "css"}},
	{Label: Testing, Contains: []string{"test", "jest", "vitest", "playwright", "cypress"}},
	{Label: DevOps, Contains: []string{"docker", "kubernetes", "terraform", "deploy"}, Segments: []string{"ci", "cd", "k8s"}},
	{Label: Security, Contains: []string{"security", "auth", "crypto"}, Segments: []string{"jwt", "oauth"}},
	{Label: Documentation, Contains: []string{"documentation", "readme"}, Segments: []string{"docs"}},
}

// Rules returns the ordered rule table. Callers must treat it as read-only.
func Rules() []Rule {
	return rules
}

// All enumerates every category label, default last.
func All() []Category {
	return []Category{
		Cloudflare, MCP, Scraping, AI, Database, Web, Validation,
		Testing, DevOps, Security, Documentation, Productivity,
	}
}

// Categorize folds the ordered rule table over name and returns the first
// matching label, or Default when nothing matches.
func Categorize(name string) Category {
	for _, r := range rules {
		if r.Matches(name) {
			return r.Label
		}
	}
	return Default
}
