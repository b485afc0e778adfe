package keywords

import "github.com/aidanlsb/bifrost/internal/category"

// categoryDefaults are the static per-category keyword lists, merged in only
// when a plugin supplies no explicit keywords. Loaded once; read-only.
var categoryDefaults = map[category.Category][]string{
	category.Cloudflare:    {"cloudflare", "workers", "edge", "serverless", "wrangler", "d1", "kv", "durable-objects"},
	category.MCP:           {"mcp", "model-context-protocol", "tools", "integration", "server"},
	category.Scraping:      {"scraping", "crawling", "extraction", "automation", "html"},
	category.AI:            {"llm", "agents", "prompts", "inference", "completion"},
	category.Database:      {"database", "sql", "queries", "migrations", "storage"},
	category.Web:           {"frontend", "components", "responsive", "styling"},
	category.Validation:    {"validation", "schema", "types", "parsing"},
	category.Testing:       {"testing", "assertions", "coverage", "mocking"},
	category.DevOps:        {"devops", "deployment", "infrastructure", "containers"},
	category.Security:      {"security", "authentication", "authorization", "encryption"},
	category.Documentation: {"documentation", "markdown", "guides", "reference"},
	category.Productivity:  {"productivity", "workflow", "automation", "tooling"},
}

// defaultException suppresses one category-default keyword when a set of
// co-occurring keywords already covers it. Exceptions are scoped to the
// category they are declared for.
type defaultException struct {
	Category category.Category
	Keyword  string
	Requires []string
}

// defaultExceptions: "serverless" is redundant for cloudflare plugins once
// both "workers" and "edge" are present.
var defaultExceptions = []defaultException{
	{Category: category.Cloudflare, Keyword: "serverless", Requires: []string{"workers", "edge"}},
}

// stoplist holds tokens dropped from every source: programming-language
// names and overly generic words. A stoplisted token survives only when it
// is a substring of the plugin's own name.
var stoplist = map[string]struct{}{}

var stoplistTokens = []string{
	// languages and runtimes
	"javascript", "typescript", "python", "golang", "java", "rust",
	"ruby", "php", "node", "nodejs", "deno", "bun",
	// generic filler
	"code", "coding", "tool", "tools", "skill", "skills",
	"plugin", "plugins", "library", "framework", "package",
	"file", "files", "new", "use", "using", "usage",
	"with", "for", "and", "the", "your", "this", "that",
	"production", "ready", "based", "support", "supports",
	"help", "helps", "create", "creating", "build", "building",
	"make", "makes", "work", "works", "write", "writing",
	"best", "practices", "complete", "comprehensive",
}

// valuableTerms is the fixed vocabulary matched against description text.
var valuableTerms = []string{
	"api", "cli", "sdk", "rest", "graphql", "grpc", "json", "yaml",
	"oauth", "jwt", "webhook", "websocket", "realtime", "streaming",
	"database", "sql", "nosql", "orm", "cache", "queue", "storage",
	"search", "analytics", "monitoring", "logging", "metrics",
	"docker", "kubernetes", "terraform", "serverless", "edge",
	"workers", "deployment", "migration", "schema", "validation",
	"authentication", "authorization", "encryption",
	"scraping", "crawling", "markdown", "frontend", "backend",
	"llm", "agents", "prompts", "embeddings", "rag", "inference",
	"mcp", "automation", "workflow", "pipeline", "testing",
}

func init() {
	for _, t := range stoplistTokens {
		stoplist[t] = struct{}{}
	}
}

// CategoryDefaults returns the static keyword list for a category.
// Callers must treat it as read-only.
func CategoryDefaults(c category.Category) []string {
	return categoryDefaults[c]
}
