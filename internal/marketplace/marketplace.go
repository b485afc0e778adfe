// Package marketplace builds the aggregate catalog document from persisted
// plugin manifests.
package marketplace

// Owner identifies the marketplace maintainer.
type Owner struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	URL   string `json:"url"`
}

// Metadata describes the catalog itself.
type Metadata struct {
	Description string `json:"description"`
	Version     string `json:"version"`
	Homepage    string `json:"homepage"`
}

// Entry is one plugin's row in the catalog. Source always references the
// plugin's own subtree, never the repository root.
type Entry struct {
	Name        string   `json:"name"`
	Source      string   `json:"source"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Category    string   `json:"category"`
}

// Marketplace is the aggregate catalog document.
type Marketplace struct {
	Name     string   `json:"name"`
	Owner    Owner    `json:"owner"`
	Metadata Metadata `json:"metadata"`
	Plugins  []Entry  `json:"plugins"`
}
