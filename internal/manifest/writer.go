package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aidanlsb/bifrost/internal/atomicfile"
	"github.com/aidanlsb/bifrost/internal/jsondoc"
)

const (
	// Dir is the manifest directory under each plugin root.
	Dir = ".claude-plugin"

	// Filename is the manifest file name.
	Filename = "plugin.json"
)

// Path returns the manifest path for a plugin directory.
func Path(pluginDir string) string {
	return filepath.Join(pluginDir, Dir, Filename)
}

// Fields carries everything the writer needs to assemble one descriptor.
type Fields struct {
	Name        string
	Description string
	Version     string
	License     string
	Repository  string
	Keywords    []string
	Category    string

	// DefaultAuthor is used unless an existing manifest already carries an
	// author, which is inherited.
	DefaultAuthor Author
}

// Build assembles a descriptor for the plugin rooted at pluginDir, scanning
// skillDir for agent and command files. It enforces the hard description
// gate; callers receive a *DescriptionTooLongError and must skip the plugin
// without touching its previous manifest.
func Build(pluginDir, skillDir string, f Fields) (*Descriptor, error) {
	if n := len(f.Description); n > MaxDescriptionLen {
		return nil, &DescriptionTooLongError{Length: n}
	}

	d := &Descriptor{
		Name:        f.Name,
		Description: f.Description,
		Version:     f.Version,
		Author:      inheritAuthor(Path(pluginDir), f.DefaultAuthor),
		License:     f.License,
		Repository:  f.Repository,
		Keywords:    f.Keywords,
		Category:    f.Category,
		Agents:      scanMarkdown(skillDir, "agents"),
		Commands:    scanMarkdown(skillDir, "commands"),
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Write persists the descriptor atomically: marshal, validate the bytes as
// JSON, then temp-write and rename. A validation failure leaves any
// previous manifest untouched.
func Write(pluginDir string, d *Descriptor) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Join(pluginDir, Dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	return atomicfile.WriteJSON(Path(pluginDir), data, 0o644)
}

// inheritAuthor reads the author of an existing manifest, if any. Anything
// unreadable or incomplete falls back to the default.
func inheritAuthor(manifestPath string, fallback Author) Author {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return fallback
	}
	name, err := jsondoc.GetString(data, "author.name")
	if err != nil || strings.TrimSpace(name) == "" {
		return fallback
	}
	email, _ := jsondoc.GetString(data, "author.email")
	return Author{Name: name, Email: email}
}

// scanMarkdown lists markdown files under skillDir/sub as sorted relative
// paths ("./sub/<file>"). It returns nil when the directory is absent or
// holds no markdown files, so the field is omitted rather than emitted
// empty.
func scanMarkdown(skillDir, sub string) []string {
	entries, err := os.ReadDir(filepath.Join(skillDir, sub))
	if err != nil {
		return nil
	}

	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		out = append(out, "./"+sub+"/"+e.Name())
	}
	sort.Strings(out)
	if len(out) == 0 {
		return nil
	}
	return out
}
