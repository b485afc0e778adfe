// Package discovery enumerates plugin directories and locates each
// plugin's skill document.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/aidanlsb/bifrost/internal/skilldoc"
)

// Plugin is one discovered plugin directory.
type Plugin struct {
	// Name is the directory name, which is also the manifest name.
	Name string

	// Dir is the plugin root (plugins/<name>).
	Dir string

	// SkillDir is the skill directory (plugins/<name>/skills/<name>).
	SkillDir string

	// SkillDoc is the expected SKILL.md path under SkillDir.
	SkillDoc string

	// HasDoc reports whether SkillDoc exists. Plugins without a document
	// are excluded from all downstream stages.
	HasDoc bool
}

// Discover returns the plugins under pluginsRoot in lexicographic order.
// The order fixes both progress numbering and processing sequence.
func Discover(pluginsRoot string) ([]Plugin, error) {
	entries, err := os.ReadDir(pluginsRoot)
	if err != nil {
		return nil, fmt.Errorf("read plugins root: %w", err)
	}

	var plugins []Plugin
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name := e.Name()
		dir := filepath.Join(pluginsRoot, name)
		skillDir := filepath.Join(dir, "skills", name)
		doc := filepath.Join(skillDir, skilldoc.Filename)

		p := Plugin{
			Name:     name,
			Dir:      dir,
			SkillDir: skillDir,
			SkillDoc: doc,
		}
		if _, err := os.Stat(doc); err == nil {
			p.HasDoc = true
		}
		plugins = append(plugins, p)
	}

	// ReadDir sorts by filename already; keep the guarantee explicit.
	sort.Slice(plugins, func(i, j int) bool { return plugins[i].Name < plugins[j].Name })
	return plugins, nil
}
