package marketplace

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aidanlsb/bifrost/internal/atomicfile"
	"github.com/aidanlsb/bifrost/internal/config"
	"github.com/aidanlsb/bifrost/internal/discovery"
	"github.com/aidanlsb/bifrost/internal/jsondoc"
	"github.com/aidanlsb/bifrost/internal/manifest"
)

const (
	// Dir is the catalog directory under the repository root.
	Dir = ".claude-plugin"

	// Filename is the catalog file name.
	Filename = "marketplace.json"
)

// ErrAggregateInvalid is the run's only fatal error: the final catalog
// document failed JSON validation. A broken aggregate is unusable by every
// consumer, so it is never silently tolerated.
var ErrAggregateInvalid = errors.New("aggregate catalog failed validation")

// Path returns the catalog path for a repository root.
func Path(root string) string {
	return filepath.Join(root, Dir, Filename)
}

// Summary reports aggregation counts.
type Summary struct {
	Total              int
	Skipped            int
	MissingDescription int
	EmptyKeywords      int
	PerCategory        map[string]int

	// SkippedPlugins lists excluded plugin names with reasons.
	SkippedPlugins []string

	// BackupPath is the pre-overwrite snapshot, empty on first run or
	// dry run.
	BackupPath string
}

// Aggregate scans every persisted plugin manifest under root and builds
// the catalog document. It reads manifests back from disk, never in-memory
// pipeline state, so it is independently re-runnable.
//
// Manifests that are missing, unparsable, or lack a description are
// excluded and counted; only the final document's own validation failure
// is fatal.
func Aggregate(root string, cfg *config.Config) (*Marketplace, *Summary, error) {
	plugins, err := discovery.Discover(filepath.Join(root, cfg.PluginsDir))
	if err != nil {
		return nil, nil, err
	}

	m := &Marketplace{
		Name: cfg.Marketplace.Name,
		Owner: Owner{
			Name:  cfg.Marketplace.OwnerName,
			Email: cfg.Marketplace.OwnerEmail,
			URL:   cfg.Marketplace.OwnerURL,
		},
		Metadata: Metadata{
			Description: cfg.Marketplace.Description,
			Version:     cfg.Version,
			Homepage:    cfg.Marketplace.Homepage,
		},
		Plugins: []Entry{},
	}

	sum := &Summary{PerCategory: make(map[string]int)}
	for _, p := range plugins {
		sum.Total++
		entry, reason := readEntry(p, cfg.PluginsDir)
		if entry == nil {
			sum.Skipped++
			if reason == "missing description" {
				sum.MissingDescription++
			}
			sum.SkippedPlugins = append(sum.SkippedPlugins, fmt.Sprintf("%s (%s)", p.Name, reason))
			continue
		}
		if len(entry.Keywords) == 0 {
			sum.EmptyKeywords++
		}
		sum.PerCategory[entry.Category]++
		m.Plugins = append(m.Plugins, *entry)
	}

	return m, sum, nil
}

// readEntry loads one plugin's manifest from disk. A nil entry means the
// plugin is excluded, with the reason for the skip record.
func readEntry(p discovery.Plugin, pluginsDir string) (*Entry, string) {
	data, err := os.ReadFile(manifest.Path(p.Dir))
	if err != nil {
		return nil, "missing manifest"
	}
	if !jsondoc.Valid(data) {
		return nil, "invalid manifest JSON"
	}

	var d manifest.Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, "invalid manifest JSON"
	}
	if d.Description == "" {
		return nil, "missing description"
	}

	keywords := d.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return &Entry{
		Name:        p.Name,
		Source:      "./" + pluginsDir + "/" + p.Name,
		Version:     d.Version,
		Description: d.Description,
		Keywords:    keywords,
		Category:    d.Category,
	}, ""
}

// Write persists the catalog: back up the previous document, marshal,
// validate, and atomically replace. Validation failure here wraps
// ErrAggregateInvalid and must abort the run with a non-zero exit.
func Write(root string, m *Marketplace, sum *Summary, now time.Time) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAggregateInvalid, err)
	}
	data = append(data, '\n')

	path := Path(root)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create catalog dir: %w", err)
	}

	backup, err := atomicfile.Backup(path, now)
	if err != nil {
		return fmt.Errorf("back up previous catalog: %w", err)
	}
	sum.BackupPath = backup

	if err := atomicfile.WriteJSON(path, data, 0o644); err != nil {
		if errors.Is(err, atomicfile.ErrInvalidJSON) {
			return fmt.Errorf("%w: %v", ErrAggregateInvalid, err)
		}
		return err
	}
	return nil
}
