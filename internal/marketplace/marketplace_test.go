package marketplace

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aidanlsb/bifrost/internal/config"
	"github.com/aidanlsb/bifrost/internal/testutil"
)

func writeManifest(t *testing.T, repo *testutil.Repo, name, content string) {
	t.Helper()
	repo.WriteFile(filepath.Join("plugins", name, ".claude-plugin", "plugin.json"), content)
}

func validManifest(name string) string {
	return `{
  "name": "` + name + `",
  "description": "Skill for ` + name + `",
  "version": "1.0.0",
  "author": {"name": "A", "email": "a@example.test"},
  "license": "MIT",
  "repository": "https://example.test",
  "keywords": ["alpha", "beta"],
  "category": "productivity"
}`
}

func TestAggregate(t *testing.T) {
	repo := testutil.NewRepo(t)
	repo.WriteSkill("one", "---\ndescription: d\n---")
	repo.WriteSkill("two", "---\ndescription: d\n---")
	writeManifest(t, repo, "one", validManifest("one"))
	writeManifest(t, repo, "two", validManifest("two"))

	m, sum, err := Aggregate(repo.Path, config.Default())
	if err != nil {
		t.Fatal(err)
	}

	if len(m.Plugins) != 2 {
		t.Fatalf("plugins = %d, want 2", len(m.Plugins))
	}
	if sum.Total != 2 || sum.Skipped != 0 {
		t.Errorf("summary = %+v", sum)
	}
	if got := m.Plugins[0].Source; got != "./plugins/one" {
		t.Errorf("source = %q, want ./plugins/one", got)
	}
	if sum.PerCategory["productivity"] != 2 {
		t.Errorf("per-category = %v", sum.PerCategory)
	}
}

// A hand-corrupted manifest is excluded and counted; every other plugin
// still lands in a valid catalog.
func TestAggregateExcludesCorruptManifest(t *testing.T) {
	repo := testutil.NewRepo(t)
	repo.WriteSkill("good", "---\ndescription: d\n---")
	repo.WriteSkill("broken", "---\ndescription: d\n---")
	writeManifest(t, repo, "good", validManifest("good"))
	writeManifest(t, repo, "broken", `{"name": "broken", invalid`)

	m, sum, err := Aggregate(repo.Path, config.Default())
	if err != nil {
		t.Fatal(err)
	}

	if len(m.Plugins) != 1 || m.Plugins[0].Name != "good" {
		t.Fatalf("plugins = %+v, want only good", m.Plugins)
	}
	if sum.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", sum.Skipped)
	}
	if len(sum.SkippedPlugins) != 1 {
		t.Errorf("skipped plugins = %v", sum.SkippedPlugins)
	}

	if err := Write(repo.Path, m, sum, time.Now()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(Path(repo.Path))
	if err != nil {
		t.Fatal(err)
	}
	var parsed Marketplace
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("catalog is not valid JSON: %v", err)
	}
	if len(parsed.Plugins) != 1 {
		t.Errorf("persisted plugins = %d, want 1", len(parsed.Plugins))
	}
}

func TestAggregateCountsMissingDescription(t *testing.T) {
	repo := testutil.NewRepo(t)
	repo.WriteSkill("nodesc", "---\ndescription: d\n---")
	writeManifest(t, repo, "nodesc", `{"name": "nodesc", "version": "1.0.0", "keywords": [], "category": "productivity"}`)

	m, sum, err := Aggregate(repo.Path, config.Default())
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Plugins) != 0 {
		t.Errorf("plugins = %+v, want none", m.Plugins)
	}
	if sum.MissingDescription != 1 || sum.Skipped != 1 {
		t.Errorf("summary = %+v", sum)
	}
}

func TestAggregateCountsEmptyKeywords(t *testing.T) {
	repo := testutil.NewRepo(t)
	repo.WriteSkill("plain", "---\ndescription: d\n---")
	writeManifest(t, repo, "plain",
		`{"name": "plain", "description": "d", "version": "1.0.0", "keywords": [], "category": "productivity"}`)

	m, sum, err := Aggregate(repo.Path, config.Default())
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Plugins) != 1 {
		t.Fatalf("plugins = %+v", m.Plugins)
	}
	if sum.EmptyKeywords != 1 {
		t.Errorf("empty-keywords = %d, want 1", sum.EmptyKeywords)
	}
}

// A plugin directory without any manifest is excluded, not fatal.
func TestAggregateMissingManifest(t *testing.T) {
	repo := testutil.NewRepo(t)
	repo.WritePluginDir("empty")

	m, sum, err := Aggregate(repo.Path, config.Default())
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Plugins) != 0 || sum.Skipped != 1 {
		t.Errorf("plugins = %v, summary = %+v", m.Plugins, sum)
	}
}

func TestWriteBacksUpPreviousCatalog(t *testing.T) {
	repo := testutil.NewRepo(t)
	repo.WriteSkill("one", "---\ndescription: d\n---")
	writeManifest(t, repo, "one", validManifest("one"))

	cfg := config.Default()
	now := time.Unix(1700000000, 0)

	m, sum, err := Aggregate(repo.Path, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := Write(repo.Path, m, sum, now); err != nil {
		t.Fatal(err)
	}
	if sum.BackupPath != "" {
		t.Errorf("first write should not create a backup, got %q", sum.BackupPath)
	}

	m, sum, err = Aggregate(repo.Path, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := Write(repo.Path, m, sum, now); err != nil {
		t.Fatal(err)
	}
	want := Path(repo.Path) + ".backup-1700000000"
	if sum.BackupPath != want {
		t.Errorf("backup = %q, want %q", sum.BackupPath, want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("backup file missing: %v", err)
	}
}
