// Package testutil provides helpers for building temporary marketplace
// repositories in tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Repo is a temporary marketplace repository tree.
type Repo struct {
	t *testing.T

	// Path is the repository root.
	Path string
}

// NewRepo creates an empty marketplace repository in a temp directory.
func NewRepo(t *testing.T) *Repo {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "plugins"), 0o755); err != nil {
		t.Fatalf("create plugins dir: %v", err)
	}
	return &Repo{t: t, Path: root}
}

// WriteSkill creates plugins/<name>/skills/<name>/SKILL.md with content.
func (r *Repo) WriteSkill(name, content string) {
	r.t.Helper()
	r.WriteFile(filepath.Join("plugins", name, "skills", name, "SKILL.md"), content)
}

// WritePluginDir creates plugins/<name> without a skill document.
func (r *Repo) WritePluginDir(name string) {
	r.t.Helper()
	if err := os.MkdirAll(filepath.Join(r.Path, "plugins", name), 0o755); err != nil {
		r.t.Fatalf("create plugin dir: %v", err)
	}
}

// WriteFile writes a file relative to the repository root, creating parent
// directories.
func (r *Repo) WriteFile(relPath, content string) {
	r.t.Helper()
	full := filepath.Join(r.Path, relPath)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		r.t.Fatalf("create dir for %s: %v", relPath, err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		r.t.Fatalf("write %s: %v", relPath, err)
	}
}

// ReadFile reads a file relative to the repository root.
func (r *Repo) ReadFile(relPath string) string {
	r.t.Helper()
	data, err := os.ReadFile(filepath.Join(r.Path, relPath))
	if err != nil {
		r.t.Fatalf("read %s: %v", relPath, err)
	}
	return string(data)
}

// ManifestPath returns the plugin.json path for a plugin, relative to root.
func (r *Repo) ManifestPath(name string) string {
	return filepath.Join("plugins", name, ".claude-plugin", "plugin.json")
}

// AssertFileExists fails the test if the file does not exist.
func (r *Repo) AssertFileExists(relPath string) {
	r.t.Helper()
	if _, err := os.Stat(filepath.Join(r.Path, relPath)); os.IsNotExist(err) {
		r.t.Errorf("expected file to exist: %s", relPath)
	}
}

// AssertFileNotExists fails the test if the file exists.
func (r *Repo) AssertFileNotExists(relPath string) {
	r.t.Helper()
	if _, err := os.Stat(filepath.Join(r.Path, relPath)); err == nil {
		r.t.Errorf("expected file to not exist: %s", relPath)
	}
}

// AssertFileContains fails the test if the file does not contain substr.
func (r *Repo) AssertFileContains(relPath, substr string) {
	r.t.Helper()
	content := r.ReadFile(relPath)
	if !strings.Contains(content, substr) {
		r.t.Errorf("expected file %s to contain %q, got:\n%s", relPath, substr, content)
	}
}

// AssertFileNotContains fails the test if the file contains substr.
func (r *Repo) AssertFileNotContains(relPath, substr string) {
	r.t.Helper()
	content := r.ReadFile(relPath)
	if strings.Contains(content, substr) {
		r.t.Errorf("expected file %s to not contain %q, got:\n%s", relPath, substr, content)
	}
}
