// Package config handles marketplace repository configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultFilename is the config file looked up at the repository root.
const DefaultFilename = "bifrost.toml"

// Config represents the marketplace repository configuration.
//
// It is loaded once at startup and never mutated mid-run; every pipeline
// stage receives it read-only.
type Config struct {
	// PluginsDir is the directory under the repo root holding plugin
	// subdirectories.
	PluginsDir string `toml:"plugins_dir"`

	// Version is the single version value mirrored into every generated
	// plugin manifest and the marketplace metadata.
	Version string `toml:"version"`

	// License applied to generated manifests.
	License string `toml:"license"`

	// RepositoryURL is the base URL recorded in each manifest.
	RepositoryURL string `toml:"repository_url"`

	// Author is the default manifest author, used when a plugin's existing
	// manifest does not already carry one.
	Author Author `toml:"author"`

	// Marketplace describes the aggregate catalog document.
	Marketplace Marketplace `toml:"marketplace"`

	// Registry configures the optional dependency-version lookups.
	Registry Registry `toml:"registry"`
}

// Author identifies a manifest author.
type Author struct {
	Name  string `toml:"name"`
	Email string `toml:"email"`
}

// Marketplace holds the aggregate catalog identity.
type Marketplace struct {
	Name        string `toml:"name"`
	OwnerName   string `toml:"owner_name"`
	OwnerEmail  string `toml:"owner_email"`
	OwnerURL    string `toml:"owner_url"`
	Description string `toml:"description"`
	Homepage    string `toml:"homepage"`
}

// Registry configures the package-registry collaborator.
type Registry struct {
	// Endpoint is the base URL of an npm-style registry.
	Endpoint string `toml:"endpoint"`

	// TimeoutSeconds bounds each lookup; failures map to "unknown".
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		PluginsDir:    "plugins",
		Version:       "1.0.0",
		License:       "MIT",
		RepositoryURL: "https://github.com/aidanlsb/bifrost",
		Author: Author{
			Name:  "Bifrost Maintainers",
			Email: "maintainers@bifrost.dev",
		},
		Marketplace: Marketplace{
			Name:        "bifrost-marketplace",
			OwnerName:   "Bifrost Maintainers",
			OwnerEmail:  "maintainers@bifrost.dev",
			OwnerURL:    "https://github.com/aidanlsb/bifrost",
			Description: "Curated catalog of production-ready agent skills",
			Homepage:    "https://github.com/aidanlsb/bifrost",
		},
		Registry: Registry{
			Endpoint:       "https://registry.npmjs.org",
			TimeoutSeconds: 5,
		},
	}
}

// Load reads the config file at path. An empty path resolves to
// DefaultFilename under root. A missing file yields the defaults; a file
// that exists but does not parse is an error.
func Load(root, path string) (*Config, error) {
	if path == "" {
		path = filepath.Join(root, DefaultFilename)
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.PluginsDir == "" {
		cfg.PluginsDir = "plugins"
	}
	if cfg.Registry.TimeoutSeconds <= 0 {
		cfg.Registry.TimeoutSeconds = 5
	}
	return cfg, nil
}

// RegistryTimeout returns the lookup timeout as a duration.
func (c *Config) RegistryTimeout() time.Duration {
	return time.Duration(c.Registry.TimeoutSeconds) * time.Second
}
