// Package manifest assembles and persists per-plugin JSON manifests.
package manifest

import (
	"fmt"
	"strings"

	"github.com/aidanlsb/bifrost/internal/category"
)

const (
	// MaxDescriptionLen is the hard gate: longer descriptions skip the
	// plugin entirely.
	MaxDescriptionLen = 250

	// WarnDescriptionLen is the soft gate: longer descriptions emit a
	// warning but proceed.
	WarnDescriptionLen = 150
)

// Author identifies a plugin author.
type Author struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Descriptor is the typed plugin.json document.
//
// Agents and Commands are omitted entirely when no matching files exist;
// an empty list is never emitted.
type Descriptor struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Version     string   `json:"version"`
	Author      Author   `json:"author"`
	License     string   `json:"license"`
	Repository  string   `json:"repository"`
	Keywords    []string `json:"keywords"`
	Category    string   `json:"category"`
	Agents      []string `json:"agents,omitempty"`
	Commands    []string `json:"commands,omitempty"`
}

// DescriptionTooLongError reports a description over the hard gate,
// carrying the measured length for the skip record.
type DescriptionTooLongError struct {
	Length int
}

func (e *DescriptionTooLongError) Error() string {
	return fmt.Sprintf("description too long: %d chars (max %d)", e.Length, MaxDescriptionLen)
}

// Validate checks the descriptor at the serialization boundary.
func (d *Descriptor) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("missing name")
	}
	if strings.TrimSpace(d.Description) == "" {
		return fmt.Errorf("missing description")
	}
	if n := len(d.Description); n > MaxDescriptionLen {
		return &DescriptionTooLongError{Length: n}
	}
	if strings.TrimSpace(d.Version) == "" {
		return fmt.Errorf("missing version")
	}
	if d.Category == "" {
		return fmt.Errorf("missing category")
	}
	valid := false
	for _, c := range category.All() {
		if d.Category == string(c) {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unknown category %q", d.Category)
	}
	for _, k := range d.Keywords {
		if k != strings.ToLower(k) {
			return fmt.Errorf("keyword %q is not lowercase", k)
		}
	}
	return nil
}
