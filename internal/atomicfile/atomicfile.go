// Package atomicfile provides atomic file persistence for generated catalog
// documents: write to a temp file in the target directory, optionally gate on
// content validation, then rename into place.
package atomicfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrInvalidJSON is returned by WriteJSON when the payload does not parse.
// The temp file is discarded and the previous file is left untouched.
var ErrInvalidJSON = errors.New("payload is not well-formed JSON")

// WriteFile writes data to path atomically.
//
// The data lands in a temp file in the same directory which is then renamed
// over path, so a concurrent reader sees either the old or the new content,
// never a torn write.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	if perm == 0 {
		if st, err := os.Stat(path); err == nil {
			perm = st.Mode()
		} else {
			perm = 0o644
		}
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tmpPath := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpPath)
		}
	}()

	_ = tmp.Chmod(perm)

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	// Windows cannot rename over an existing file; fall back to remove-then-rename.
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(path)
		if err2 := os.Rename(tmpPath, path); err2 != nil {
			return fmt.Errorf("rename temp file: %w", err)
		}
	}

	committed = true
	return nil
}

// WriteJSON validates that data parses as JSON, then writes it atomically.
// On validation failure nothing is written and ErrInvalidJSON is returned.
func WriteJSON(path string, data []byte, perm os.FileMode) error {
	var probe interface{}
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return WriteFile(path, data, perm)
}

// Backup copies path to a sibling file suffixed with a unix timestamp,
// returning the backup path. A missing source is not an error (there is
// nothing to back up on first run).
func Backup(path string, now time.Time) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read for backup: %w", err)
	}

	backupPath := fmt.Sprintf("%s.backup-%d", path, now.Unix())
	if err := os.WriteFile(backupPath, data, 0o644); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	return backupPath, nil
}
