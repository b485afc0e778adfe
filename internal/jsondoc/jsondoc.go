// Package jsondoc exposes path-based JSON reads and writes over raw
// document bytes. It is the safe field-access layer used wherever the
// pipeline touches JSON it did not just marshal itself (existing manifests,
// the aggregate catalog).
package jsondoc

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ErrNotJSON is returned when the document bytes do not parse.
var ErrNotJSON = errors.New("document is not valid JSON")

// Valid reports whether doc parses as JSON.
func Valid(doc []byte) bool {
	return gjson.ValidBytes(doc)
}

// Get returns the value at path as a gjson.Result. The zero Result is
// returned for missing paths; callers use Exists() to distinguish.
func Get(doc []byte, path string) (gjson.Result, error) {
	if !gjson.ValidBytes(doc) {
		return gjson.Result{}, ErrNotJSON
	}
	return gjson.GetBytes(doc, path), nil
}

// GetString returns the string value at path, or "" when absent.
func GetString(doc []byte, path string) (string, error) {
	res, err := Get(doc, path)
	if err != nil {
		return "", err
	}
	return res.String(), nil
}

// Set returns a new document with the value placed at path. The input
// document is never modified.
func Set(doc []byte, path string, value interface{}) ([]byte, error) {
	if len(doc) > 0 && !gjson.ValidBytes(doc) {
		return nil, ErrNotJSON
	}
	out, err := sjson.SetBytes(doc, path, value)
	if err != nil {
		return nil, fmt.Errorf("set %s: %w", path, err)
	}
	return out, nil
}
