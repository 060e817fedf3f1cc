// Package loader reads a schema document off disk, sniffing JSON versus
// YAML by file extension and decoding into the untyped `any` tree that
// [github.com/kschead/schemaxform.Parse] expects. YAML support is a
// convenience for hand-written schema files, which are commonly edited as
// YAML even when consumed as JSON elsewhere in a pipeline.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// Load reads the file at path and decodes it into a generic JSON-like
// value suitable for [github.com/kschead/schemaxform.Parse].
func Load(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: reading %s: %w", path, err)
	}

	var v any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("loader: decoding %s as YAML: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("loader: decoding %s as JSON: %w", path, err)
		}
	}
	return v, nil
}
