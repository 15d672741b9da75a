package scaffold

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// Outline is a nested folder outline: keys are directory names, values are
// their children. A nil or empty value is a leaf.
type Outline map[string]Outline

// ParseOutline decodes a YAML outline. Values that are not nested mappings
// (or empty) fail the decode.
func ParseOutline(data []byte) (Outline, error) {
	var o Outline
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("parsing outline: %w", err)
	}
	return o, nil
}

// LoadOutline reads and decodes a YAML outline file.
func LoadOutline(path string) (Outline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading outline: %w", err)
	}
	return ParseOutline(data)
}

// Create materializes outline under dest, creating dest itself first.
// Children are created in sorted name order so failures are reproducible.
func Create(dest string, outline Outline) error {
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return fmt.Errorf("creating outline directory: %w", err)
	}
	for _, name := range slices.Sorted(maps.Keys(outline)) {
		if err := Create(filepath.Join(dest, name), outline[name]); err != nil {
			return err
		}
	}
	return nil
}

// DirFiles returns the names of the regular files directly inside dir, in
// directory order.
func DirFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// CleanDir removes every regular file directly inside dir and returns the
// removed names. Subdirectories and their contents are untouched.
func CleanDir(dir string) ([]string, error) {
	names, err := DirFiles(dir)
	if err != nil {
		return nil, err
	}
	var removed []string
	for _, name := range names {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return removed, fmt.Errorf("removing %s: %w", name, err)
		}
		removed = append(removed, name)
	}
	return removed, nil
}
