package character

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var sheetExtensions = map[string]bool{".yaml": true, ".yml": true, ".json": true}

// LoadSheetFile parses a single YAML or JSON character sheet.
//
// Precondition: path must name a readable file.
// Postcondition: Returns the parsed sheet or a non-nil error.
func LoadSheetFile(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	// JSON is a subset of YAML, so one decoder covers both formats.
	var s Sheet
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing character sheet %s: %w", path, err)
	}
	return &s, nil
}

// LoadSheets reads every .yaml, .yml and .json file in dir, in name order.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed sheets (may be empty slice) or a non-nil error.
func LoadSheets(dir string) ([]*Sheet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if sheetExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)

	sheets := make([]*Sheet, 0, len(paths))
	for _, path := range paths {
		s, err := LoadSheetFile(path)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, s)
	}
	return sheets, nil
}

// LoadRegistry loads every sheet in dir into a Registry.
//
// Postcondition: Returns a Registry or a load/duplicate-name error.
func LoadRegistry(dir string) (*Registry, error) {
	sheets, err := LoadSheets(dir)
	if err != nil {
		return nil, err
	}
	return NewRegistry(sheets)
}
