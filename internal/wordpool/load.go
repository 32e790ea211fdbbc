package wordpool

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/stagequiz/internal/storage"
)

// fileFormat is the YAML shape of a word file.
type fileFormat struct {
	Words []string `yaml:"words"`
}

// Load reads a pool from path, choosing the format by extension:
// .yaml/.yml, .db/.sqlite/.sqlite3, anything else as plain text.
func Load(path string) (Pool, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadYAML(path)
	case ".db", ".sqlite", ".sqlite3":
		return loadSQLite(path)
	default:
		return loadText(path)
	}
}

// Resolve picks the pool for a run: an explicit path wins, then a
// non-empty configured list, then the built-in pool.
func Resolve(path string, configured []string) (Pool, error) {
	if path != "" {
		return Load(path)
	}
	if len(configured) > 0 {
		p, err := New(configured)
		if err != nil {
			return nil, fmt.Errorf("wordpool: configured list: %w", err)
		}
		return p, nil
	}
	return Default(), nil
}

func loadText(path string) (Pool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordpool: cannot open %s: %w", path, err)
	}
	defer f.Close()

	p, err := ParseText(f)
	if err != nil {
		return nil, fmt.Errorf("wordpool: cannot read %s: %w", path, err)
	}
	return p, nil
}

func loadYAML(path string) (Pool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("wordpool: cannot read %s: %w", path, err)
	}

	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("wordpool: cannot parse %s: %w", path, err)
	}

	p, err := New(f.Words)
	if err != nil {
		return nil, fmt.Errorf("wordpool: %s: %w", path, err)
	}
	return p, nil
}

func loadSQLite(path string) (Pool, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("wordpool: cannot open %s: %w", path, err)
	}

	store, err := storage.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordpool: %w", err)
	}
	defer store.Close()

	words, err := store.Words()
	if err != nil {
		return nil, fmt.Errorf("wordpool: %w", err)
	}

	p, err := New(words)
	if err != nil {
		return nil, fmt.Errorf("wordpool: %s: %w", path, err)
	}
	return p, nil
}
