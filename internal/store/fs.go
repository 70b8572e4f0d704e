package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// fileGateway owns the data directory and performs the actual document
// reads and writes. Each collection is one pretty-printed JSON file, fully
// replaced on every write so it stays human-inspectable between runs.
type fileGateway struct {
	dir string
}

func (g fileGateway) path(file string) string {
	return filepath.Join(g.dir, file)
}

// read loads and decodes one collection document. A missing file is an
// error like any other; the caller decides how to recover.
func (g fileGateway) read(file string, v any) error {
	data, err := os.ReadFile(g.path(file))
	if err != nil {
		return fmt.Errorf("store: read %s: %w", file, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("store: parse %s: %w", file, err)
	}
	return nil
}

// write replaces the document with a fresh snapshot of v.
func (g fileGateway) write(file string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", file, err)
	}
	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return fmt.Errorf("store: create data dir %s: %w", g.dir, err)
	}
	if err := os.WriteFile(g.path(file), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", file, err)
	}
	return nil
}
