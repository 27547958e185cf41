package content

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MemoryStore implements Source over a Document held in memory. It answers by
// section name and ignores the GROQ text.
type MemoryStore struct {
	doc Document
}

// NewMemoryStore returns a MemoryStore serving doc.
func NewMemoryStore(doc Document) *MemoryStore {
	return &MemoryStore{doc: doc}
}

// LoadFile reads a YAML content document from disk.
func LoadFile(path string) (Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read content file: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Document{}, fmt.Errorf("parse content file %s: %w", path, err)
	}
	return doc, nil
}

// Fetch returns the section's data, JSON null when absent.
func (s *MemoryStore) Fetch(ctx context.Context, q Query) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	section, ok := Lookup(q.Section)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownSection, q.Section)
	}

	data, err := json.Marshal(section.pick(&s.doc))
	if err != nil {
		return Result{}, fmt.Errorf("encode section %s: %w", section.Name, err)
	}
	return Result{Data: data}, nil
}
