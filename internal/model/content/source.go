package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// Query is a declarative, read-only content request.
type Query struct {
	Section string
	GROQ    string
	Params  map[string]any
}

// Result carries the fetched document or list; Data may be JSON null.
type Result struct {
	Data json.RawMessage `json:"data"`
}

// Empty reports whether the section has nothing to render.
func (r Result) Empty() bool {
	switch string(bytes.TrimSpace(r.Data)) {
	case "", "null", "[]", "{}":
		return true
	}
	return false
}

// Source is the content collaborator every section reads from.
type Source interface {
	Fetch(ctx context.Context, q Query) (Result, error)
}

// Decode unpacks a result into T. ok is false when the result is empty.
func Decode[T any](r Result) (value T, ok bool, err error) {
	if r.Empty() {
		return value, false, nil
	}
	if err := json.Unmarshal(r.Data, &value); err != nil {
		return value, false, fmt.Errorf("decode content: %w", err)
	}
	return value, true, nil
}
