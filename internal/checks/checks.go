// Package checks loads the list of selectors a document is graded against.
package checks

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
)

var ErrInvalidFormat = errors.New("invalid checks format")

// Load reads a checks file: a JSON array of selector strings.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open checks file: %w", err)
	}
	defer f.Close()

	list, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}

func Parse(r io.Reader) ([]string, error) {
	var raw any
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ErrInvalidFormat)
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a JSON array, got %s", ErrInvalidFormat, kindOf(raw))
	}

	out := make([]string, 0, len(items))
	for i, it := range items {
		s, ok := it.(string)
		if !ok {
			return nil, fmt.Errorf("%w: element %d is %s, want string", ErrInvalidFormat, i, kindOf(it))
		}
		out = append(out, s)
	}
	return out, nil
}

// Normalize returns a lexicographically sorted copy of list.
func Normalize(list []string) []string {
	out := slices.Clone(list)
	slices.Sort(out)
	return out
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "a boolean"
	case float64:
		return "a number"
	case string:
		return "a string"
	case map[string]any:
		return "an object"
	case []any:
		return "an array"
	default:
		return fmt.Sprintf("%T", v)
	}
}
