// Package report serializes grading results.
package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("unknown output format")

func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case "", JSON:
		return JSON, nil
	case YAML, "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w %q (want json or yaml)", ErrUnknownFormat, raw)
	}
}

// Write renders result with keys in sorted order. JSON output is indented by
// four spaces and leaves characters such as '>' unescaped.
func Write(w io.Writer, result map[string]bool, format Format) error {
	switch format {
	case JSON, "":
		return writeJSON(w, result)
	case YAML:
		return writeYAML(w, result)
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

func writeJSON(w io.Writer, result map[string]bool) error {
	if result == nil {
		result = map[string]bool{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(result)
}

func writeYAML(w io.Writer, result map[string]bool) error {
	keys := make([]string, 0, len(result))
	for k := range result {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range keys {
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: fmt.Sprint(result[k])},
		)
	}
	if len(keys) == 0 {
		root.Style = yaml.FlowStyle
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}
