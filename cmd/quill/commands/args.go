package commands

import (
	"strings"

	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// decodeValue reads a command line value as a YAML scalar, so 3 is an int and true a bool.
// Anything that is not a plain scalar stays a string.
func decodeValue(raw string) any {
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &node); err != nil || len(node.Content) != 1 {
		return raw
	}
	scalar := node.Content[0]
	if scalar.Kind != yaml.ScalarNode {
		return raw
	}
	if scalar.Style != 0 {
		return scalar.Value
	}

	var v any
	if err := scalar.Decode(&v); err != nil {
		return raw
	}
	if v == nil && raw != "null" && raw != "~" {
		return raw
	}
	return v
}

// parseNamed splits name=value pairs.
func parseNamed(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	named := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok {
			return nil, zerr.With(domain.ErrInvalidArgument, "arg", pair)
		}
		if !domain.IsArgumentName(name) {
			return nil, zerr.With(domain.ErrInvalidArgumentName, "arg", name)
		}
		named[name] = decodeValue(value)
	}
	return named, nil
}

func parsePositional(values []string) []any {
	if len(values) == 0 {
		return nil
	}
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = decodeValue(v)
	}
	return out
}
