package attr

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrNotMapping is returned when a document's top level is not a mapping
// from string keys to values, and so cannot be represented as a Set.
var ErrNotMapping = errors.New("attr: document is not a mapping")

// FromJSON builds a Set from a JSON object. Top-level scalars become
// primitive Values (JSON numbers become Float, following encoding/json);
// nested objects and arrays are composite, so they become references and
// carry identity semantics.
//
// Decoding the same document twice yields sets whose composite entries have
// distinct identity. That is intentional: a freshly parsed nested object is
// a new instance, exactly like a freshly allocated one.
//
// Returns ErrNotMapping if the top level is not a JSON object.
func FromJSON(data []byte) (*Set, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("attr: decoding JSON: %w", err)
	}

	mapping, ok := doc.(map[string]any)
	if !ok {
		return nil, ErrNotMapping
	}

	return FromGoMap(mapping), nil
}

// FromYAML builds a Set from a YAML mapping, with the same classification
// rules as FromJSON. YAML integers become Int and YAML floats become Float,
// following gopkg.in/yaml.v3's native decoding.
//
// Returns ErrNotMapping if the top level is not a mapping with string keys.
func FromYAML(data []byte) (*Set, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("attr: decoding YAML: %w", err)
	}

	if doc == nil {
		return &Set{}, nil
	}

	mapping, ok := doc.(map[string]any)
	if !ok {
		return nil, ErrNotMapping
	}

	return FromGoMap(mapping), nil
}
