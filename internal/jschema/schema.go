// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tenancy Hub Authors

// Package jschema models the subset of JSON Schema used by hub module
// configuration documents, preserving the property declaration order
// that the form engine renders by.
package jschema

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Schema is a single node of a module configuration schema document.
//
// PropertyOrder is not part of the wire format; it is populated during
// parsing from the raw document bytes (see SetPropertyOrder) because Go
// maps do not retain key order.
type Schema struct {
	Type        TypeList           `json:"type,omitempty" yaml:"type,omitempty"`
	Title       string             `json:"title,omitempty" yaml:"title,omitempty"`
	Description string             `json:"description,omitempty" yaml:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty" yaml:"items,omitempty"`
	Required    []string           `json:"required,omitempty" yaml:"required,omitempty"`
	Enum        []any              `json:"enum,omitempty" yaml:"enum,omitempty"`
	Default     any                `json:"default,omitempty" yaml:"default,omitempty"`

	Minimum   *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum   *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	MinLength *int     `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Pattern   string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Format    string   `json:"format,omitempty" yaml:"format,omitempty"`

	// Ref and Defs are carried for passthrough and documentation only;
	// reference resolution is out of scope.
	Ref  string             `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Defs map[string]*Schema `json:"$defs,omitempty" yaml:"$defs,omitempty"`

	PropertyOrder []string `json:"-" yaml:"-"`
}

// IsRequired reports whether the named property is listed in Required.
func (s *Schema) IsRequired(name string) bool {
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}

// OrderedProperties returns property names in their original document
// order when known, with any stragglers appended afterwards.
func (s *Schema) OrderedProperties() []string {
	if len(s.Properties) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(s.Properties))
	result := make([]string, 0, len(s.Properties))
	for _, name := range s.PropertyOrder {
		if _, ok := s.Properties[name]; ok && !seen[name] {
			result = append(result, name)
			seen[name] = true
		}
	}
	for name := range s.Properties {
		if !seen[name] {
			result = append(result, name)
		}
	}
	return result
}

// TypeList holds the "type" keyword, which may be a single string or a
// non-empty array of strings. The first entry is authoritative for
// rendering; true union rendering is not supported.
type TypeList []string

// First returns the authoritative type, or "" when no type is declared.
func (t TypeList) First() string {
	if len(t) == 0 {
		return ""
	}
	return t[0]
}

// UnmarshalJSON accepts either a string or an array of strings.
func (t *TypeList) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*t = nil
		return nil
	}
	switch data[0] {
	case '"':
		var single string
		if err := json.Unmarshal(data, &single); err != nil {
			return err
		}
		*t = TypeList{single}
		return nil
	case '[':
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("type: list form must be an array of strings: %w", err)
		}
		*t = TypeList(list)
		return nil
	default:
		return fmt.Errorf("type: expected string or array, got %s", string(data))
	}
}

// MarshalJSON emits a bare string for the single-entry form.
func (t TypeList) MarshalJSON() ([]byte, error) {
	switch len(t) {
	case 0:
		return []byte("null"), nil
	case 1:
		return json.Marshal(t[0])
	default:
		return json.Marshal([]string(t))
	}
}

// UnmarshalYAML mirrors the JSON behaviour to keep YAML parity.
func (t *TypeList) UnmarshalYAML(value *yaml.Node) error {
	if value == nil {
		*t = nil
		return nil
	}
	switch value.Kind {
	case yaml.ScalarNode:
		var single string
		if err := value.Decode(&single); err != nil {
			return err
		}
		*t = TypeList{single}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return fmt.Errorf("type: list form must be an array of strings: %w", err)
		}
		*t = TypeList(list)
		return nil
	default:
		return fmt.Errorf("type: expected string or array, got yaml kind %d", value.Kind)
	}
}

// Format identifies a schema document encoding.
type Format int

const (
	JSON Format = iota
	YAML
)

// FormatFromPath determines the document format from a file extension.
// Unknown extensions default to JSON.
func FormatFromPath(path string) Format {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return YAML
	}
	return JSON
}

// IsInternalRef returns true if ref points inside the same document.
func IsInternalRef(ref string) bool {
	return strings.HasPrefix(ref, "#/")
}
