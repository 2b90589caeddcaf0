// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tenancy Hub Authors

package jschema

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Parse decodes a schema document and attaches property order extracted from
// the raw bytes.
func Parse(raw []byte, format Format) (*Schema, error) {
	var schema Schema

	switch format {
	case YAML:
		if err := yaml.Unmarshal(raw, &schema); err != nil {
			return nil, fmt.Errorf("parse yaml schema: %w", err)
		}
		keyOrder, err := ExtractKeyOrderFromYAML(raw)
		if err != nil {
			return nil, fmt.Errorf("extract key order: %w", err)
		}
		SetPropertyOrder(&schema, keyOrder)
	case JSON:
		if err := json.Unmarshal(raw, &schema); err != nil {
			return nil, fmt.Errorf("parse json schema: %w", err)
		}
		SetPropertyOrder(&schema, ExtractKeyOrderFromJSON(raw))
	default:
		return nil, fmt.Errorf("unsupported schema format %d", format)
	}

	return &schema, nil
}

// MustParse is a test and fixture helper; it panics on parse failure.
func MustParse(raw []byte, format Format) *Schema {
	schema, err := Parse(raw, format)
	if err != nil {
		panic(err)
	}
	return schema
}
