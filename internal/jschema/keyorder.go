// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tenancy Hub Authors

package jschema

import (
	"bytes"
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// ExtractKeyOrderFromJSON parses raw JSON and extracts the order of keys for
// all "properties" objects. Returns a map from document path (e.g.
// "properties", "properties.address.properties", "$defs.tag.properties")
// to ordered property names.
func ExtractKeyOrderFromJSON(raw []byte) map[string][]string {
	result := make(map[string][]string)

	var extract func(dec *json.Decoder, path string)
	extract = func(dec *json.Decoder, path string) {
		token, err := dec.Token()
		if err != nil {
			return
		}

		delim, ok := token.(json.Delim)
		if !ok {
			return
		}

		switch delim {
		case '{':
			var keys []string
			for dec.More() {
				keyToken, err := dec.Token()
				if err != nil {
					return
				}
				key, ok := keyToken.(string)
				if !ok {
					continue
				}
				keys = append(keys, key)
				extract(dec, joinPath(path, key))
			}
			_, _ = dec.Token() // closing brace

			if path == "properties" || strings.HasSuffix(path, ".properties") {
				result[path] = keys
			}
		case '[':
			for dec.More() {
				extract(dec, path)
			}
			_, _ = dec.Token() // closing bracket
		}
	}

	extract(json.NewDecoder(bytes.NewReader(raw)), "")
	return result
}

// ExtractKeyOrderFromYAML extracts the same path-to-keys mapping from a raw
// YAML document, walking the parsed node tree instead of a token stream.
func ExtractKeyOrderFromYAML(raw []byte) (map[string][]string, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return nil, err
	}

	result := make(map[string][]string)

	var walk func(node *yaml.Node, path string)
	walk = func(node *yaml.Node, path string) {
		if node == nil {
			return
		}
		switch node.Kind {
		case yaml.DocumentNode:
			for _, child := range node.Content {
				walk(child, path)
			}
		case yaml.MappingNode:
			keys := make([]string, 0, len(node.Content)/2)
			for i := 0; i+1 < len(node.Content); i += 2 {
				key := node.Content[i].Value
				keys = append(keys, key)
				walk(node.Content[i+1], joinPath(path, key))
			}
			if path == "properties" || strings.HasSuffix(path, ".properties") {
				result[path] = keys
			}
		case yaml.SequenceNode:
			for _, child := range node.Content {
				walk(child, path)
			}
		}
	}

	walk(&root, "")
	return result, nil
}

// SetPropertyOrder attaches extracted key order to every object node in the
// schema tree, matching nodes to the extractor's path scheme.
func SetPropertyOrder(schema *Schema, keyOrder map[string][]string) {
	var visit func(s *Schema, path string)
	visit = func(s *Schema, path string) {
		if s == nil {
			return
		}
		if len(s.Properties) > 0 {
			propsPath := joinPath(path, "properties")
			if order, ok := keyOrder[propsPath]; ok {
				s.PropertyOrder = order
			}
			for name, child := range s.Properties {
				visit(child, joinPath(propsPath, name))
			}
		}
		if s.Items != nil {
			visit(s.Items, joinPath(path, "items"))
		}
		for name, def := range s.Defs {
			visit(def, joinPath(joinPath(path, "$defs"), name))
		}
	}
	visit(schema, "")
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
