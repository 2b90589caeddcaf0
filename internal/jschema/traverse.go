// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tenancy Hub Authors

package jschema

import "iter"

// Traverse returns an iterator over all nodes in the schema tree.
// Authored documents can alias nodes, so a visited set guards against
// cycles.
func Traverse(schema *Schema) iter.Seq[*Schema] {
	return func(yield func(*Schema) bool) {
		visited := make(map[*Schema]struct{})
		traverseWithVisited(schema, yield, visited)
	}
}

func traverseWithVisited(schema *Schema, yield func(*Schema) bool, visited map[*Schema]struct{}) bool {
	if schema == nil {
		return true
	}
	if _, ok := visited[schema]; ok {
		return true
	}
	visited[schema] = struct{}{}

	if !yield(schema) {
		return false
	}

	for _, s := range schema.Properties {
		if !traverseWithVisited(s, yield, visited) {
			return false
		}
	}
	if !traverseWithVisited(schema.Items, yield, visited) {
		return false
	}
	for _, s := range schema.Defs {
		if !traverseWithVisited(s, yield, visited) {
			return false
		}
	}

	return true
}
