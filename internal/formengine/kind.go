// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tenancy Hub Authors

// Package formengine renders an editable, type-correct view of a module
// configuration value from its schema, and propagates edits back out as
// new immutable root values.
//
// The engine is stateless: Render is a pure function of the schema and the
// current value, every edit produces a brand-new root through the onChange
// callback, and the caller re-renders from whatever root it last received.
package formengine

import "github.com/krallice/azure-tenancy-hub/internal/jschema"

// Kind is the resolved rendering kind of a schema node. It is computed once
// per node and is stable for the lifetime of a render pass regardless of the
// current value.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindInteger
	KindBoolean
	KindObject
	KindArray
)

// String returns the JSON Schema spelling of the kind.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindNumber:
		return "number"
	case KindInteger:
		return "integer"
	case KindBoolean:
		return "boolean"
	default:
		return "string"
	}
}

// Composite reports whether the kind requires recursive rendering.
func (k Kind) Composite() bool {
	return k == KindObject || k == KindArray
}

// Resolve determines the effective kind of a schema node. A declared type
// wins; otherwise the node shape decides; an unresolvable node degrades to
// string rather than failing, since authored documents may be partial.
func Resolve(s *jschema.Schema) Kind {
	if s == nil {
		return KindString
	}
	switch s.Type.First() {
	case "object":
		return KindObject
	case "array":
		return KindArray
	case "number":
		return KindNumber
	case "integer":
		return KindInteger
	case "boolean":
		return KindBoolean
	case "string":
		return KindString
	}
	if len(s.Properties) > 0 {
		return KindObject
	}
	if s.Items != nil {
		return KindArray
	}
	// Enum-only nodes render as closed-choice strings.
	return KindString
}
