// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tenancy Hub Authors

package formengine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/krallice/azure-tenancy-hub/internal/jschema"
)

// multilineLength is the maxLength threshold above which a string field is
// rendered as a multi-line input.
const multilineLength = 200

// expandDepth is the deepest nesting level whose sections start expanded.
const expandDepth = 2

// Node is one editor in the editable tree. The concrete type is *Object,
// *Array or *Scalar, matching the node's resolved kind.
type Node interface {
	Kind() Kind
	Path() Path
	Schema() *jschema.Schema
	// Value is the node's current value as seen at render time.
	Value() any
}

// Render builds the editable tree for a schema and its current value.
// Every edit made through the tree calls onChange exactly once with a
// brand-new root value; the caller holds the root and re-renders from it.
// The engine never mutates the value it was given.
func Render(schema *jschema.Schema, value any, onChange func(newRoot any)) Node {
	if onChange == nil {
		onChange = func(any) {}
	}
	return build(schema, value, Path{}, onChange)
}

// build constructs the editor for one node. emit receives this node's new
// value and is responsible for splicing it into the parent container.
func build(schema *jschema.Schema, value any, path Path, emit func(any)) Node {
	switch Resolve(schema) {
	case KindObject:
		return newObject(schema, value, path, emit)
	case KindArray:
		return newArray(schema, value, path, emit)
	default:
		return newScalar(schema, value, path, emit)
	}
}

// Field is a named child editor of an object node.
type Field struct {
	Name     string
	Required bool
	Node     Node
}

// Object edits a mapping value. Properties declared by the schema are split
// into inline scalar fields and collapsible composite sections; keys present
// in the value but absent from the schema are preserved verbatim and passed
// through unmodified on every edit.
type Object struct {
	schema *jschema.Schema
	path   Path
	value  map[string]any
	emit   func(any)

	// Expanded is a presentational hint only; it may be re-derived or
	// flipped freely without affecting correctness.
	Expanded bool

	Simple  []Field
	Complex []Field
}

func newObject(schema *jschema.Schema, value any, path Path, emit func(any)) *Object {
	obj := &Object{
		schema:   schema,
		path:     path,
		value:    asObject(value),
		emit:     emit,
		Expanded: path.Depth() <= expandDepth,
	}

	simple, complex := Classify(schema)
	obj.Simple = obj.buildFields(simple)
	obj.Complex = obj.buildFields(complex)
	return obj
}

func (o *Object) buildFields(names []string) []Field {
	fields := make([]Field, 0, len(names))
	for _, name := range names {
		name := name
		child := build(
			o.schema.Properties[name],
			o.value[name],
			o.path.Key(name),
			func(v any) { o.emit(objectWith(o.value, name, v)) },
		)
		fields = append(fields, Field{
			Name:     name,
			Required: o.schema.IsRequired(name),
			Node:     child,
		})
	}
	return fields
}

func (o *Object) Kind() Kind              { return KindObject }
func (o *Object) Path() Path              { return o.path }
func (o *Object) Schema() *jschema.Schema { return o.schema }
func (o *Object) Value() any              { return o.value }

// Field returns the named child editor, or nil when the schema does not
// declare it.
func (o *Object) Field(name string) Node {
	for _, f := range o.Simple {
		if f.Name == name {
			return f.Node
		}
	}
	for _, f := range o.Complex {
		if f.Name == name {
			return f.Node
		}
	}
	return nil
}

// Array edits a sequence value. A value that is not array-shaped (including
// null) renders as an empty array editor; the node's kind never follows the
// value.
type Array struct {
	schema *jschema.Schema
	items  *jschema.Schema
	path   Path
	value  []any
	emit   func(any)

	Expanded bool
	Items    []Node
}

// implicitItems is the item schema used when an array node declares none.
var implicitItems = &jschema.Schema{Type: jschema.TypeList{"string"}}

func newArray(schema *jschema.Schema, value any, path Path, emit func(any)) *Array {
	items := schema.Items
	if items == nil {
		items = implicitItems
	}

	arr := &Array{
		schema:   schema,
		items:    items,
		path:     path,
		value:    asArray(value),
		emit:     emit,
		Expanded: path.Depth() <= expandDepth,
	}

	arr.Items = make([]Node, len(arr.value))
	for i := range arr.value {
		i := i
		arr.Items[i] = build(
			items,
			arr.value[i],
			path.Index(i),
			func(v any) { arr.emit(arrayWith(arr.value, i, v)) },
		)
	}
	return arr
}

func (a *Array) Kind() Kind              { return KindArray }
func (a *Array) Path() Path              { return a.path }
func (a *Array) Schema() *jschema.Schema { return a.schema }
func (a *Array) Value() any              { return a.value }

// ItemSchema is the effective element schema, including the implicit
// string-kind node for arrays that declare no items.
func (a *Array) ItemSchema() *jschema.Schema { return a.items }

// Len is the current element count.
func (a *Array) Len() int { return len(a.value) }

// Append synthesizes a default element value and emits the sequence with it
// appended.
func (a *Array) Append() {
	a.emit(arrayAppend(a.value, Synthesize(a.items)))
}

// Remove emits the sequence with the element at i excluded; later elements
// shift down by one.
func (a *Array) Remove(i int) {
	a.emit(arrayRemove(a.value, i))
}

// Update emits a shallow copy of the sequence with position i replaced.
func (a *Array) Update(i int, v any) {
	a.emit(arrayWith(a.value, i, v))
}

// Choice is one closed-choice option: the display label and the schema's
// original literal value.
type Choice struct {
	Label string
	Value any
}

// Scalar edits a leaf value: text, numeric, boolean, or closed-choice.
type Scalar struct {
	schema *jschema.Schema
	kind   Kind
	path   Path
	value  any
	emit   func(any)
}

func newScalar(schema *jschema.Schema, value any, path Path, emit func(any)) *Scalar {
	return &Scalar{
		schema: schema,
		kind:   Resolve(schema),
		path:   path,
		value:  value,
		emit:   emit,
	}
}

func (s *Scalar) Kind() Kind              { return s.kind }
func (s *Scalar) Path() Path              { return s.path }
func (s *Scalar) Schema() *jschema.Schema { return s.schema }
func (s *Scalar) Value() any              { return s.value }

// Closed reports whether the field is constrained to an enumerated set of
// literals, which forces closed-choice rendering regardless of kind.
func (s *Scalar) Closed() bool {
	return len(s.schema.Enum) > 0
}

// Choices returns the closed-choice options, or nil for open fields.
func (s *Scalar) Choices() []Choice {
	if !s.Closed() {
		return nil
	}
	choices := make([]Choice, 0, len(s.schema.Enum))
	for _, v := range s.schema.Enum {
		choices = append(choices, Choice{Label: fmt.Sprint(v), Value: v})
	}
	return choices
}

// Multiline reports whether a string field should use a multi-line input.
func (s *Scalar) Multiline() bool {
	if s.schema.Format == "textarea" {
		return true
	}
	return s.schema.MaxLength != nil && *s.schema.MaxLength > multilineLength
}

// Bool coerces the current value to a strict boolean.
func (s *Scalar) Bool() bool {
	return truthy(s.value)
}

// Text renders the current value for input prefill; an absent value renders
// as the empty string.
func (s *Scalar) Text() string {
	switch v := s.value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// SetBool emits the toggled boolean.
func (s *Scalar) SetBool(b bool) {
	s.emit(b)
}

// SetText parses input per the field's kind and emits the result. A numeric
// parse failure and an empty string both propagate as an absent value, never
// as a rendering fault: the field becomes unset, not an error.
func (s *Scalar) SetText(input string) {
	switch s.kind {
	case KindInteger:
		n, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
		if err != nil {
			s.emit(nil)
			return
		}
		s.emit(n)
	case KindNumber:
		f, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
		if err != nil {
			s.emit(nil)
			return
		}
		s.emit(f)
	case KindBoolean:
		b, err := strconv.ParseBool(strings.TrimSpace(input))
		if err != nil {
			s.emit(nil)
			return
		}
		s.emit(b)
	default:
		if input == "" {
			s.emit(nil)
			return
		}
		s.emit(input)
	}
}

// Select maps a chosen display label back to the enum literal with the
// matching string representation, first declared match winning, so the
// emitted value keeps the schema's original literal type. An unmatched
// label falls back to the raw selection string.
func (s *Scalar) Select(label string) {
	for _, v := range s.schema.Enum {
		if fmt.Sprint(v) == label {
			s.emit(v)
			return
		}
	}
	s.emit(label)
}

// Lookup walks the editable tree to the node at path, returning nil when the
// path does not address a rendered node.
func Lookup(root Node, path Path) Node {
	node := root
	for _, seg := range path {
		switch n := node.(type) {
		case *Object:
			if seg.IsIndex() {
				return nil
			}
			node = n.Field(seg.Key)
		case *Array:
			if !seg.IsIndex() || seg.Index < 0 || seg.Index >= len(n.Items) {
				return nil
			}
			node = n.Items[seg.Index]
		default:
			return nil
		}
		if node == nil {
			return nil
		}
	}
	return node
}
