// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tenancy Hub Authors

package formengine_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krallice/azure-tenancy-hub/internal/formengine"
	"github.com/krallice/azure-tenancy-hub/internal/jschema"
)

func parseSchema(t *testing.T, raw string) *jschema.Schema {
	t.Helper()
	schema, err := jschema.Parse([]byte(raw), jschema.JSON)
	require.NoError(t, err)
	return schema
}

// renderObject renders and asserts the root is an object editor, capturing
// emitted roots into the returned pointer.
func renderObject(t *testing.T, schema *jschema.Schema, value any) (*formengine.Object, *any) {
	t.Helper()
	var root any
	node := formengine.Render(schema, value, func(newRoot any) { root = newRoot })
	obj, ok := node.(*formengine.Object)
	require.True(t, ok, "expected object editor, got %T", node)
	return obj, &root
}

func TestEditRebuildsAncestorsAndSharesSiblings(t *testing.T) {
	schema := parseSchema(t, `{
		"type": "object",
		"properties": {
			"alerting": {
				"type": "object",
				"properties": {"channel": {"type": "string"}}
			},
			"limits": {
				"type": "object",
				"properties": {"cpu": {"type": "number"}}
			},
			"tags": {"type": "array", "items": {"type": "string"}}
		}
	}`)
	value := map[string]any{
		"alerting": map[string]any{"channel": "ops"},
		"limits":   map[string]any{"cpu": 4.0},
		"tags":     []any{"prod"},
	}

	obj, root := renderObject(t, schema, value)

	alerting, ok := obj.Field("alerting").(*formengine.Object)
	require.True(t, ok)
	channel, ok := alerting.Field("channel").(*formengine.Scalar)
	require.True(t, ok)

	channel.SetText("platform")

	newRoot, ok := (*root).(map[string]any)
	require.True(t, ok)

	// The edited path is rebuilt top to bottom.
	assert.Equal(t, "platform", newRoot["alerting"].(map[string]any)["channel"])
	assert.NotEqual(t,
		reflect.ValueOf(value).Pointer(),
		reflect.ValueOf(newRoot).Pointer())

	// Untouched sibling subtrees are reused by reference.
	assert.Equal(t,
		reflect.ValueOf(value["limits"]).Pointer(),
		reflect.ValueOf(newRoot["limits"]).Pointer())
	assert.Equal(t,
		reflect.ValueOf(value["tags"]).Pointer(),
		reflect.ValueOf(newRoot["tags"]).Pointer())

	// The pre-edit root is untouched.
	assert.Equal(t, "ops", value["alerting"].(map[string]any)["channel"])
}

func TestUnknownPropertiesArePreserved(t *testing.T) {
	schema := parseSchema(t, `{
		"type": "object",
		"properties": {"region": {"type": "string"}}
	}`)
	value := map[string]any{
		"region":    "westeurope",
		"_etag":     "abc123",
		"extraList": []any{1.0, 2.0},
	}

	obj, root := renderObject(t, schema, value)
	region, ok := obj.Field("region").(*formengine.Scalar)
	require.True(t, ok)

	region.SetText("northeurope")

	newRoot := (*root).(map[string]any)
	assert.Equal(t, "northeurope", newRoot["region"])
	assert.Equal(t, "abc123", newRoot["_etag"])
	assert.Equal(t, []any{1.0, 2.0}, newRoot["extraList"])
}

func TestArrayRemoveShiftsWithoutGaps(t *testing.T) {
	schema := parseSchema(t, `{"type": "array", "items": {"type": "string"}}`)
	value := []any{"a", "b", "c", "d"}

	var root any
	node := formengine.Render(schema, value, func(newRoot any) { root = newRoot })
	arr, ok := node.(*formengine.Array)
	require.True(t, ok)

	arr.Remove(1)

	assert.Equal(t, []any{"a", "c", "d"}, root)
	assert.Equal(t, []any{"a", "b", "c", "d"}, value)
}

func TestArrayAppendSynthesizesEmptyObject(t *testing.T) {
	schema := parseSchema(t, `{
		"type": "array",
		"items": {
			"type": "object",
			"properties": {"a": {"type": "number"}, "b": {"type": "string"}}
		}
	}`)

	var root any
	node := formengine.Render(schema, []any{}, func(newRoot any) { root = newRoot })
	arr := node.(*formengine.Array)

	arr.Append()

	// The object default is the empty object, not zero-filled properties.
	assert.Equal(t, []any{map[string]any{}}, root)
}

func TestArrayUpdateReplacesSingleIndex(t *testing.T) {
	schema := parseSchema(t, `{"type": "array", "items": {"type": "integer"}}`)
	value := []any{int64(1), int64(2), int64(3)}

	var root any
	arr := formengine.Render(schema, value, func(newRoot any) { root = newRoot }).(*formengine.Array)

	item, ok := arr.Items[2].(*formengine.Scalar)
	require.True(t, ok)
	item.SetText("30")

	assert.Equal(t, []any{int64(1), int64(2), int64(30)}, root)
	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, value)
}

func TestNullValueStillRendersArrayEditor(t *testing.T) {
	schema := parseSchema(t, `{"type": "array", "items": {"type": "string"}}`)

	var root any
	node := formengine.Render(schema, nil, func(newRoot any) { root = newRoot })
	arr, ok := node.(*formengine.Array)
	require.True(t, ok)
	assert.Equal(t, 0, arr.Len())

	arr.Append()
	assert.Equal(t, []any{""}, root)
}

func TestNonObjectValueRendersEmptyObjectEditor(t *testing.T) {
	schema := parseSchema(t, `{
		"type": "object",
		"properties": {"name": {"type": "string"}}
	}`)

	obj, root := renderObject(t, schema, "not an object")
	obj.Field("name").(*formengine.Scalar).SetText("edge")

	assert.Equal(t, map[string]any{"name": "edge"}, *root)
}

func TestEnumLiteralRoundTrip(t *testing.T) {
	schema := parseSchema(t, `{"enum": [1, 2, 3]}`)

	var root any
	scalar := formengine.Render(schema, 1.0, func(newRoot any) { root = newRoot }).(*formengine.Scalar)

	require.True(t, scalar.Closed())
	scalar.Select("2")

	// The propagated value is the schema's numeric literal, not "2".
	assert.Equal(t, 2.0, root)
}

func TestEnumFirstDeclaredMatchWins(t *testing.T) {
	schema := &jschema.Schema{Enum: []any{1.0, "1"}}

	var root any
	scalar := formengine.Render(schema, nil, func(newRoot any) { root = newRoot }).(*formengine.Scalar)
	scalar.Select("1")

	assert.Equal(t, 1.0, root)
}

func TestEnumUnmatchedSelectionFallsBackToRawString(t *testing.T) {
	schema := &jschema.Schema{Enum: []any{"low", "high"}}

	var root any
	scalar := formengine.Render(schema, nil, func(newRoot any) { root = newRoot }).(*formengine.Scalar)
	scalar.Select("medium")

	assert.Equal(t, "medium", root)
}

func TestNumericParseFailurePropagatesAbsent(t *testing.T) {
	schema := parseSchema(t, `{
		"type": "object",
		"properties": {"retention": {"type": "integer"}}
	}`)
	value := map[string]any{"retention": 30.0, "other": "kept"}

	obj, root := renderObject(t, schema, value)
	obj.Field("retention").(*formengine.Scalar).SetText("ninety")

	newRoot := (*root).(map[string]any)
	_, present := newRoot["retention"]
	assert.False(t, present, "failed parse must unset the field, not fault")
	assert.Equal(t, "kept", newRoot["other"])
}

func TestEmptyStringPropagatesAbsent(t *testing.T) {
	schema := parseSchema(t, `{
		"type": "object",
		"properties": {"note": {"type": "string"}}
	}`)

	obj, root := renderObject(t, schema, map[string]any{"note": "old"})
	obj.Field("note").(*formengine.Scalar).SetText("")

	newRoot := (*root).(map[string]any)
	_, present := newRoot["note"]
	assert.False(t, present)
}

func TestIntegerAndNumberParseSemantics(t *testing.T) {
	intSchema := &jschema.Schema{Type: jschema.TypeList{"integer"}}
	numSchema := &jschema.Schema{Type: jschema.TypeList{"number"}}

	var root any
	formengine.Render(intSchema, nil, func(v any) { root = v }).(*formengine.Scalar).SetText("42")
	assert.Equal(t, int64(42), root)

	formengine.Render(intSchema, nil, func(v any) { root = v }).(*formengine.Scalar).SetText("4.2")
	assert.Nil(t, root, "integer field rejects float input as absent")

	formengine.Render(numSchema, nil, func(v any) { root = v }).(*formengine.Scalar).SetText("4.2")
	assert.Equal(t, 4.2, root)
}

func TestBooleanCoercion(t *testing.T) {
	schema := &jschema.Schema{Type: jschema.TypeList{"boolean"}}

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil is false", nil, false},
		{"false", false, false},
		{"true", true, true},
		{"empty string is false", "", false},
		{"non-empty string is true", "yes", true},
		{"zero is false", 0.0, false},
		{"nonzero is true", 2.0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scalar := formengine.Render(schema, tt.value, nil).(*formengine.Scalar)
			assert.Equal(t, tt.want, scalar.Bool())
		})
	}
}

func TestBooleanToggleEmitsStrictBool(t *testing.T) {
	schema := &jschema.Schema{Type: jschema.TypeList{"boolean"}}

	var root any
	scalar := formengine.Render(schema, nil, func(v any) { root = v }).(*formengine.Scalar)
	scalar.SetBool(true)
	assert.Equal(t, true, root)
}

func TestMultilineHint(t *testing.T) {
	long := 400
	short := 80

	tests := []struct {
		name   string
		schema *jschema.Schema
		want   bool
	}{
		{"textarea format", &jschema.Schema{Format: "textarea"}, true},
		{"long maxLength", &jschema.Schema{MaxLength: &long}, true},
		{"short maxLength", &jschema.Schema{MaxLength: &short}, false},
		{"plain string", &jschema.Schema{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scalar := formengine.Render(tt.schema, nil, nil).(*formengine.Scalar)
			assert.Equal(t, tt.want, scalar.Multiline())
		})
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	schema := parseSchema(t, `{
		"type": "object",
		"properties": {
			"name": {"type": "string"},
			"tags": {"type": "array", "items": {"type": "string"}}
		}
	}`)
	value := map[string]any{"name": "tenant-a", "tags": []any{"x"}}

	first := formengine.Render(schema, value, nil).(*formengine.Object)
	second := formengine.Render(schema, value, nil).(*formengine.Object)

	assert.Equal(t, first.Value(), second.Value())
	assert.Equal(t, fieldNames(first.Simple), fieldNames(second.Simple))
	assert.Equal(t, fieldNames(first.Complex), fieldNames(second.Complex))
	assert.Equal(t, first.Field("name").(*formengine.Scalar).Text(),
		second.Field("name").(*formengine.Scalar).Text())
}

func TestScalarTextPrefill(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"absent", nil, ""},
		{"string", "abc", "abc"},
		{"integral float", 5.0, "5"},
		{"fractional float", 0.25, "0.25"},
		{"bool", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scalar := formengine.Render(&jschema.Schema{}, tt.value, nil).(*formengine.Scalar)
			assert.Equal(t, tt.want, scalar.Text())
		})
	}
}

func TestLookup(t *testing.T) {
	schema := parseSchema(t, `{
		"type": "object",
		"properties": {
			"pools": {
				"type": "array",
				"items": {
					"type": "object",
					"properties": {"size": {"type": "integer"}}
				}
			}
		}
	}`)
	value := map[string]any{
		"pools": []any{map[string]any{"size": 3.0}},
	}

	root := formengine.Render(schema, value, nil)

	path := formengine.Path{}.Key("pools").Index(0).Key("size")
	node := formengine.Lookup(root, path)
	require.NotNil(t, node)
	assert.Equal(t, formengine.KindInteger, node.Kind())
	assert.Equal(t, "pools[0].size", node.Path().String())

	assert.Nil(t, formengine.Lookup(root, formengine.Path{}.Key("missing")))
	assert.Nil(t, formengine.Lookup(root, formengine.Path{}.Key("pools").Index(9)))
	assert.Same(t, root, formengine.Lookup(root, formengine.Path{}))
}

func TestSectionsStartExpandedOnlyWhenShallow(t *testing.T) {
	schema := parseSchema(t, `{
		"type": "object",
		"properties": {
			"l1": {"type": "object", "properties": {
				"l2": {"type": "object", "properties": {
					"l3": {"type": "object", "properties": {
						"leaf": {"type": "string"}
					}}
				}}
			}}
		}
	}`)

	root := formengine.Render(schema, nil, nil).(*formengine.Object)
	l1 := root.Field("l1").(*formengine.Object)
	l2 := l1.Field("l2").(*formengine.Object)
	l3 := l2.Field("l3").(*formengine.Object)

	assert.True(t, root.Expanded)
	assert.True(t, l1.Expanded)
	assert.True(t, l2.Expanded)
	assert.False(t, l3.Expanded)
}

func fieldNames(fields []formengine.Field) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	return names
}
