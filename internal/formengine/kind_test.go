// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tenancy Hub Authors

package formengine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/krallice/azure-tenancy-hub/internal/formengine"
	"github.com/krallice/azure-tenancy-hub/internal/jschema"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		schema *jschema.Schema
		want   formengine.Kind
	}{
		{"declared object", &jschema.Schema{Type: jschema.TypeList{"object"}}, formengine.KindObject},
		{"declared array", &jschema.Schema{Type: jschema.TypeList{"array"}}, formengine.KindArray},
		{"declared integer", &jschema.Schema{Type: jschema.TypeList{"integer"}}, formengine.KindInteger},
		{"declared number", &jschema.Schema{Type: jschema.TypeList{"number"}}, formengine.KindNumber},
		{"declared boolean", &jschema.Schema{Type: jschema.TypeList{"boolean"}}, formengine.KindBoolean},
		{"declared string", &jschema.Schema{Type: jschema.TypeList{"string"}}, formengine.KindString},
		{
			"list form takes first entry",
			&jschema.Schema{Type: jschema.TypeList{"array", "null"}},
			formengine.KindArray,
		},
		{
			"undeclared with properties",
			&jschema.Schema{Properties: map[string]*jschema.Schema{"a": {}}},
			formengine.KindObject,
		},
		{
			"undeclared with items",
			&jschema.Schema{Items: &jschema.Schema{}},
			formengine.KindArray,
		},
		{
			"enum only degrades to string",
			&jschema.Schema{Enum: []any{"a", "b"}},
			formengine.KindString,
		},
		{"empty node degrades to string", &jschema.Schema{}, formengine.KindString},
		{"nil node degrades to string", nil, formengine.KindString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formengine.Resolve(tt.schema))
		})
	}
}

func TestKindStringAndComposite(t *testing.T) {
	assert.Equal(t, "object", formengine.KindObject.String())
	assert.Equal(t, "array", formengine.KindArray.String())
	assert.Equal(t, "string", formengine.KindString.String())

	assert.True(t, formengine.KindObject.Composite())
	assert.True(t, formengine.KindArray.Composite())
	assert.False(t, formengine.KindBoolean.Composite())
	assert.False(t, formengine.KindInteger.Composite())
}

func TestClassifyPreservesDeclarationOrder(t *testing.T) {
	schema := parseSchema(t, `{
		"type": "object",
		"properties": {
			"name": {"type": "string"},
			"tags": {"type": "array", "items": {"type": "string"}},
			"enabled": {"type": "boolean"}
		}
	}`)

	simple, complex := formengine.Classify(schema)
	assert.Equal(t, []string{"name", "enabled"}, simple)
	assert.Equal(t, []string{"tags"}, complex)
}

func TestClassifyEmptyObject(t *testing.T) {
	simple, complex := formengine.Classify(&jschema.Schema{})
	assert.Empty(t, simple)
	assert.Empty(t, complex)
}

func TestSynthesize(t *testing.T) {
	tests := []struct {
		name   string
		schema *jschema.Schema
		want   any
	}{
		{"declared default wins", &jschema.Schema{Type: jschema.TypeList{"integer"}, Default: 7}, 7},
		{
			"object zero is empty map",
			&jschema.Schema{Type: jschema.TypeList{"object"}, Properties: map[string]*jschema.Schema{
				"a": {Type: jschema.TypeList{"number"}},
			}},
			map[string]any{},
		},
		{"array zero is empty slice", &jschema.Schema{Type: jschema.TypeList{"array"}}, []any{}},
		{"boolean zero", &jschema.Schema{Type: jschema.TypeList{"boolean"}}, false},
		{"number zero", &jschema.Schema{Type: jschema.TypeList{"number"}}, float64(0)},
		{"integer zero", &jschema.Schema{Type: jschema.TypeList{"integer"}}, int64(0)},
		{"string zero", &jschema.Schema{Type: jschema.TypeList{"string"}}, ""},
		{"untyped degrades to string zero", &jschema.Schema{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formengine.Synthesize(tt.schema))
		})
	}
}

func TestPathString(t *testing.T) {
	tests := []struct {
		name string
		path formengine.Path
		want string
	}{
		{"root", formengine.Path{}, ""},
		{"single key", formengine.Path{}.Key("name"), "name"},
		{"nested keys", formengine.Path{}.Key("alerting").Key("channel"), "alerting.channel"},
		{"index", formengine.Path{}.Key("tags").Index(2), "tags[2]"},
		{"index then key", formengine.Path{}.Key("pools").Index(0).Key("size"), "pools[0].size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.path.String())
		})
	}
}

func TestPathExtensionDoesNotAliasBackingArray(t *testing.T) {
	base := formengine.Path{}.Key("a")
	left := base.Key("b")
	right := base.Key("c")

	assert.Equal(t, "a.b", left.String())
	assert.Equal(t, "a.c", right.String())
	assert.Equal(t, "a", base.String())
}
