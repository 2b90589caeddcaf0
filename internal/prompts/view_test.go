// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tenancy Hub Authors

package prompts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krallice/azure-tenancy-hub/internal/hubapi"
	"github.com/krallice/azure-tenancy-hub/internal/jschema"
	"github.com/krallice/azure-tenancy-hub/internal/prompts"
)

func TestRenderComposed(t *testing.T) {
	schema, err := jschema.Parse([]byte(`{
		"type": "object",
		"required": ["zone"],
		"properties": {
			"zone": {"type": "string"},
			"retention": {"type": "integer"},
			"alerting": {
				"type": "object",
				"properties": {"channel": {"type": "string"}}
			},
			"tags": {"type": "array", "items": {"type": "string"}}
		}
	}`), jschema.JSON)
	require.NoError(t, err)

	cfg := &hubapi.ComposedConfig{
		Composed: map[string]any{
			"zone":     "we",
			"alerting": map[string]any{"channel": "#ops"},
			"tags":     []any{"prod"},
		},
		Sources: hubapi.ConfigSources{TenantOverride: true},
	}

	out := prompts.RenderComposed("netwatch", schema, cfg)

	assert.Contains(t, out, "netwatch")
	assert.Contains(t, out, "[tenant override]")
	assert.NotContains(t, out, "[subscription override]")
	assert.Contains(t, out, "zone:")
	assert.Contains(t, out, `"we"`)
	assert.Contains(t, out, "channel:")
	assert.Contains(t, out, `"#ops"`)
	assert.Contains(t, out, "[0]")
	assert.Contains(t, out, `"prod"`)
	// Declared but unset open field.
	assert.Contains(t, out, "retention:")
	assert.Contains(t, out, "(unset)")
}

func TestRenderComposedUnsetRequired(t *testing.T) {
	schema, err := jschema.Parse([]byte(`{
		"type": "object",
		"required": ["zone"],
		"properties": {"zone": {"type": "string"}}
	}`), jschema.JSON)
	require.NoError(t, err)

	out := prompts.RenderComposed("netwatch", schema, &hubapi.ComposedConfig{
		Composed: map[string]any{},
	})

	assert.Contains(t, out, "(unset, required)")
}

func TestRenderComposedEmptyArray(t *testing.T) {
	schema, err := jschema.Parse([]byte(`{
		"type": "object",
		"properties": {"tags": {"type": "array", "items": {"type": "string"}}}
	}`), jschema.JSON)
	require.NoError(t, err)

	out := prompts.RenderComposed("netwatch", schema, &hubapi.ComposedConfig{
		Composed: map[string]any{"tags": []any{}},
	})

	assert.Contains(t, out, "tags:")
	assert.Contains(t, out, "(empty)")
}
