// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tenancy Hub Authors

package prompts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/krallice/azure-tenancy-hub/internal/formengine"
	"github.com/krallice/azure-tenancy-hub/internal/hubapi"
	"github.com/krallice/azure-tenancy-hub/internal/jschema"
)

var (
	viewKeyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9ca24"))
	viewHeadingStyle  = lipgloss.NewStyle().Bold(true)
	viewMutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#bababa"))
	viewTenantBadge   = lipgloss.NewStyle().Foreground(lipgloss.Color("#22a6b3")).SetString("[tenant override]")
	viewSubBadge      = lipgloss.NewStyle().Foreground(lipgloss.Color("#e056fd")).SetString("[subscription override]")
	viewRequiredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#eb4d4b"))
)

// RenderComposed renders a module's composed configuration as an indented
// tree. The heading carries a badge for each override layer the backend
// reports as contributing; unset required fields are called out.
func RenderComposed(moduleName string, schema *jschema.Schema, cfg *hubapi.ComposedConfig) string {
	tree := formengine.Render(schema, cfg.Composed, func(any) {})

	var b strings.Builder
	b.WriteString(viewHeadingStyle.Render(moduleName) + sourceBadges(cfg.Sources) + "\n")
	renderNode(&b, tree, 1)
	return b.String()
}

// sourceBadges names the override layers contributing to the composed value.
func sourceBadges(sources hubapi.ConfigSources) string {
	var badges string
	if sources.TenantOverride {
		badges += " " + viewTenantBadge.String()
	}
	if sources.SubscriptionOverride {
		badges += " " + viewSubBadge.String()
	}
	return badges
}

func renderNode(b *strings.Builder, node formengine.Node, depth int) {
	indent := strings.Repeat("  ", depth)

	switch n := node.(type) {
	case *formengine.Object:
		for _, f := range append(append([]formengine.Field{}, n.Simple...), n.Complex...) {
			renderField(b, f, depth)
		}

	case *formengine.Array:
		if n.Len() == 0 {
			b.WriteString(indent + viewMutedStyle.Render("(empty)") + "\n")
			return
		}
		for i, item := range n.Items {
			switch item.(type) {
			case *formengine.Object, *formengine.Array:
				b.WriteString(fmt.Sprintf("%s%s\n", indent, viewKeyStyle.Render(fmt.Sprintf("[%d]", i))))
				renderNode(b, item, depth+1)
			default:
				b.WriteString(fmt.Sprintf("%s%s %s\n",
					indent, viewKeyStyle.Render(fmt.Sprintf("[%d]", i)), scalarText(item)))
			}
		}

	case *formengine.Scalar:
		b.WriteString(indent + scalarText(n) + "\n")
	}
}

func renderField(b *strings.Builder, f formengine.Field, depth int) {
	indent := strings.Repeat("  ", depth)
	key := viewKeyStyle.Render(f.Name + ":")

	switch f.Node.(type) {
	case *formengine.Object, *formengine.Array:
		b.WriteString(indent + key + "\n")
		renderNode(b, f.Node, depth+1)
	default:
		value := scalarText(f.Node)
		if f.Node.Value() == nil && f.Required {
			value = viewRequiredStyle.Render("(unset, required)")
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", indent, key, value))
	}
}

func scalarText(node formengine.Node) string {
	v := node.Value()
	if v == nil {
		return viewMutedStyle.Render("(unset)")
	}
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprint(v)
}
