// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tenancy Hub Authors

// Package schemadoc renders a module configuration schema as markdown
// documentation.
package schemadoc

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/krallice/azure-tenancy-hub/internal/formengine"
	"github.com/krallice/azure-tenancy-hub/internal/jschema"
)

//go:embed markdown.md.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("markdown.md.tmpl").ParseFS(tmplFS, "markdown.md.tmpl"))

// Doc is the prepared documentation model for template execution.
type Doc struct {
	Title       string
	Description string
	Sections    []Section
}

// Section documents one object node; nested objects get their own section.
type Section struct {
	Heading     string
	Description string
	Fields      []Field
}

// Field is one row of a section's field table.
type Field struct {
	Name        string
	Type        string
	Required    bool
	Description string
	Constraints string
}

// Render produces markdown documentation for a module schema.
func Render(moduleName string, schema *jschema.Schema) ([]byte, error) {
	doc := &Doc{
		Title:       moduleName,
		Description: schema.Description,
	}
	collectSections(doc, moduleName, schema)

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "markdown.md.tmpl", doc); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// collectSections walks object nodes depth-first in declaration order,
// emitting one section per object.
func collectSections(doc *Doc, heading string, schema *jschema.Schema) {
	if formengine.Resolve(schema) == formengine.KindArray {
		items := schema.Items
		if items != nil && formengine.Resolve(items) == formengine.KindObject {
			collectSections(doc, heading+"[]", items)
		}
		return
	}

	section := Section{Heading: heading, Description: schema.Description}
	for _, name := range schema.OrderedProperties() {
		prop := schema.Properties[name]
		section.Fields = append(section.Fields, Field{
			Name:        name,
			Type:        typeString(prop),
			Required:    schema.IsRequired(name),
			Description: prop.Description,
			Constraints: formatConstraints(prop),
		})
	}
	doc.Sections = append(doc.Sections, section)

	_, complex := formengine.Classify(schema)
	for _, name := range complex {
		collectSections(doc, heading+"."+name, schema.Properties[name])
	}
}

// typeString renders a compact type expression, e.g. "array<object>".
func typeString(s *jschema.Schema) string {
	kind := formengine.Resolve(s)
	if kind != formengine.KindArray {
		return kind.String()
	}
	if s.Items == nil {
		return "array<string>"
	}
	return "array<" + typeString(s.Items) + ">"
}

// formatConstraints formats a field's advisory constraints as a
// human-readable string.
func formatConstraints(s *jschema.Schema) string {
	var parts []string

	if len(s.Enum) > 0 {
		enumVals := make([]string, len(s.Enum))
		for i, v := range s.Enum {
			enumVals[i] = fmt.Sprintf("`%v`", v)
		}
		parts = append(parts, "enum: "+strings.Join(enumVals, ", "))
	}
	if s.Pattern != "" {
		parts = append(parts, fmt.Sprintf("pattern: `%s`", s.Pattern))
	}
	if s.Format != "" {
		parts = append(parts, "format: "+s.Format)
	}
	if s.MinLength != nil {
		parts = append(parts, fmt.Sprintf("minLength: %d", *s.MinLength))
	}
	if s.MaxLength != nil {
		parts = append(parts, fmt.Sprintf("maxLength: %d", *s.MaxLength))
	}
	if s.Minimum != nil {
		parts = append(parts, fmt.Sprintf("minimum: %v", *s.Minimum))
	}
	if s.Maximum != nil {
		parts = append(parts, fmt.Sprintf("maximum: %v", *s.Maximum))
	}
	if s.Default != nil {
		parts = append(parts, fmt.Sprintf("default: `%v`", s.Default))
	}

	return strings.Join(parts, ", ")
}
