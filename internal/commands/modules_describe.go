// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tenancy Hub Authors

package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/krallice/azure-tenancy-hub/internal/formengine"
	"github.com/krallice/azure-tenancy-hub/internal/jschema"
	"github.com/krallice/azure-tenancy-hub/internal/prompts"
	"github.com/krallice/azure-tenancy-hub/internal/schemadoc"
	"github.com/krallice/azure-tenancy-hub/internal/session"
)

type modulesDescribeOptions struct {
	output string // output format: text, markdown, json
}

func newModulesDescribeCmd() *cobra.Command {
	opts := &modulesDescribeOptions{}

	cmd := &cobra.Command{
		Use:   "describe [MODULE]",
		Short: "Show a module's configuration schema",
		Long:  `Display a module's metadata and configuration schema. If no module name is provided, an interactive selection prompt is shown.`,
		Example: `  # Interactive selection
  tenhub modules describe

  # Show module details in human-readable format
  tenhub modules describe netwatch

  # Render the schema as markdown documentation
  tenhub modules describe netwatch -o markdown`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}

			var moduleName string
			if len(args) > 0 {
				moduleName = args[0]
			} else {
				moduleName, err = selectModule(cmd, ctx, "Select module to describe")
				if err != nil {
					return err
				}
			}
			return runModulesDescribe(cmd, ctx, moduleName, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "Output format (text, markdown, json)")

	return cmd
}

func selectModule(cmd *cobra.Command, ctx *session.Context, title string) (string, error) {
	modules, err := ctx.Client.ListModules(cmd.Context())
	if err != nil {
		return "", err
	}
	if len(modules) == 0 {
		return "", fmt.Errorf("no modules registered")
	}

	options := make([]huh.Option[string], 0, len(modules))
	for _, m := range modules {
		label := m.Name
		if m.Description != "" {
			desc := m.Description
			if len(desc) > 40 {
				desc = desc[:37] + "..."
			}
			label = fmt.Sprintf("%s - %s", m.Name, desc)
		}
		options = append(options, huh.NewOption(label, m.Name))
	}

	var selected string
	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(options...).
				Filtering(true).
				Value(&selected).
				Height(10),
		),
	).WithTheme(prompts.Theme()).Run(); err != nil {
		return "", err
	}

	return selected, nil
}

func runModulesDescribe(cmd *cobra.Command, ctx *session.Context, moduleName string, opts *modulesDescribeOptions) error {
	module, err := ctx.Client.GetModule(cmd.Context(), moduleName)
	if err != nil {
		return err
	}
	schema, err := module.ParseSchema()
	if err != nil {
		return err
	}

	switch opts.output {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(module)

	case "markdown":
		doc, err := schemadoc.Render(module.Name, schema)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(doc)
		return err

	default:
		fmt.Printf("Name:        %s\n", module.Name)
		fmt.Printf("Scope:       %s\n", module.Scope)
		if module.Path != "" {
			fmt.Printf("Path:        %s\n", module.Path)
		}
		if module.Description != "" {
			fmt.Printf("Description: %s\n", module.Description)
		}
		fmt.Println()
		fmt.Println("Schema:")
		printSchemaOutline(schema, "  ")
		return nil
	}
}

// printSchemaOutline prints a compact property outline in declaration order.
func printSchemaOutline(schema *jschema.Schema, indent string) {
	kind := formengine.Resolve(schema)

	switch kind {
	case formengine.KindObject:
		names := schema.OrderedProperties()
		if len(names) == 0 {
			fmt.Printf("%s(no declared properties)\n", indent)
			return
		}
		for _, name := range names {
			prop := schema.Properties[name]
			fmt.Printf("%s- %s (%s%s)%s\n",
				indent, name, formengine.Resolve(prop), propExtras(prop), requiredMark(schema, name))
			if formengine.Resolve(prop).Composite() {
				printSchemaOutline(prop, indent+"  ")
			}
		}

	case formengine.KindArray:
		if schema.Items != nil {
			printSchemaOutline(schema.Items, indent)
		}
	}
}

func propExtras(s *jschema.Schema) string {
	var extras []string
	if s.Format != "" {
		extras = append(extras, "format: "+s.Format)
	}
	if len(s.Enum) > 0 {
		vals := make([]string, len(s.Enum))
		for i, v := range s.Enum {
			vals[i] = fmt.Sprint(v)
		}
		extras = append(extras, "enum: ["+strings.Join(vals, ", ")+"]")
	}
	if len(extras) == 0 {
		return ""
	}
	return ", " + strings.Join(extras, ", ")
}

func requiredMark(parent *jschema.Schema, name string) string {
	if parent.IsRequired(name) {
		return " (required)"
	}
	return ""
}
