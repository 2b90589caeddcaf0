// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tenancy Hub Authors

package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/krallice/azure-tenancy-hub/internal/prompts"
	"github.com/krallice/azure-tenancy-hub/internal/session"
)

type configShowOptions struct {
	scope  scopeOptions
	output string // output format: text, json, yaml
}

func newConfigShowCmd() *cobra.Command {
	opts := &configShowOptions{}

	cmd := &cobra.Command{
		Use:   "show [MODULE]",
		Short: "Show the composed configuration for a module",
		Long: `Display the backend-composed configuration for a module at a scope,
with badges marking which override layer set each value.`,
		Example: `  # Show composed config at the default tenant
  tenhub config show netwatch

  # Show composed config at a subscription, as YAML
  tenhub config show netwatch --subscription sub-01 -o yaml`,
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
				moduleName, err = selectModule(cmd, ctx, "Select module to show")
				if err != nil {
					return err
				}
			}
			return runConfigShow(cmd, ctx, moduleName, opts)
		},
	}

	addScopeFlags(cmd, &opts.scope)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}

func runConfigShow(cmd *cobra.Command, ctx *session.Context, moduleName string, opts *configShowOptions) error {
	ref, err := opts.scope.ref(ctx)
	if err != nil {
		return err
	}

	composed, err := ctx.Client.GetComposed(cmd.Context(), ref, moduleName)
	if err != nil {
		return err
	}

	switch opts.output {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(composed.Composed)

	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer func() { _ = enc.Close() }()
		return enc.Encode(composed.Composed)

	default:
		module, err := ctx.Client.GetModule(cmd.Context(), moduleName)
		if err != nil {
			return err
		}
		schema, err := module.ParseSchema()
		if err != nil {
			return err
		}

		fmt.Printf("Scope: %s\n\n", ref.String())
		fmt.Print(prompts.RenderComposed(moduleName, schema, composed))
		return nil
	}
}
