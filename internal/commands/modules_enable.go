// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tenancy Hub Authors

package commands

import (
	"github.com/spf13/cobra"

	"github.com/krallice/azure-tenancy-hub/internal/prompts"
	"github.com/krallice/azure-tenancy-hub/internal/session"
)

func newModulesEnableCmd() *cobra.Command {
	opts := &scopeOptions{}

	cmd := &cobra.Command{
		Use:   "enable [MODULE]",
		Short: "Enable a module at a scope",
		Example: `  # Enable a module at the default tenant
  tenhub modules enable netwatch

  # Enable a module at a subscription
  tenhub modules enable netwatch --tenant contoso --subscription sub-01`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetModuleEnabled(cmd, args, opts, true)
		},
	}

	addScopeFlags(cmd, opts)

	return cmd
}

func runSetModuleEnabled(cmd *cobra.Command, args []string, opts *scopeOptions, enabled bool) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}
	ref, err := opts.ref(ctx)
	if err != nil {
		return err
	}

	verb := "enable"
	if !enabled {
		verb = "disable"
	}

	var moduleName string
	if len(args) > 0 {
		moduleName = args[0]
	} else {
		moduleName, err = selectModule(cmd, ctx, "Select module to "+verb)
		if err != nil {
			return err
		}
	}

	if err := ctx.Client.SetModuleEnabled(cmd.Context(), ref, moduleName, enabled); err != nil {
		return err
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Module", Value: moduleName},
		{Label: "Scope", Value: ref.String()},
	}, "Module "+verb+"d")

	return nil
}
