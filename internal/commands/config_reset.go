// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tenancy Hub Authors

package commands

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/krallice/azure-tenancy-hub/internal/prompts"
	"github.com/krallice/azure-tenancy-hub/internal/session"
)

type configResetOptions struct {
	scope scopeOptions
	yes   bool
}

func newConfigResetCmd() *cobra.Command {
	opts := &configResetOptions{}

	cmd := &cobra.Command{
		Use:   "reset [MODULE]",
		Short: "Remove a module's override at a scope",
		Long: `Delete the scope's override so the composed configuration reverts to the
layers beneath it.`,
		Example: `  # Reset at the default tenant
  tenhub config reset netwatch

  # Reset at a subscription without confirmation
  tenhub config reset netwatch --subscription sub-01 --yes`,
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
				moduleName, err = selectModule(cmd, ctx, "Select module to reset")
				if err != nil {
					return err
				}
			}
			return runConfigReset(cmd, ctx, moduleName, opts)
		},
	}

	addScopeFlags(cmd, &opts.scope)
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Reset without confirmation")

	return cmd
}

func runConfigReset(cmd *cobra.Command, ctx *session.Context, moduleName string, opts *configResetOptions) error {
	ref, err := opts.scope.ref(ctx)
	if err != nil {
		return err
	}

	if !opts.yes {
		confirmed := false
		if err := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Remove the override for %s at %s?", moduleName, ref.String())).
					Affirmative("Remove").
					Negative("Cancel").
					Value(&confirmed),
			),
		).WithTheme(prompts.Theme()).Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := ctx.Client.DeleteOverride(cmd.Context(), ref, moduleName); err != nil {
		return err
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Module", Value: moduleName},
		{Label: "Scope", Value: ref.String()},
	}, "Override removed")

	return nil
}
