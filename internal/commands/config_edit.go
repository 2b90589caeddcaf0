// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tenancy Hub Authors

package commands

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/krallice/azure-tenancy-hub/internal/history"
	"github.com/krallice/azure-tenancy-hub/internal/prompts"
	"github.com/krallice/azure-tenancy-hub/internal/session"
)

type configEditOptions struct {
	scope scopeOptions
	yes   bool
}

func newConfigEditCmd() *cobra.Command {
	opts := &configEditOptions{}

	cmd := &cobra.Command{
		Use:   "edit [MODULE]",
		Short: "Edit a module's configuration override interactively",
		Long: `Open the module's configuration in a schema-driven form and submit the
result as the scope's new override. The form starts from the composed value;
the submitted payload is recorded in the local history database.`,
		Example: `  # Edit at the default tenant
  tenhub config edit netwatch

  # Edit at a subscription, skipping the save confirmation
  tenhub config edit netwatch --subscription sub-01 --yes`,
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
				moduleName, err = selectModule(cmd, ctx, "Select module to edit")
				if err != nil {
					return err
				}
			}
			return runConfigEdit(cmd, ctx, moduleName, opts)
		},
	}

	addScopeFlags(cmd, &opts.scope)
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Save without confirmation")

	return cmd
}

func runConfigEdit(cmd *cobra.Command, ctx *session.Context, moduleName string, opts *configEditOptions) error {
	ref, err := opts.scope.ref(ctx)
	if err != nil {
		return err
	}

	module, err := ctx.Client.GetModule(cmd.Context(), moduleName)
	if err != nil {
		return err
	}
	schema, err := module.ParseSchema()
	if err != nil {
		return err
	}

	composed, err := ctx.Client.GetComposed(cmd.Context(), ref, moduleName)
	if err != nil {
		return err
	}

	result, err := prompts.RunConfigForm(schema, composed.Composed)
	if err != nil {
		return err
	}

	if !opts.yes {
		save := true
		if err := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Save override for %s at %s?", moduleName, ref.String())).
					Affirmative("Save").
					Negative("Discard").
					Value(&save),
			),
		).WithTheme(prompts.Theme()).Run(); err != nil {
			return err
		}
		if !save {
			fmt.Println("Discarded.")
			return nil
		}
	}

	if err := ctx.Client.SaveOverride(cmd.Context(), ref, moduleName, result); err != nil {
		return err
	}

	store, err := history.Open(ctx.HistoryDBPath())
	if err != nil {
		return fmt.Errorf("open history db: %w", err)
	}
	defer store.Close() //nolint:errcheck

	snap, err := store.Record(cmd.Context(), ref, moduleName, result)
	if err != nil {
		return fmt.Errorf("record snapshot: %w", err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Module", Value: moduleName},
		{Label: "Scope", Value: ref.String()},
		{Label: "Snapshot", Value: snap.ID},
	}, "Override saved")

	return nil
}
