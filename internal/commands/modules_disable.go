// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tenancy Hub Authors

package commands

import (
	"github.com/spf13/cobra"
)

func newModulesDisableCmd() *cobra.Command {
	opts := &scopeOptions{}

	cmd := &cobra.Command{
		Use:   "disable [MODULE]",
		Short: "Disable a module at a scope",
		Example: `  # Disable a module at the default tenant
  tenhub modules disable netwatch`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetModuleEnabled(cmd, args, opts, false)
		},
	}

	addScopeFlags(cmd, opts)

	return cmd
}
