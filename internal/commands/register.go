// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tenancy Hub Authors

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/krallice/azure-tenancy-hub/internal/session"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tenhub",
		Short: "Manage Azure tenant configuration through the hub",
	}

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())
	registerTenantsCmd(rootCmd)
	registerSubscriptionsCmd(rootCmd)
	registerModulesCmd(rootCmd)
	registerConfigCmd(rootCmd)

	return rootCmd
}

func registerTenantsCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:               "tenants",
		Short:             "Inspect managed tenants",
		PersistentPreRunE: session.PreRunLoad,
	}

	cmd.AddCommand(newTenantsListCmd())

	parent.AddCommand(cmd)
}

func registerSubscriptionsCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:               "subscriptions",
		Short:             "Inspect subscriptions under a tenant",
		PersistentPreRunE: session.PreRunLoad,
	}

	cmd.AddCommand(newSubscriptionsListCmd())

	parent.AddCommand(cmd)
}

func registerModulesCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:               "modules",
		Short:             "Manage configuration modules",
		PersistentPreRunE: session.PreRunLoad,
	}

	cmd.AddCommand(newModulesListCmd())
	cmd.AddCommand(newModulesDescribeCmd())
	cmd.AddCommand(newModulesEnableCmd())
	cmd.AddCommand(newModulesDisableCmd())

	parent.AddCommand(cmd)
}

func registerConfigCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:               "config",
		Short:             "View and edit module configuration overrides",
		PersistentPreRunE: session.PreRunLoad,
	}

	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigEditCmd())
	cmd.AddCommand(newConfigResetCmd())
	cmd.AddCommand(newConfigHistoryCmd())

	parent.AddCommand(cmd)
}
