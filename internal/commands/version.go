// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tenancy Hub Authors

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/krallice/azure-tenancy-hub/internal/version"
)

func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the CLI version",
		Example: `  # Show full version information
  tenhub version

  # Show just the version string
  tenhub version --short`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if short {
				fmt.Println(version.Short())
				return nil
			}
			fmt.Println(version.Info())
			return nil
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print only the version string")

	return cmd
}
