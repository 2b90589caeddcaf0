// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tenancy Hub Authors

package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/krallice/azure-tenancy-hub/internal/session"
)

func newTenantsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all managed tenants",
		Example: `  # List tenants
  tenhub tenants list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runTenantsList(cmd, ctx)
		},
	}

	return cmd
}

func runTenantsList(cmd *cobra.Command, ctx *session.Context) error {
	tenants, err := ctx.Client.ListTenants(cmd.Context())
	if err != nil {
		return err
	}
	if len(tenants) == 0 {
		fmt.Println("No tenants visible.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tDOMAIN")

	for _, t := range tenants {
		domain := t.Domain
		if domain == "" {
			domain = "-"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", t.ID, t.DisplayName, domain)
	}

	return w.Flush()
}
