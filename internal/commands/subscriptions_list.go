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

func newSubscriptionsListCmd() *cobra.Command {
	opts := &scopeOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subscriptions under a tenant",
		Example: `  # List subscriptions for the default tenant
  tenhub subscriptions list

  # List subscriptions for a specific tenant
  tenhub subscriptions list --tenant contoso`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runSubscriptionsList(cmd, ctx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.tenant, "tenant", "t", "", "Tenant ID (defaults to the workspace default tenant)")

	return cmd
}

func runSubscriptionsList(cmd *cobra.Command, ctx *session.Context, opts *scopeOptions) error {
	ref, err := opts.ref(ctx)
	if err != nil {
		return err
	}

	subs, err := ctx.Client.ListSubscriptions(cmd.Context(), ref.TenantID)
	if err != nil {
		return err
	}
	if len(subs) == 0 {
		fmt.Printf("No subscriptions under tenant %s.\n", ref.TenantID)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tSTATE")

	for _, s := range subs {
		state := s.State
		if state == "" {
			state = "-"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", s.ID, s.DisplayName, state)
	}

	return w.Flush()
}
