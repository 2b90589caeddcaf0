// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tenancy Hub Authors

package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/krallice/azure-tenancy-hub/internal/hubapi"
	"github.com/krallice/azure-tenancy-hub/internal/session"
)

func newModulesListCmd() *cobra.Command {
	opts := &scopeOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List configuration modules",
		Long: `List the configuration modules the hub knows about.
When a scope is addressable, each module's enablement and override state at
that scope is shown alongside.`,
		Example: `  # List modules with state at the default tenant
  tenhub modules list

  # List modules with state at a subscription
  tenhub modules list --tenant contoso --subscription sub-01`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runModulesList(cmd, ctx, opts)
		},
	}

	addScopeFlags(cmd, opts)

	return cmd
}

func runModulesList(cmd *cobra.Command, ctx *session.Context, opts *scopeOptions) error {
	modules, err := ctx.Client.ListModules(cmd.Context())
	if err != nil {
		return err
	}
	if len(modules) == 0 {
		fmt.Println("No modules registered.")
		return nil
	}

	states := map[string]hubapi.ModuleState{}
	if ref, refErr := opts.ref(ctx); refErr == nil {
		list, err := ctx.Client.ListModuleStates(cmd.Context(), ref)
		if err != nil {
			return err
		}
		for _, st := range list {
			states[st.Name] = st
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if len(states) > 0 {
		_, _ = fmt.Fprintln(w, "NAME\tSCOPE\tENABLED\tOVERRIDE\tDESCRIPTION")
	} else {
		_, _ = fmt.Fprintln(w, "NAME\tSCOPE\tDESCRIPTION")
	}

	for _, m := range modules {
		desc := m.Description
		if utf8.RuneCountInString(desc) > 40 {
			desc = string([]rune(desc)[:37]) + "..."
		}
		if desc == "" {
			desc = "-"
		}

		if len(states) > 0 {
			st := states[m.Name]
			_, _ = fmt.Fprintf(w, "%s\t%s\t%t\t%t\t%s\n", m.Name, m.Scope, st.Enabled, st.HasOverride, desc)
			continue
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", m.Name, m.Scope, desc)
	}

	return w.Flush()
}
