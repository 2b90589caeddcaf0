// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tenancy Hub Authors

package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/krallice/azure-tenancy-hub/internal/history"
	"github.com/krallice/azure-tenancy-hub/internal/session"
)

type configHistoryOptions struct {
	scope      scopeOptions
	limit      int
	snapshotID string
}

func newConfigHistoryCmd() *cobra.Command {
	opts := &configHistoryOptions{}

	cmd := &cobra.Command{
		Use:   "history [MODULE]",
		Short: "List locally recorded override snapshots",
		Long: `List the override payloads recorded by config edit for a module at a
scope, newest first. Use --id to print one snapshot's full payload.`,
		Example: `  # Last ten snapshots at the default tenant
  tenhub config history netwatch

  # Print a snapshot payload
  tenhub config history netwatch --id 01J9ZX...`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}

			if opts.snapshotID != "" {
				return runConfigHistoryShow(cmd, ctx, opts.snapshotID)
			}

			var moduleName string
			if len(args) > 0 {
				moduleName = args[0]
			} else {
				moduleName, err = selectModule(cmd, ctx, "Select module history")
				if err != nil {
					return err
				}
			}
			return runConfigHistory(cmd, ctx, moduleName, opts)
		},
	}

	addScopeFlags(cmd, &opts.scope)
	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 10, "Maximum snapshots to list (0 for all)")
	cmd.Flags().StringVar(&opts.snapshotID, "id", "", "Print one snapshot's payload by ID")

	return cmd
}

func runConfigHistory(cmd *cobra.Command, ctx *session.Context, moduleName string, opts *configHistoryOptions) error {
	ref, err := opts.scope.ref(ctx)
	if err != nil {
		return err
	}

	store, err := history.Open(ctx.HistoryDBPath())
	if err != nil {
		return fmt.Errorf("open history db: %w", err)
	}
	defer store.Close() //nolint:errcheck

	snaps, err := store.List(cmd.Context(), ref, moduleName, opts.limit)
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		fmt.Printf("No snapshots recorded for %s at %s.\n", moduleName, ref.String())
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tSAVED\tSCOPE")

	for _, snap := range snaps {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n",
			snap.ID, snap.SavedAt.Local().Format(time.RFC3339), snap.Ref().String())
	}

	return w.Flush()
}

func runConfigHistoryShow(cmd *cobra.Command, ctx *session.Context, id string) error {
	store, err := history.Open(ctx.HistoryDBPath())
	if err != nil {
		return fmt.Errorf("open history db: %w", err)
	}
	defer store.Close() //nolint:errcheck

	snap, err := store.Get(cmd.Context(), id)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}
