// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tenancy Hub Authors

package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/krallice/azure-tenancy-hub/internal/hubapi"
	"github.com/krallice/azure-tenancy-hub/internal/session"
)

// scopeOptions are the shared scope-addressing flags. An empty tenant falls
// back to the workspace default.
type scopeOptions struct {
	tenant       string
	subscription string
}

func addScopeFlags(cmd *cobra.Command, opts *scopeOptions) {
	cmd.Flags().StringVarP(&opts.tenant, "tenant", "t", "", "Tenant ID (defaults to the workspace default tenant)")
	cmd.Flags().StringVarP(&opts.subscription, "subscription", "s", "", "Subscription ID for subscription-scope operations")
}

func (o *scopeOptions) ref(ctx *session.Context) (hubapi.ScopeRef, error) {
	ref := hubapi.ScopeRef{
		TenantID:       o.tenant,
		SubscriptionID: o.subscription,
	}
	if ref.TenantID == "" {
		ref.TenantID = ctx.Config.DefaultTenant
	}
	if ref.TenantID == "" {
		return hubapi.ScopeRef{}, errors.New("no tenant given; pass --tenant or set defaultTenant in tenhub.yaml")
	}
	return ref, nil
}
