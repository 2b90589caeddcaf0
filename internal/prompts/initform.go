// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tenancy Hub Authors

package prompts

import (
	"github.com/charmbracelet/huh"
)

// RunInitForm collects the workspace settings interactively. The pointers
// carry flag defaults in and the answers out.
func RunInitForm(hubURL, defaultTenant, historyDB *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Hub URL").
				Description("Base URL of the configuration hub API").
				Placeholder("https://hub.example.com/api").
				Validate(requiredValidator("hub URL")).
				Value(hubURL),
			huh.NewInput().
				Title("Default tenant").
				Description("Tenant ID used when --tenant is omitted (optional)").
				Value(defaultTenant),
			huh.NewInput().
				Title("History database").
				Description("Local snapshot database path (blank for .tenhub/history.db)").
				Value(historyDB),
		),
	).WithTheme(Theme()).Run()
}
