// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tenancy Hub Authors

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/krallice/azure-tenancy-hub/internal/config"
	"github.com/krallice/azure-tenancy-hub/internal/prompts"
	"github.com/krallice/azure-tenancy-hub/internal/session"
)

type initOptions struct {
	hubURL         string
	defaultTenant  string
	historyDB      string
	nonInteractive bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a tenhub workspace",
		Long: `Initialize a tenhub workspace with a tenhub.yaml configuration file.
The hub URL is required; a default tenant saves typing --tenant on every command.`,
		Example: `  # Interactive mode
  tenhub init

  # Non-interactive
  tenhub init --hub-url https://hub.example.com/api --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.hubURL, "hub-url", "u", "", "Base URL of the configuration hub API")
	cmd.Flags().StringVarP(&opts.defaultTenant, "default-tenant", "t", "", "Tenant ID used when --tenant is omitted")
	cmd.Flags().StringVar(&opts.historyDB, "history-db", "", "Local snapshot database path")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires --hub-url)")

	return cmd
}

func runInit(opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Check that the current directory isn't already initialized
	configPath := filepath.Join(cwd, session.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return errors.New("tenhub.yaml already exists; workspace already initialized")
	}

	if opts.nonInteractive {
		if opts.hubURL == "" {
			return errors.New("non-interactive mode requires --hub-url")
		}
	} else {
		if err := prompts.RunInitForm(&opts.hubURL, &opts.defaultTenant, &opts.historyDB); err != nil {
			return err
		}
	}

	cfg := config.Config{
		Version:       config.CurrentConfigVersion,
		HubURL:        opts.hubURL,
		DefaultTenant: opts.defaultTenant,
		HistoryDB:     opts.historyDB,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Hub URL", Value: cfg.HubURL},
		{Label: "Config", Value: session.ConfigFileName},
	}, "Initialization completed")

	return nil
}
