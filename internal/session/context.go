// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tenancy Hub Authors

// Package session provides workspace context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/krallice/azure-tenancy-hub/internal/config"
	"github.com/krallice/azure-tenancy-hub/internal/hubapi"
)

var (
	// ErrNotInitialized indicates no tenhub.yaml was found in the current directory.
	ErrNotInitialized = errors.New("not in a tenhub workspace (tenhub.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ConfigFileName is the name of the tenhub configuration file.
const ConfigFileName = "tenhub.yaml"

// TokenEnv is the environment variable holding the hub API token.
const TokenEnv = "TENHUB_TOKEN"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved workspace configuration and the hub client.
type Context struct {
	Config *config.Config
	Client *hubapi.Client
}

// HistoryDBPath resolves the local history database location, defaulting to
// .tenhub/history.db under the workspace.
func (c *Context) HistoryDBPath() string {
	if c.Config.HistoryDB != "" {
		return c.Config.HistoryDB
	}
	return filepath.Join(".tenhub", "history.db")
}

// DefaultRef returns a scope ref for the workspace default tenant, if set.
func (c *Context) DefaultRef() hubapi.ScopeRef {
	return hubapi.ScopeRef{TenantID: c.Config.DefaultTenant}
}

// Load loads the workspace context from the current working directory and
// returns a new context.Context with the tenhub Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, ConfigFileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}

	hubCtx := &Context{
		Config: cfg,
		Client: hubapi.NewClient(cfg.HubURL, os.Getenv(TokenEnv)),
	}

	return context.WithValue(ctx, contextKey{}, hubCtx), nil
}

// From extracts the tenhub Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if hubCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return hubCtx
	}
	return nil
}
