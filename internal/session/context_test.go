// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tenancy Hub Authors

package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krallice/azure-tenancy-hub/internal/config"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

func TestLoadNotInitialized(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := Load(context.Background())
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestLoadInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("version: 99\n"), 0o600))
	chdir(t, dir)

	_, err := Load(context.Background())
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadValid(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		Version:       config.CurrentConfigVersion,
		HubURL:        "https://hub.example.com/api",
		DefaultTenant: "contoso",
	}
	require.NoError(t, cfg.Save(filepath.Join(dir, ConfigFileName)))
	chdir(t, dir)

	ctx, err := Load(context.Background())
	require.NoError(t, err)

	hubCtx := From(ctx)
	require.NotNil(t, hubCtx)
	assert.Equal(t, "https://hub.example.com/api", hubCtx.Config.HubURL)
	assert.NotNil(t, hubCtx.Client)
	assert.Equal(t, "contoso", hubCtx.DefaultRef().TenantID)
	assert.Equal(t, filepath.Join(".tenhub", "history.db"), hubCtx.HistoryDBPath())
}

func TestFromNoContextStored(t *testing.T) {
	assert.Nil(t, From(context.Background()))
}
