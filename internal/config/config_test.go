// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tenancy Hub Authors

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krallice/azure-tenancy-hub/internal/config"
)

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tenhub.yaml")

	cfg := &config.Config{
		Version:       config.CurrentConfigVersion,
		HubURL:        "https://hub.example.com/api",
		DefaultTenant: "contoso",
		HistoryDB:     ".tenhub/history.db",
	}
	require.NoError(t, cfg.Save(path))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.True(t, os.IsNotExist(err))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{
			"valid",
			config.Config{Version: config.CurrentConfigVersion, HubURL: "https://hub.example.com"},
			false,
		},
		{
			"wrong version",
			config.Config{Version: 99, HubURL: "https://hub.example.com"},
			true,
		},
		{
			"missing hub url",
			config.Config{Version: config.CurrentConfigVersion},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
