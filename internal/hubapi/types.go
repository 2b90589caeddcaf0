// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tenancy Hub Authors

// Package hubapi is the client for the configuration hub API: tenants,
// subscriptions, modules, and composed module configuration.
package hubapi

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/krallice/azure-tenancy-hub/internal/jschema"
)

// Scope names the level a module attaches at.
type Scope string

const (
	ScopeTenant       Scope = "tenant"
	ScopeSubscription Scope = "subscription"
)

// Tenant is a managed tenant.
type Tenant struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Domain      string `json:"domain,omitempty"`
}

// Subscription is an Azure subscription under a tenant.
type Subscription struct {
	ID          string `json:"id"`
	TenantID    string `json:"tenantId"`
	DisplayName string `json:"displayName"`
	State       string `json:"state,omitempty"`
}

// Module is a named configuration module and its schema document.
type Module struct {
	Name        string          `json:"name"`
	Path        string          `json:"path"`
	Scope       Scope           `json:"scope"`
	Description string          `json:"description,omitempty"`
	Schema      json.RawMessage `json:"schema"`
}

// ParseSchema decodes the module's schema document with property order
// attached.
func (m Module) ParseSchema() (*jschema.Schema, error) {
	if len(m.Schema) == 0 {
		return nil, fmt.Errorf("module %s: no schema document", m.Name)
	}
	schema, err := jschema.Parse(m.Schema, jschema.JSON)
	if err != nil {
		return nil, fmt.Errorf("module %s: %w", m.Name, err)
	}
	return schema, nil
}

// ModuleState is a module's assignment at a scope.
type ModuleState struct {
	Name        string `json:"name"`
	Enabled     bool   `json:"enabled"`
	HasOverride bool   `json:"hasOverride"`
}

// ConfigSources flags which override layers contribute to a composed value.
// The composition itself happens in the backend; these are display flags
// only.
type ConfigSources struct {
	TenantOverride       bool `json:"tenantOverride,omitempty"`
	SubscriptionOverride bool `json:"subscriptionOverride,omitempty"`
}

// ComposedConfig is the backend-resolved effective configuration for a
// scope and module after layering defaults and overrides.
type ComposedConfig struct {
	Composed any           `json:"composed"`
	Sources  ConfigSources `json:"sources"`
}

// ScopeRef addresses a tenant or a subscription within a tenant.
type ScopeRef struct {
	TenantID       string
	SubscriptionID string
}

// IsSubscription reports whether the ref addresses subscription scope.
func (r ScopeRef) IsSubscription() bool {
	return r.SubscriptionID != ""
}

// Validate checks that the ref is addressable.
func (r ScopeRef) Validate() error {
	if r.TenantID == "" {
		return errors.New("scope ref: tenant id is required")
	}
	return nil
}

// String renders the ref for display, e.g. "contoso" or "contoso/sub-01".
func (r ScopeRef) String() string {
	if r.IsSubscription() {
		return r.TenantID + "/" + r.SubscriptionID
	}
	return r.TenantID
}

func (r ScopeRef) basePath() string {
	if r.IsSubscription() {
		return "/tenants/" + r.TenantID + "/subscriptions/" + r.SubscriptionID
	}
	return "/tenants/" + r.TenantID
}
