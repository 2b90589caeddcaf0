// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tenancy Hub Authors

package hubapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const defaultTimeout = 30 * time.Second

// APIError is a non-2xx response from the hub.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code,omitempty"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("hub api: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("hub api: status %d", e.StatusCode)
}

// Client talks to the configuration hub API.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// NewClient creates a hub client. token may be empty for unauthenticated
// hubs (local development).
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpc:   &http.Client{Timeout: defaultTimeout},
	}
}

// ListTenants returns all tenants visible to the caller.
func (c *Client) ListTenants(ctx context.Context) ([]Tenant, error) {
	var tenants []Tenant
	if err := c.do(ctx, http.MethodGet, "/tenants", nil, &tenants); err != nil {
		return nil, err
	}
	return tenants, nil
}

// ListSubscriptions returns the subscriptions under a tenant.
func (c *Client) ListSubscriptions(ctx context.Context, tenantID string) ([]Subscription, error) {
	var subs []Subscription
	if err := c.do(ctx, http.MethodGet, "/tenants/"+tenantID+"/subscriptions", nil, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// ListModules returns every module descriptor the hub knows about.
func (c *Client) ListModules(ctx context.Context) ([]Module, error) {
	var modules []Module
	if err := c.do(ctx, http.MethodGet, "/modules", nil, &modules); err != nil {
		return nil, err
	}
	return modules, nil
}

// GetModule returns one module descriptor including its schema document.
func (c *Client) GetModule(ctx context.Context, name string) (*Module, error) {
	var module Module
	if err := c.do(ctx, http.MethodGet, "/modules/"+name, nil, &module); err != nil {
		return nil, err
	}
	return &module, nil
}

// ListModuleStates returns module assignments at a scope.
func (c *Client) ListModuleStates(ctx context.Context, ref ScopeRef) ([]ModuleState, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}
	var states []ModuleState
	if err := c.do(ctx, http.MethodGet, ref.basePath()+"/modules", nil, &states); err != nil {
		return nil, err
	}
	return states, nil
}

// SetModuleEnabled enables or disables a module at a scope.
func (c *Client) SetModuleEnabled(ctx context.Context, ref ScopeRef, module string, enabled bool) error {
	if err := ref.Validate(); err != nil {
		return err
	}
	body := map[string]bool{"enabled": enabled}
	return c.do(ctx, http.MethodPut, ref.basePath()+"/modules/"+module+"/state", body, nil)
}

// GetComposed returns the backend-composed configuration for a scope and
// module, with its override source flags.
func (c *Client) GetComposed(ctx context.Context, ref ScopeRef, module string) (*ComposedConfig, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}
	var composed ComposedConfig
	if err := c.do(ctx, http.MethodGet, ref.basePath()+"/modules/"+module+"/config", nil, &composed); err != nil {
		return nil, err
	}
	return &composed, nil
}

// SaveOverride submits a root configuration value verbatim as the scope's
// new override payload.
func (c *Client) SaveOverride(ctx context.Context, ref ScopeRef, module string, value any) error {
	if err := ref.Validate(); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, ref.basePath()+"/modules/"+module+"/config", value, nil)
}

// DeleteOverride removes the scope's override, reverting the composed view
// to the backend default.
func (c *Client) DeleteOverride(ctx context.Context, ref ScopeRef, module string) error {
	if err := ref.Validate(); err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, ref.basePath()+"/modules/"+module+"/config", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && len(data) > 0 {
		// Best effort; an unparseable body leaves just the status.
		_ = json.Unmarshal(data, apiErr)
	}
	return apiErr
}
