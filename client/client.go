// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"log/slog"

	"google.golang.org/api/option"

	"github.com/go-a2a/vertexkit/generative"
	"github.com/go-a2a/vertexkit/imagen"
)

// Client is the per-configuration facade through which callers obtain
// model-specific sub-clients.
//
// A Client owns its resolved [Config], is never mutated after construction,
// and is therefore safe to share across goroutines without synchronization.
type Client struct {
	config *Config
	logger *slog.Logger
}

// Option is a functional option for configuring a [Client].
type Option func(*Client)

// WithLogger sets a custom logger for the client and the sub-clients it creates.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new [Client] from the given configuration.
//
// The configuration is validated first; missing required fields surface as
// [ErrInvalidConfiguration]-wrapped errors.
func NewClient(cfg *Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		config: cfg,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Config returns the resolved configuration this client was built from.
func (c *Client) Config() *Config {
	return c.config
}

// GenerativeModel returns a generative-text model addressed through this
// client's project and location.
func (c *Client) GenerativeModel(ctx context.Context, model string) (*generative.Model, error) {
	name, err := ModelResourceName(c.config.ProjectID, c.config.Location, model)
	if err != nil {
		return nil, err
	}
	return generative.NewModel(ctx, c.config.APIKey, name, generative.WithLogger(c.logger))
}

// ImagenModel returns an image-generation model addressed through this
// client's project and location.
//
// The returned model owns a prediction client for the location's regional
// endpoint and should be closed when no longer needed.
func (c *Client) ImagenModel(ctx context.Context, model string, opts ...option.ClientOption) (*imagen.Model, error) {
	name, err := ModelResourceName(c.config.ProjectID, c.config.Location, model)
	if err != nil {
		return nil, err
	}
	return imagen.NewModel(ctx, name, c.config.Location,
		imagen.WithLogger(c.logger),
		imagen.WithClientOptions(opts...),
	)
}
