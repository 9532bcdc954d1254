// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"log/slog"
	"sync"
)

// ClientFactory constructs a [Client] from a configuration.
type ClientFactory func(cfg *Config, opts ...Option) (*Client, error)

// Registry is a process-wide keyed cache of [Client] instances.
//
// At most one client exists per (AppName, Location) pair. Entries live for
// the lifetime of the registry; there is no eviction.
type Registry struct {
	mu      sync.Mutex
	clients map[string]*Client
	create  ClientFactory
	logger  *slog.Logger
}

// RegistryOption is a functional option for configuring a [Registry].
type RegistryOption func(*Registry)

// WithFactory sets the factory used to construct new clients.
func WithFactory(create ClientFactory) RegistryOption {
	return func(r *Registry) {
		r.create = create
	}
}

// WithRegistryLogger sets a custom logger for the registry.
func WithRegistryLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry creates a new, empty client registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		clients: make(map[string]*Client),
		create:  NewClient,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GetOrCreate returns the client cached under cfg's (AppName, Location) key,
// constructing and storing a new one if none exists.
//
// The lookup-or-create sequence runs under a single critical section, so
// concurrent callers requesting the same key are serialized and exactly one
// client is constructed per key; every other caller observes the winner's
// instance. The factory is not invoked when an entry already exists.
//
// Construction failures (for example a configuration missing required fields)
// are returned to the caller and leave the registry unchanged.
func (r *Registry) GetOrCreate(ctx context.Context, cfg *Config, opts ...Option) (*Client, error) {
	key := cfg.cacheKey()

	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.clients[key]; ok {
		return c, nil
	}

	c, err := r.create(cfg, opts...)
	if err != nil {
		return nil, err
	}
	r.clients[key] = c

	r.logger.InfoContext(ctx, "client registered",
		slog.String("key", key),
		slog.String("config", cfg.Redacted()),
	)
	return c, nil
}

// Len returns the number of cached clients.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the shared registry instance.
//
// Tests that need isolation should construct their own registry with
// [NewRegistry] instead.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// GetOrCreate is a convenience wrapper around [DefaultRegistry].
func GetOrCreate(ctx context.Context, cfg *Config, opts ...Option) (*Client, error) {
	return DefaultRegistry().GetOrCreate(ctx, cfg, opts...)
}
