// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package client_test

import (
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/go-a2a/vertexkit/client"
)

func quietRegistry(opts ...client.RegistryOption) *client.Registry {
	opts = append(opts, client.WithRegistryLogger(slog.New(slog.DiscardHandler)))
	return client.NewRegistry(opts...)
}

func TestRegistry_GetOrCreate_Identity(t *testing.T) {
	reg := quietRegistry()

	first, err := reg.GetOrCreate(t.Context(), validConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Same (AppName, Location) pair, different derived fields: the registry
	// key ignores them, so the cached instance wins.
	other := validConfig()
	other.ProjectID = "proj2"
	second, err := reg.GetOrCreate(t.Context(), other)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Fatal("want identical client instance for identical (AppName, Location)")
	}
	if got := reg.Len(); got != 1 {
		t.Fatalf("want 1 cached client, got %d", got)
	}
}

func TestRegistry_GetOrCreate_DistinctKeys(t *testing.T) {
	reg := quietRegistry()

	first, err := reg.GetOrCreate(t.Context(), validConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	other := validConfig()
	other.Location = "europe-west4"
	second, err := reg.GetOrCreate(t.Context(), other)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == second {
		t.Fatal("want distinct clients for distinct locations")
	}
	if got := reg.Len(); got != 2 {
		t.Fatalf("want 2 cached clients, got %d", got)
	}
}

func TestRegistry_GetOrCreate_Concurrent(t *testing.T) {
	var constructed atomic.Int32
	reg := quietRegistry(client.WithFactory(func(cfg *client.Config, opts ...client.Option) (*client.Client, error) {
		constructed.Add(1)
		return client.NewClient(cfg, opts...)
	}))

	const n = 32
	clients := make([]*client.Client, n)

	g, ctx := errgroup.WithContext(t.Context())
	for i := range n {
		g.Go(func() error {
			c, err := reg.GetOrCreate(ctx, validConfig())
			if err != nil {
				return err
			}
			clients[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := constructed.Load(); got != 1 {
		t.Fatalf("want exactly 1 construction, got %d", got)
	}
	for i := 1; i < n; i++ {
		if clients[i] != clients[0] {
			t.Fatalf("caller %d observed a different instance", i)
		}
	}
}

func TestRegistry_GetOrCreate_InvalidConfig(t *testing.T) {
	reg := quietRegistry()

	cfg := validConfig()
	cfg.APIKey = ""
	if _, err := reg.GetOrCreate(t.Context(), cfg); !errors.Is(err, client.ErrInvalidConfiguration) {
		t.Fatalf("want ErrInvalidConfiguration, got %v", err)
	}
	if got := reg.Len(); got != 0 {
		t.Fatalf("failed construction must not be cached, got %d entries", got)
	}

	// The same key succeeds once the configuration is repaired.
	if _, err := reg.GetOrCreate(t.Context(), validConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRegistry_FactoryNotInvokedOnHit(t *testing.T) {
	var constructed atomic.Int32
	reg := quietRegistry(client.WithFactory(func(cfg *client.Config, opts ...client.Option) (*client.Client, error) {
		constructed.Add(1)
		return client.NewClient(cfg, opts...)
	}))

	for range 5 {
		if _, err := reg.GetOrCreate(t.Context(), validConfig()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if got := constructed.Load(); got != 1 {
		t.Fatalf("want factory invoked once, got %d", got)
	}
}
