// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package client provides per-configuration client facades for Google Vertex
// AI generative models, cached in a process-wide registry.
//
// # Registry
//
// Clients are cached by (AppName, Location). Repeated lookups for the same
// pair return the identical instance, and concurrent lookups construct
// exactly one:
//
//	reg := client.NewRegistry()
//	c, err := reg.GetOrCreate(ctx, &client.Config{
//		AppName:   "myapp",
//		AppID:     "1:234:android:abc",
//		ProjectID: "my-project",
//		APIKey:    os.Getenv("GOOGLE_API_KEY"),
//		Location:  "us-central1",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Only AppName and Location participate in the cache key. Configurations that
// share both but diverge elsewhere collide silently; callers must keep
// derived fields consistent per pair.
//
// # Sub-clients
//
// The facade hands out model-specific sub-clients that adopt its resource
// naming:
//
//	gm, err := c.GenerativeModel(ctx, "gemini-1.5-flash")
//	im, err := c.ImagenModel(ctx, "imagen-3.0-generate-001")
//
// Both address the backend with canonical publisher model names of the form
// projects/{project}/locations/{location}/publishers/google/models/{model}.
package client
