// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"fmt"

	"github.com/go-json-experiment/json"
)

// Config holds the resolved configuration for one application/location pair.
//
// A Config is immutable once constructed and is shared read-only by every
// caller holding a reference to the [Client] built from it.
type Config struct {
	// AppName is the host application name. Together with Location it forms
	// the registry cache key.
	AppName string `json:"app_name"`

	// AppID is the host application identifier.
	AppID string `json:"app_id"`

	// ProjectID is the Google Cloud project ID.
	ProjectID string `json:"project_id"`

	// APIKey is the API key used for the generative endpoints.
	APIKey string `json:"-"`

	// Location is the geographic location for Vertex AI services (e.g. "us-central1").
	Location string `json:"location"`
}

// Validate reports whether the required fields are present.
//
// Missing fields surface as [ErrInvalidConfiguration]-wrapped errors so a
// misconfigured host application can recover through normal error handling.
func (c *Config) Validate() error {
	switch {
	case c.ProjectID == "":
		return fmt.Errorf("%w: missing project ID", ErrInvalidConfiguration)
	case c.APIKey == "":
		return fmt.Errorf("%w: missing API key", ErrInvalidConfiguration)
	case c.AppID == "":
		return fmt.Errorf("%w: missing application ID", ErrInvalidConfiguration)
	}
	return nil
}

// cacheKey derives the registry identity for this configuration.
//
// Only AppName and Location participate. Two configurations sharing both but
// differing in derived fields are indistinguishable to the registry, which is
// an invariant callers must respect.
func (c *Config) cacheKey() string {
	return c.AppName + ":" + c.Location
}

// Redacted returns a JSON rendering of the configuration with the API key
// omitted, suitable for logs and diagnostics.
func (c *Config) Redacted() string {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Sprintf("config{app_name: %s, location: %s}", c.AppName, c.Location)
	}
	return string(data)
}
