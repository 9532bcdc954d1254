// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package vertexkit is a lightweight Go client kit for Google Vertex AI generative models.
package vertexkit

// Version is the version of the Vertex AI client kit.
var Version = "v0.0.0"
