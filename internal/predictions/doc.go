// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package predictions decodes the heterogeneous prediction sequences returned
// by Vertex AI predict calls, separating successful artifacts from filtered
// placeholders without discarding partial success.
package predictions
