// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package generative provides a thin generative-text client over the Google
// GenAI SDK, addressed with canonical publisher model resource names.
package generative
