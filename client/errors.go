// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package client

import "errors"

// Error types for client construction and resource naming.
var (
	// ErrInvalidConfiguration indicates that a required configuration field is missing.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidArgument indicates that a model name or location is empty or malformed.
	ErrInvalidArgument = errors.New("invalid argument")
)
