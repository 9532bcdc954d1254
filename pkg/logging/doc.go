// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package logging provides context-based structured logging utilities using Go's standard slog package.
//
// Loggers are stored in and retrieved from [context.Context] values so a
// single configured logger propagates through client construction and model
// calls without threading it through every signature.
//
// # Basic Usage
//
// Creating a logger context:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
//		Level: slog.LevelInfo,
//	}))
//
//	ctx := logging.NewContext(ctx, logger)
//
// Retrieving the logger from context:
//
//	logger := logging.FromContext(ctx)
//	logger.Info("images generated", "count", len(resp.Images))
//
// When no logger is found in the context, FromContext returns a default JSON
// logger that writes to stdout with INFO level logging, so logging always
// works even when no explicit logger is configured.
package logging
