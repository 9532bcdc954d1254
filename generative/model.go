// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package generative

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"os"
	"strings"

	"google.golang.org/genai"

	"github.com/go-a2a/vertexkit/pkg/logging"
)

// EnvGoogleAPIKey is the environment variable name for the Google AI API key.
const EnvGoogleAPIKey = "GOOGLE_API_KEY"

// Model is a generative-text model client.
//
// A Model is immutable after construction and safe for concurrent use.
type Model struct {
	client *genai.Client
	name   string
	logger *slog.Logger
}

// Option is a functional option for configuring a [Model].
type Option func(*Model)

// WithLogger sets a custom logger for the model.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// NewModel creates a new generative-text model client.
//
// name must be the full publisher model resource name computed by the owning
// client facade. When apiKey is empty the [EnvGoogleAPIKey] environment
// variable is consulted.
func NewModel(ctx context.Context, apiKey, name string, opts ...Option) (*Model, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if apiKey == "" {
		apiKey = os.Getenv(EnvGoogleAPIKey)
		if apiKey == "" {
			return nil, fmt.Errorf("either apiKey arg or %q environment variable must be set", EnvGoogleAPIKey)
		}
	}

	m := &Model{
		name:   name,
		logger: logging.FromContext(ctx),
	}
	for _, opt := range opts {
		opt(m)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	m.client = client

	return m, nil
}

// Name returns the full resource name this model addresses.
func (m *Model) Name() string {
	return m.name
}

// GenerateContent generates content from the model.
func (m *Model) GenerateContent(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	contents = appendUserContent(contents)

	resp, err := m.client.Models.GenerateContent(ctx, m.name, contents, config)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}
	m.logger.DebugContext(ctx, "generate content response",
		slog.String("model", m.name),
		slog.String("text", resp.Text()),
	)
	return resp, nil
}

// GenerateContentStream streams generated content from the model.
func (m *Model) GenerateContentStream(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) iter.Seq2[*genai.GenerateContentResponse, error] {
	contents = appendUserContent(contents)
	return m.client.Models.GenerateContentStream(ctx, m.name, contents, config)
}

// appendUserContent checks if the last message is from the user and if not, appends a user message.
func appendUserContent(contents []*genai.Content) []*genai.Content {
	switch {
	case len(contents) == 0:
		return append(contents, &genai.Content{
			Role: genai.RoleUser,
			Parts: []*genai.Part{
				genai.NewPartFromText(`Handle the requests as specified in the System Instruction.`),
			},
		})

	case strings.ToLower(contents[len(contents)-1].Role) != genai.RoleUser:
		return append(contents, &genai.Content{
			Role: genai.RoleUser,
			Parts: []*genai.Part{
				genai.NewPartFromText(`Continue processing previous requests as instructed. Exit or provide a summary if no more outputs are needed.`),
			},
		})

	default:
		return contents
	}
}
