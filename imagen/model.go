// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package imagen

import (
	"context"
	"fmt"
	"log/slog"

	aiplatform "cloud.google.com/go/aiplatform/apiv1beta1"
	"cloud.google.com/go/aiplatform/apiv1beta1/aiplatformpb"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/option"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/go-a2a/vertexkit/pkg/logging"
)

// defaultSampleCount is the number of images generated when the request does
// not say otherwise.
const defaultSampleCount = 1

// Model is an image-generation model client.
//
// A Model owns a prediction client bound to the regional endpoint of its
// location and is safe for concurrent use.
type Model struct {
	client     *aiplatform.PredictionClient
	name       string
	location   string
	logger     *slog.Logger
	clientOpts []option.ClientOption

	// generate is the per-prompt generation path used by
	// [Model.GenerateImagesBatch]. Defaults to [Model.GenerateImages].
	generate func(ctx context.Context, prompt string, cfg *GenerateConfig) (*Response, error)
}

// Option is a functional option for configuring a [Model].
type Option func(*Model)

// WithLogger sets a custom logger for the model.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// WithClientOptions appends options for the underlying prediction client.
func WithClientOptions(opts ...option.ClientOption) Option {
	return func(m *Model) {
		m.clientOpts = append(m.clientOpts, opts...)
	}
}

// NewModel creates a new image-generation model client.
//
// name must be the full publisher model resource name
// (projects/{project}/locations/{location}/publishers/google/models/{model});
// location selects the regional prediction endpoint.
func NewModel(ctx context.Context, name, location string, opts ...Option) (*Model, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if location == "" {
		return nil, fmt.Errorf("location is required")
	}

	m := &Model{
		name:     name,
		location: location,
		logger:   logging.FromContext(ctx),
	}
	for _, opt := range opts {
		opt(m)
	}

	clientOpts := append([]option.ClientOption{option.WithEndpoint(regionalEndpoint(location))}, m.clientOpts...)
	client, err := aiplatform.NewPredictionClient(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create prediction client: %w", err)
	}
	m.client = client
	m.generate = m.GenerateImages

	return m, nil
}

// regionalEndpoint derives the prediction endpoint for a location.
func regionalEndpoint(location string) string {
	return fmt.Sprintf("%s-aiplatform.googleapis.com:443", location)
}

// Name returns the full resource name this model addresses.
func (m *Model) Name() string {
	return m.name
}

// Close closes the underlying prediction client.
func (m *Model) Close() error {
	return m.client.Close()
}

// GenerateImages generates images for the given prompt.
//
// Successfully generated images are returned in response order together with
// the combined filter explanation for any withheld ones; a response in which
// every image was filtered is still a valid (empty) result. The decode fails
// only when the backend returns an entry that is not structured data at all.
func (m *Model) GenerateImages(ctx context.Context, prompt string, cfg *GenerateConfig) (*Response, error) {
	if prompt == "" {
		return nil, fmt.Errorf("prompt must not be empty")
	}

	instance, err := structpb.NewStruct(map[string]any{
		"prompt": prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("build instance: %w", err)
	}
	parameters, err := structpb.NewStruct(m.parameters(cfg))
	if err != nil {
		return nil, fmt.Errorf("build parameters: %w", err)
	}

	requestID := uuid.NewString()
	m.logger.DebugContext(ctx, "generating images",
		slog.String("request_id", requestID),
		slog.String("model", m.name),
	)

	resp, err := m.client.Predict(ctx, &aiplatformpb.PredictRequest{
		Endpoint:   m.name,
		Instances:  []*structpb.Value{structpb.NewStructValue(instance)},
		Parameters: structpb.NewStructValue(parameters),
	})
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}

	out, err := decodeResponse(resp.GetPredictions())
	if err != nil {
		return nil, err
	}

	if len(out.Images) == 0 && out.FilteredReason != "" {
		m.logger.WarnContext(ctx, "all requested images were filtered",
			slog.String("request_id", requestID),
			slog.String("reason", out.FilteredReason),
		)
	}
	m.logger.InfoContext(ctx, "images generated",
		slog.String("request_id", requestID),
		slog.Int("images", len(out.Images)),
	)
	return out, nil
}

// GenerateImagesBatch generates images for several prompts concurrently.
//
// Results are returned in prompt order. The first failing prompt cancels the
// remaining ones and its error is returned.
func (m *Model) GenerateImagesBatch(ctx context.Context, prompts []string, cfg *GenerateConfig) ([]*Response, error) {
	generate := m.generate
	if generate == nil {
		generate = m.GenerateImages
	}

	g, ctx := errgroup.WithContext(ctx)
	out := make([]*Response, len(prompts))

	for i, prompt := range prompts {
		g.Go(func() error {
			resp, err := generate(ctx, prompt, cfg)
			if err != nil {
				return fmt.Errorf("prompt %d: %w", i, err)
			}
			out[i] = resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// parameters maps the generation config onto the predict parameters object.
func (m *Model) parameters(cfg *GenerateConfig) map[string]any {
	params := map[string]any{
		"sampleCount": defaultSampleCount,
	}
	if cfg == nil {
		return params
	}

	if cfg.NumberOfImages > 0 {
		params["sampleCount"] = cfg.NumberOfImages
	}
	if cfg.AspectRatio != "" {
		params["aspectRatio"] = cfg.AspectRatio
	}
	if cfg.NegativePrompt != "" {
		params["negativePrompt"] = cfg.NegativePrompt
	}
	if cfg.Seed != nil {
		params["seed"] = *cfg.Seed
	}
	if cfg.OutputMIMEType != "" {
		params["outputOptions"] = map[string]any{
			"mimeType": cfg.OutputMIMEType,
		}
	}
	return params
}
