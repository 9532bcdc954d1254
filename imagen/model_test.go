// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package imagen

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewModel_Validation(t *testing.T) {
	if _, err := NewModel(t.Context(), "", "us-central1"); err == nil {
		t.Fatal("want error for empty name")
	}
	if _, err := NewModel(t.Context(), "projects/p/locations/l/publishers/google/models/m", ""); err == nil {
		t.Fatal("want error for empty location")
	}
}

func TestModel_Parameters(t *testing.T) {
	m := &Model{}
	seed := int32(7)

	tests := map[string]struct {
		cfg  *GenerateConfig
		want map[string]any
	}{
		"nil config": {
			cfg:  nil,
			want: map[string]any{"sampleCount": 1},
		},
		"defaults": {
			cfg:  &GenerateConfig{},
			want: map[string]any{"sampleCount": 1},
		},
		"full config": {
			cfg: &GenerateConfig{
				NumberOfImages: 4,
				AspectRatio:    "16:9",
				NegativePrompt: "no text",
				Seed:           &seed,
				OutputMIMEType: "image/jpeg",
			},
			want: map[string]any{
				"sampleCount":    int32(4),
				"aspectRatio":    "16:9",
				"negativePrompt": "no text",
				"seed":           int32(7),
				"outputOptions":  map[string]any{"mimeType": "image/jpeg"},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := m.parameters(tt.cfg)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("parameters mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRegionalEndpoint(t *testing.T) {
	tests := map[string]string{
		"us-central1":  "us-central1-aiplatform.googleapis.com:443",
		"europe-west4": "europe-west4-aiplatform.googleapis.com:443",
	}

	for location, want := range tests {
		t.Run(location, func(t *testing.T) {
			if got := regionalEndpoint(location); got != want {
				t.Fatalf("want %q, got %q", want, got)
			}
		})
	}
}

func TestModel_GenerateImagesBatch_Ordering(t *testing.T) {
	m := &Model{
		generate: func(_ context.Context, prompt string, _ *GenerateConfig) (*Response, error) {
			return &Response{Images: []*GeneratedImage{{Data: []byte(prompt)}}}, nil
		},
	}

	prompts := []string{"first", "second", "third"}
	got, err := m.GenerateImagesBatch(t.Context(), prompts, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(prompts) {
		t.Fatalf("want %d responses, got %d", len(prompts), len(got))
	}
	for i, prompt := range prompts {
		if string(got[i].Images[0].Data) != prompt {
			t.Fatalf("response %d: want %q, got %q", i, prompt, got[i].Images[0].Data)
		}
	}
}

func TestModel_GenerateImagesBatch_FirstError(t *testing.T) {
	errGenerate := errors.New("generate failed")
	m := &Model{
		generate: func(_ context.Context, prompt string, _ *GenerateConfig) (*Response, error) {
			if prompt == "bad" {
				return nil, errGenerate
			}
			return &Response{}, nil
		},
	}

	got, err := m.GenerateImagesBatch(t.Context(), []string{"ok", "bad", "ok"}, nil)
	if !errors.Is(err, errGenerate) {
		t.Fatalf("want wrapped generate error, got %v", err)
	}
	if got != nil {
		t.Fatalf("want nil responses on failure, got %v", got)
	}
}

func TestModel_GenerateImages(t *testing.T) {
	t.Skip("requires Google Cloud credentials")

	m, err := NewModel(t.Context(), "projects/proj1/locations/us-central1/publishers/google/models/imagen-3.0-generate-001", "us-central1")
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	defer m.Close()

	resp, err := m.GenerateImages(t.Context(), "a watercolor lighthouse", &GenerateConfig{NumberOfImages: 2})
	if err != nil {
		t.Fatalf("GenerateImages: %v", err)
	}
	if len(resp.Images) == 0 && resp.FilteredReason == "" {
		t.Fatal("want at least one image or a filter reason")
	}
}
