// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package imagen

import "errors"

// ErrDecodeIncomplete indicates that every requested image was withheld by
// the content filter. [Model.GenerateImages] does not return it itself; it is
// exported for callers whose policy treats an all-filtered response as an
// error:
//
//	if len(resp.Images) == 0 && resp.FilteredReason != "" {
//		return imagen.ErrDecodeIncomplete
//	}
var ErrDecodeIncomplete = errors.New("all requested images were filtered")

// GeneratedImage is one successfully generated image.
//
// The backend returns image bytes base64-encoded under bytesBase64Encoded, or
// a Cloud Storage URI when output was redirected to a bucket.
type GeneratedImage struct {
	// Data holds the raw image bytes.
	Data []byte `json:"bytesBase64Encoded,omitempty"`

	// MIMEType is the image MIME type (e.g. "image/png").
	MIMEType string `json:"mimeType,omitempty"`

	// GCSURI is the Cloud Storage location of the image, when the request
	// asked for bucket output instead of inline bytes.
	GCSURI string `json:"gcsUri,omitempty"`
}

// Response is the aggregate result of one generate call.
//
// Images preserves the order of the backend response. FilteredReason is
// non-empty exactly when at least one requested image was withheld; it joins
// the individual filter reasons with newlines. An empty Images with a
// populated FilteredReason is a structurally valid response, not an error.
type Response struct {
	Images         []*GeneratedImage
	FilteredReason string
}

// GenerateConfig holds the optional generation parameters for a request.
type GenerateConfig struct {
	// NumberOfImages is the number of images to generate. Defaults to 1.
	NumberOfImages int32

	// AspectRatio is the aspect ratio of the generated images (e.g. "1:1", "16:9").
	AspectRatio string

	// NegativePrompt describes what to omit from the generated images.
	NegativePrompt string

	// Seed fixes the random seed for reproducible generation.
	Seed *int32

	// OutputMIMEType is the requested image format (e.g. "image/png").
	OutputMIMEType string
}
