// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package imagen

import (
	"github.com/bytedance/sonic"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/go-a2a/vertexkit/internal/predictions"
)

// ErrMalformedEntry indicates a prediction entry that is not structured data
// at all. See [predictions.Decode] for the classification rules.
var ErrMalformedEntry = predictions.ErrMalformedEntry

// decodeResponse assembles a [Response] from the raw prediction sequence.
func decodeResponse(preds []*structpb.Value) (*Response, error) {
	decoded, err := predictions.Decode(preds, imageFromPrediction)
	if err != nil {
		return nil, err
	}
	return &Response{
		Images:         decoded.Artifacts,
		FilteredReason: decoded.FilteredReason,
	}, nil
}

// imageFromPrediction interprets one prediction entry as a [GeneratedImage].
//
// An entry qualifies only when it carries image payload, either inline bytes
// or a Cloud Storage URI. Anything else is left for the later interpretation
// stages.
func imageFromPrediction(fields map[string]any) (*GeneratedImage, bool) {
	raw, err := sonic.ConfigFastest.Marshal(fields)
	if err != nil {
		return nil, false
	}

	var img GeneratedImage
	if err := sonic.ConfigFastest.Unmarshal(raw, &img); err != nil {
		return nil, false
	}
	if len(img.Data) == 0 && img.GCSURI == "" {
		return nil, false
	}
	return &img, true
}
