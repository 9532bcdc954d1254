// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package predictions

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/protobuf/types/known/structpb"
)

// filteredReasonKey is the prediction field carrying the responsible-AI
// filter explanation for a withheld result.
const filteredReasonKey = "raiFilteredReason"

// ErrMalformedEntry indicates a prediction entry that is not structured data
// at all. The whole decode fails rather than silently dropping it.
var ErrMalformedEntry = errors.New("malformed prediction entry")

// Decoded is the aggregate result of decoding one prediction sequence.
//
// Artifacts preserves the original response order. FilteredReason is
// non-empty exactly when at least one filtered placeholder was observed; the
// individual reasons are joined with newlines.
type Decoded[T any] struct {
	Artifacts      []T
	FilteredReason string
}

// Decode classifies each prediction entry of a Vertex AI predict response.
//
// Entries are attempted in a fixed priority order:
//
//  1. an artifact of the expected type, recognized by interpret;
//  2. a filtered placeholder carrying a raiFilteredReason string;
//  3. any other structured entry, tolerated silently for forward
//     compatibility;
//  4. anything that is not a structured entry fails the whole decode with
//     [ErrMalformedEntry].
//
// Zero decoded artifacts is not an error: the caller receives an empty
// artifact sequence together with the combined filter explanation and decides
// its own policy.
func Decode[T any](entries []*structpb.Value, interpret func(fields map[string]any) (T, bool)) (*Decoded[T], error) {
	d := &Decoded[T]{}
	var reasons []string

	for i, entry := range entries {
		if entry == nil {
			return nil, fmt.Errorf("prediction %d: %w: missing value", i, ErrMalformedEntry)
		}
		st := entry.GetStructValue()
		if st == nil {
			return nil, fmt.Errorf("prediction %d: %w: not a structured value", i, ErrMalformedEntry)
		}

		fields := st.AsMap()
		if artifact, ok := interpret(fields); ok {
			d.Artifacts = append(d.Artifacts, artifact)
			continue
		}
		if reason, ok := fields[filteredReasonKey].(string); ok {
			reasons = append(reasons, reason)
			continue
		}
		// Unknown but well-formed entries are reserved for fields this
		// decoder does not yet understand.
	}

	if len(reasons) > 0 {
		d.FilteredReason = strings.Join(reasons, "\n")
	}
	return d, nil
}
