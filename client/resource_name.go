// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"fmt"
	"strings"
	"unicode"
)

// ModelResourceName builds the canonical resource name addressing a publisher
// model on Vertex AI.
//
// The result has the form
//
//	projects/{projectID}/locations/{location}/publishers/google/models/{model}
//
// ModelResourceName is pure: identical inputs always produce identical output
// and it is safe for concurrent use. It fails with [ErrInvalidArgument] when
// model or location is empty, contains whitespace, or contains a path
// separator.
func ModelResourceName(projectID, location, model string) (string, error) {
	if err := validatePathSegment("location", location); err != nil {
		return "", err
	}
	if err := validatePathSegment("model", model); err != nil {
		return "", err
	}
	return fmt.Sprintf("projects/%s/locations/%s/publishers/google/models/%s", projectID, location, model), nil
}

// validatePathSegment rejects values that would corrupt the resource path.
func validatePathSegment(field, value string) error {
	switch {
	case value == "":
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidArgument, field)
	case strings.Contains(value, "/"):
		return fmt.Errorf("%w: %s %q must not contain a path separator", ErrInvalidArgument, field, value)
	case strings.ContainsFunc(value, unicode.IsSpace):
		return fmt.Errorf("%w: %s %q must not contain whitespace", ErrInvalidArgument, field, value)
	}
	return nil
}
