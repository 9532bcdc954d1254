// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package imagen provides an image-generation client for Vertex AI Imagen
// models.
//
// A generate call returns every successfully generated image together with an
// aggregated explanation for the ones the content filter withheld, so partial
// success is never discarded:
//
//	resp, err := model.GenerateImages(ctx, "a watercolor lighthouse", &imagen.GenerateConfig{
//		NumberOfImages: 4,
//		AspectRatio:    "1:1",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, img := range resp.Images {
//		// img.Data, img.MIMEType
//	}
//	if resp.FilteredReason != "" {
//		log.Printf("some images withheld: %s", resp.FilteredReason)
//	}
package imagen
