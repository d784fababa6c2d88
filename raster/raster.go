// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster renders an SVG document to a base64-encoded PNG fill
// layer, for the assembler's rasterized-preview output.
package raster

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/anthonynsimon/bild/clone"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Rasterizer renders an SVG document string to a PNG of the given
// pixel dimensions, returning its base64 encoding (no data-URI prefix).
type Rasterizer interface {
	Render(svg string, w, h int) (string, error)
}

// OKSVG is the default [Rasterizer], backed by srwiley/oksvg for SVG
// parsing and srwiley/rasterx for scan conversion.
type OKSVG struct{}

// Render parses svg and renders it scaled to fit a w×h pixel canvas,
// returning the result as a base64-encoded PNG body.
func (OKSVG) Render(svg string, w, h int) (string, error) {
	if w <= 0 || h <= 0 {
		return "", nil
	}
	icon, err := oksvg.ReadIconStream(strings.NewReader(svg), oksvg.WarnErrorMode)
	if err != nil {
		return "", fmt.Errorf("raster: parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	rgba := clone.AsRGBA(img)
	var buf bytes.Buffer
	if err := png.Encode(&buf, rgba); err != nil {
		return "", fmt.Errorf("raster: encode png: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
