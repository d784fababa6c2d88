// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svgdraw converts an SVG document into a fixed-schema vector
// drawing document: it parses and flattens the SVG, matches its colors
// against a palette, converts every leaf's path data into target
// segments, and renders a rasterized fill-layer preview.
package svgdraw

import (
	"fmt"
	"math"

	"cogentcore.org/svgdraw/base/randx"
	"cogentcore.org/svgdraw/drawing"
	"cogentcore.org/svgdraw/palette"
	"cogentcore.org/svgdraw/pathdata"
	"cogentcore.org/svgdraw/raster"
	"cogentcore.org/svgdraw/svgtree"
)

// DefaultTolerance is the cubic subdivision tolerance used when the
// caller does not specify one.
const DefaultTolerance = 0.05

// boundsPad is the margin added around computed segment bounds.
const boundsPad = 0.1

// Result is the outcome of [Build]: the assembled document, the color
// mapping used to produce it, and any accumulated warnings.
type Result struct {
	Document      drawing.Document
	ColorMappings map[string]palette.Mapping
	Warnings      []string
}

// DefaultRasterizer is the backend [Build] renders the fill layer with;
// it defaults to [raster.OKSVG]. [BuildWithRasterizer] takes an explicit
// backend instead.
var DefaultRasterizer raster.Rasterizer = raster.OKSVG{}

// Build converts svgString into a target drawing document. paletteHex
// and paletteColor are parallel arrays (default AAP-64 if either is
// empty); tolerance is the cubic subdivision tolerance (default 0.05 if
// non-positive; arcs are always split into sub-arcs of at most 90
// degrees). The only fatal error is malformed input (input that does not
// decode as XML, or has no root <svg> element). Gradient fills, high-ΔE
// color matches, varying stroke widths and rasterizer failures surface
// as warnings on the returned Result; degenerate shapes, unknown tags
// and unparseable path data are dropped without a warning.
func Build(svgString string, paletteHex []string, paletteColor []palette.Color, tolerance float64) (Result, error) {
	return BuildWithRasterizer(svgString, paletteHex, paletteColor, tolerance, DefaultRasterizer)
}

// BuildWithRasterizer is [Build] with an explicit rasterizer backend.
func BuildWithRasterizer(svgString string, paletteHex []string, paletteColor []palette.Color, tolerance float64, rz raster.Rasterizer) (Result, error) {
	if len(paletteHex) == 0 || len(paletteColor) == 0 {
		paletteHex = palette.AAP64Hex
		paletteColor = palette.AAP64
	}
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	doc, err := svgtree.Parse(svgString)
	if err != nil {
		return Result{}, fmt.Errorf("svgdraw: %w", err)
	}

	mapping, warnings := palette.Match(doc.Colors, paletteHex, paletteColor)
	warnings = append(warnings, doc.Warnings...)

	var segments []pathdata.Segment
	strokeWidths := map[float64]bool{}
	for _, leaf := range doc.Leaves {
		segments = append(segments, pathdata.Convert(leaf, mapping, doc.ViewBox, drawing.Scale, tolerance)...)
		strokeWidths[leaf.StrokeWidth] = true
	}
	if len(strokeWidths) > 1 {
		warnings = append(warnings, "leaves specify varying stroke widths; all are rendered at their own width")
	}

	bounds := computeBounds(segments)

	recolorMap := make(map[string]string, len(mapping))
	for hex, m := range mapping {
		recolorMap[hex] = m.Hex
	}
	recolored := raster.Recolor(svgString, recolorMap)

	w := int(math.Ceil((bounds.MaxX - bounds.MinX) * drawing.FillPixelsPerUnit))
	h := int(math.Ceil((bounds.MaxY - bounds.MinY) * drawing.FillPixelsPerUnit))
	fillPng := ""
	if w > 0 && h > 0 {
		png, err := rz.Render(recolored, w, h)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("rasterizer failed: %v", err))
		} else {
			fillPng = png
		}
	}

	palColors := make([]drawing.Color, len(paletteColor))
	for i, c := range paletteColor {
		palColors[i] = drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
	}

	document := drawing.NewDocument(palColors, randx.NewID(), segments, bounds, fillPng)

	return Result{Document: document, ColorMappings: mapping, Warnings: warnings}, nil
}

// computeBounds scans every segment's endpoints (and bend point, if
// any) for the drawing-unit extent, padding by boundsPad on each side.
// With no segments it falls back to (-10,10,-10,10).
func computeBounds(segments []pathdata.Segment) drawing.Bounds {
	if len(segments) == 0 {
		return drawing.Bounds{MinX: -10, MaxX: 10, MinY: -10, MaxY: 10}
	}
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	consider := func(x, y float64) {
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	for _, s := range segments {
		consider(s.P[0], s.P[1])
		consider(s.P[2], s.P[3])
		if s.BP != nil {
			consider(s.BP.X, s.BP.Y)
		}
	}
	return drawing.Bounds{
		MinX: minX - boundsPad, MaxX: maxX + boundsPad,
		MinY: minY - boundsPad, MaxY: maxY + boundsPad,
	}
}
