// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package drawing holds the fixed-schema vector drawing document that
// svgdraw.Build emits: version/scale/grid constants, a palette, and a
// single layer with a single frame of path segments and a raster fill.
package drawing

import "cogentcore.org/svgdraw/pathdata"

// Fixed schema constants, per spec section 6.
const (
	Version           = 3
	Scale             = 10
	GridSize          = 0.71428571428571
	FillPixelsPerUnit = 25.6
)

// Color is one palette entry: r,g,b,a in [0,1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Bounds are the fill image's drawing-unit extent.
type Bounds struct {
	MinX float64 `json:"minX"`
	MaxX float64 `json:"maxX"`
	MinY float64 `json:"minY"`
	MaxY float64 `json:"maxY"`
}

// Frame is the single animation frame a layer carries.
type Frame struct {
	IsLinked        bool               `json:"isLinked"`
	PathDataList    []pathdata.Segment `json:"pathDataList"`
	FillImageBounds Bounds             `json:"fillImageBounds"`
	FillPng         string             `json:"fillPng"`
}

// Layer is the single layer a document carries.
type Layer struct {
	Title     string  `json:"title"`
	ID        string  `json:"id"`
	IsVisible bool    `json:"isVisible"`
	IsBitmap  bool    `json:"isBitmap"`
	Frames    []Frame `json:"frames"`
}

// Document is the fixed-schema target drawing document.
type Document struct {
	Version           int     `json:"version"`
	Scale             float64 `json:"scale"`
	GridSize          float64 `json:"gridSize"`
	FillPixelsPerUnit float64 `json:"fillPixelsPerUnit"`
	Colors            []Color `json:"colors"`
	Layers            []Layer `json:"layers"`
}

// NewDocument assembles a Document from its computed parts, filling in
// the fixed schema constants and the single-layer/single-frame shape
// the invariants require.
func NewDocument(palette []Color, layerID string, segments []pathdata.Segment, bounds Bounds, fillPng string) Document {
	return Document{
		Version:           Version,
		Scale:             Scale,
		GridSize:          GridSize,
		FillPixelsPerUnit: FillPixelsPerUnit,
		Colors:            palette,
		Layers: []Layer{
			{
				Title:     "Imported",
				ID:        layerID,
				IsVisible: true,
				IsBitmap:  false,
				Frames: []Frame{
					{
						IsLinked:        false,
						PathDataList:    segments,
						FillImageBounds: bounds,
						FillPng:         fillPng,
					},
				},
			},
		},
	}
}
