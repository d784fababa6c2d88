// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgtree

import "cogentcore.org/svgdraw/math32"

// ViewBox is an SVG viewBox: origin (X,Y) and size (W,H).
type ViewBox struct {
	X, Y, W, H float64
}

// Leaf is one flattened, transform-resolved drawable SVG element: its
// path "d" string, resolved fill/stroke colors (normalized hex, or ""
// for no paint), stroke width, and the accumulated transform from the
// document root down to this element.
type Leaf struct {
	D           string
	Fill        string
	Stroke      string
	StrokeWidth float64
	Transform   math32.Matrix2
}

// Document is the result of flattening an SVG document: its viewBox,
// the ordered list of leaves, the set of distinct normalized colors
// used by any leaf's fill or stroke, and any warnings accumulated while
// flattening (degraded gradients, etc).
type Document struct {
	ViewBox  ViewBox
	Leaves   []Leaf
	Colors   []string
	Warnings []string
}
