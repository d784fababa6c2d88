// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pathdata converts a flattened SVG leaf element's path data
// into the target drawing format's segment list: absolute command
// interpretation, cubic/arc reduction to quadratics, and the viewBox to
// drawing-unit coordinate remap.
package pathdata

// Point is a 2D coordinate in the target document's JSON schema.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Style tags for [Segment.S]. Only StyleLine is currently emitted; the
// arc styles are reserved by the schema but never produced, since every
// curve is reduced to a quadratic during conversion.
const (
	StyleLine          = 1
	StyleArcClockwise  = 2
	StyleArcCounterCCW = 3
)

// Segment is one target path primitive: a line or single-bend quadratic
// between two drawing-unit endpoints, optionally colored.
type Segment struct {
	P             [4]float64  `json:"p"`
	S             int         `json:"s"`
	F             bool        `json:"f"`
	BP            *Point      `json:"bp,omitempty"`
	C             *[4]float64 `json:"c,omitempty"`
	IsTransparent *bool       `json:"isTransparent,omitempty"`
}
