// Copyright (c) 2021, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides sRGB<->CIE Lab conversion and the CIE94 color
// difference metric used to snap arbitrary colors onto a fixed palette.
package cie

import "math"

// SRGBToLinearComp converts an sRGB color component in [0,1] to linear
// space (removes gamma correction).
func SRGBToLinearComp(srgb float64) float64 {
	if srgb <= 0.04045 {
		return srgb / 12.92
	}
	return math.Pow((srgb+0.055)/1.055, 2.4)
}

// SRGBToLinear converts a set of sRGB components in [0,1] to linear values.
func SRGBToLinear(r, g, b float64) (rl, gl, bl float64) {
	return SRGBToLinearComp(r), SRGBToLinearComp(g), SRGBToLinearComp(b)
}
