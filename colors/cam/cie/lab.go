// Copyright (c) 2021, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

// D65 white point normalization divisors for X and Z (Y is 1).
const (
	whiteX = 0.95047
	whiteZ = 1.08883
)

const (
	labEpsilon = 0.008856
	labKappa   = 903.3
)

// Lab is a CIE L*a*b* color.
type Lab struct {
	L, A, B float64
}

// SRGBToXYZ converts sRGB components in [0,1] to CIE XYZ under D65,
// using the standard sRGB-to-XYZ matrix.
func SRGBToXYZ(r, g, b float64) (x, y, z float64) {
	rl, gl, bl := SRGBToLinear(r, g, b)
	x = 0.4124564*rl + 0.3575761*gl + 0.1804375*bl
	y = 0.2126729*rl + 0.7151522*gl + 0.0721750*bl
	z = 0.0193339*rl + 0.1191920*gl + 0.9503041*bl
	return
}

// XYZToLab converts CIE XYZ to CIE L*a*b*, normalizing X and Z by the
// D65 white point.
func XYZToLab(x, y, z float64) Lab {
	fx := labF(x / whiteX)
	fy := labF(y)
	fz := labF(z / whiteZ)
	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

// SRGBToLab converts sRGB components in [0,1] directly to CIE L*a*b*.
func SRGBToLab(r, g, b float64) Lab {
	x, y, z := SRGBToXYZ(r, g, b)
	return XYZToLab(x, y, z)
}
