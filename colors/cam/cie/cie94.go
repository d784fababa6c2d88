// Copyright (c) 2021, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

// CIE94 graphic-arts weighting constants.
const (
	weightKL = 1.0
	weightK1 = 0.045
	weightK2 = 0.015
)

// DeltaE94 computes the CIE94 perceptual color difference between two
// Lab colors, using the graphic-arts application weighting (kL=1,
// K1=0.045, K2=0.015). It returns 0 for identical inputs and is
// symmetric within floating-point tolerance.
func DeltaE94(a, b Lab) float64 {
	c1 := math.Hypot(a.A, a.B)
	c2 := math.Hypot(b.A, b.B)
	deltaL := a.L - b.L
	deltaC := c1 - c2
	deltaA := a.A - b.A
	deltaB := a.B - b.B
	deltaH2 := deltaA*deltaA + deltaB*deltaB - deltaC*deltaC
	if deltaH2 < 0 {
		deltaH2 = 0
	}
	sl := 1.0
	sc := 1 + weightK1*c1
	sh := 1 + weightK2*c1
	tl := deltaL / (weightKL * sl)
	tc := deltaC / sc
	th2 := deltaH2 / (sh * sh)
	sum := tl*tl + tc*tc + th2
	if sum < 0 {
		sum = 0
	}
	return math.Sqrt(sum)
}
