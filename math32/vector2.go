// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 provides the 2D affine-transform type used to resolve
// accumulated SVG transforms and remap coordinates into drawing-unit
// space.
package math32

import "math"

// Vector2 is a 2D point or vector of float64 components.
type Vector2 struct {
	X, Y float64
}

// Vec2 returns a new Vector2 with the given components.
func Vec2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns a + b.
func (a Vector2) Add(b Vector2) Vector2 {
	return Vector2{a.X + b.X, a.Y + b.Y}
}

// Sub returns a - b.
func (a Vector2) Sub(b Vector2) Vector2 {
	return Vector2{a.X - b.X, a.Y - b.Y}
}

// MulScalar returns a scaled by s.
func (a Vector2) MulScalar(s float64) Vector2 {
	return Vector2{a.X * s, a.Y * s}
}

// Length returns the Euclidean length of a.
func (a Vector2) Length() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y)
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
