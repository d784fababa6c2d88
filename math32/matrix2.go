// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Matrix2 is a 2D affine transformation matrix, stored in the same
// row-major (a,b,c,d,e,f) order as the SVG/CSS "matrix(a,b,c,d,e,f)"
// function: XX=a, YX=b, XY=c, YY=d, X0=e, Y0=f.
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float64
}

// Identity2 returns the identity transform.
func Identity2() Matrix2 {
	return Matrix2{XX: 1, YY: 1}
}

// Translate2D returns a translation matrix.
func Translate2D(tx, ty float64) Matrix2 {
	return Matrix2{XX: 1, YY: 1, X0: tx, Y0: ty}
}

// Scale2D returns a scaling matrix.
func Scale2D(sx, sy float64) Matrix2 {
	return Matrix2{XX: sx, YY: sy}
}

// Rotate2D returns a rotation matrix for the given angle in radians.
// Positive angles turn +x toward +y, which is clockwise on screen in a
// y-down coordinate system (matching SVG).
func Rotate2D(rad float64) Matrix2 {
	s, c := math.Sin(rad), math.Cos(rad)
	return Matrix2{XX: c, YX: s, XY: -s, YY: c}
}

// SkewX2D returns a matrix that skews along the x axis by the given
// angle in radians.
func SkewX2D(rad float64) Matrix2 {
	return Matrix2{XX: 1, YY: 1, XY: math.Tan(rad)}
}

// SkewY2D returns a matrix that skews along the y axis by the given
// angle in radians.
func SkewY2D(rad float64) Matrix2 {
	return Matrix2{XX: 1, YY: 1, YX: math.Tan(rad)}
}

// Mul returns the matrix product a*b. Applying the result to a point
// is equivalent to applying b's transform first, then a's: as used by
// [Matrix2.MulPoint], (a.Mul(b)).MulPoint(v) == a.MulPoint(b.MulPoint(v)).
func (a Matrix2) Mul(b Matrix2) Matrix2 {
	return Matrix2{
		XX: a.XX*b.XX + a.XY*b.YX,
		YX: a.YX*b.XX + a.YY*b.YX,
		XY: a.XX*b.XY + a.XY*b.YY,
		YY: a.YX*b.XY + a.YY*b.YY,
		X0: a.XX*b.X0 + a.XY*b.Y0 + a.X0,
		Y0: a.YX*b.X0 + a.YY*b.Y0 + a.Y0,
	}
}

// MulPoint applies the matrix to the point v, returning
// (XX*x + XY*y + X0, YX*x + YY*y + Y0).
func (a Matrix2) MulPoint(v Vector2) Vector2 {
	return Vector2{
		X: a.XX*v.X + a.XY*v.Y + a.X0,
		Y: a.YX*v.X + a.YY*v.Y + a.Y0,
	}
}

// Translate returns a.Mul(Translate2D(tx, ty)) — translate applied
// before a's existing transform.
func (a Matrix2) Translate(tx, ty float64) Matrix2 {
	return a.Mul(Translate2D(tx, ty))
}

// Scale returns a.Mul(Scale2D(sx, sy)).
func (a Matrix2) Scale(sx, sy float64) Matrix2 {
	return a.Mul(Scale2D(sx, sy))
}

// Rotate returns a.Mul(Rotate2D(rad)).
func (a Matrix2) Rotate(rad float64) Matrix2 {
	return a.Mul(Rotate2D(rad))
}

// Inverse returns the inverse transform, or the identity if a is singular.
func (a Matrix2) Inverse() Matrix2 {
	det := a.XX*a.YY - a.XY*a.YX
	if det == 0 {
		return Identity2()
	}
	id := 1 / det
	xx := a.YY * id
	yx := -a.YX * id
	xy := -a.XY * id
	yy := a.XX * id
	return Matrix2{
		XX: xx, YX: yx, XY: xy, YY: yy,
		X0: -(xx*a.X0 + xy*a.Y0),
		Y0: -(yx*a.X0 + yy*a.Y0),
	}
}

// String returns a CSS transform-function representation of the matrix,
// using the shortest recognizable form ("none", "translate", "scale",
// "scale" followed by "translate", or "matrix"). The result reads back
// to the same matrix through [Matrix2.SetString].
func (a Matrix2) String() string {
	if a == Identity2() {
		return "none"
	}
	if a.XY == 0 && a.YX == 0 && a.XX == 1 && a.YY == 1 {
		return fmt.Sprintf("translate(%v,%v)", a.X0, a.Y0)
	}
	if a.XY == 0 && a.YX == 0 && a.X0 == 0 && a.Y0 == 0 {
		return fmt.Sprintf("scale(%v,%v)", a.XX, a.YY)
	}
	if a.XY == 0 && a.YX == 0 && a.XX == a.YY && (a.X0 != 0 || a.Y0 != 0) {
		return fmt.Sprintf("scale(%v,%v) translate(%v,%v)", a.XX, a.YY, a.X0, a.Y0)
	}
	return fmt.Sprintf("matrix(%v,%v,%v,%v,%v,%v)", a.XX, a.YX, a.XY, a.YY, a.X0, a.Y0)
}

// SetString parses a CSS/SVG transform attribute value into a, replacing
// its contents. It accepts any whitespace- or comma-separated argument
// list, any order of transform primitives, and multiple primitives in
// one attribute string (composed left-to-right, left-most applies
// first). "none" (or an empty string) yields the identity.
func (a *Matrix2) SetString(s string) error {
	s = strings.TrimSpace(s)
	*a = Identity2()
	if s == "" || s == "none" {
		return nil
	}
	result := Identity2()
	rest := s
	for rest != "" {
		rest = strings.TrimSpace(rest)
		if rest == "" {
			break
		}
		open := strings.IndexByte(rest, '(')
		if open < 0 {
			return fmt.Errorf("math32.Matrix2.SetString: missing '(' in %q", s)
		}
		name := strings.TrimSpace(rest[:open])
		close := strings.IndexByte(rest[open:], ')')
		if close < 0 {
			return fmt.Errorf("math32.Matrix2.SetString: missing ')' in %q", s)
		}
		close += open
		argStr := rest[open+1 : close]
		args, err := parseFloatArgs(argStr)
		if err != nil {
			return fmt.Errorf("math32.Matrix2.SetString: %w", err)
		}
		m, err := transformPrimitive(name, args)
		if err != nil {
			return fmt.Errorf("math32.Matrix2.SetString: %w", err)
		}
		// Each newly parsed primitive applies after everything already
		// accumulated, so it goes on the left: result = m * result means
		// result's old effect (the left-most-written tokens) still runs
		// first when the combined matrix is applied to a point.
		result = m.Mul(result)
		rest = rest[close+1:]
	}
	*a = result
	return nil
}

func transformPrimitive(name string, args []float64) (Matrix2, error) {
	switch name {
	case "matrix":
		if len(args) != 6 {
			return Matrix2{}, fmt.Errorf("matrix() wants 6 args, got %d", len(args))
		}
		return Matrix2{XX: args[0], YX: args[1], XY: args[2], YY: args[3], X0: args[4], Y0: args[5]}, nil
	case "translate":
		if len(args) == 1 {
			return Translate2D(args[0], 0), nil
		}
		if len(args) == 2 {
			return Translate2D(args[0], args[1]), nil
		}
		return Matrix2{}, fmt.Errorf("translate() wants 1-2 args, got %d", len(args))
	case "scale":
		if len(args) == 1 {
			return Scale2D(args[0], args[0]), nil
		}
		if len(args) == 2 {
			return Scale2D(args[0], args[1]), nil
		}
		return Matrix2{}, fmt.Errorf("scale() wants 1-2 args, got %d", len(args))
	case "rotate":
		if len(args) == 1 {
			return Rotate2D(DegToRad(args[0])), nil
		}
		if len(args) == 3 {
			cx, cy := args[1], args[2]
			return Translate2D(cx, cy).Mul(Rotate2D(DegToRad(args[0]))).Mul(Translate2D(-cx, -cy)), nil
		}
		return Matrix2{}, fmt.Errorf("rotate() wants 1 or 3 args, got %d", len(args))
	case "skewX":
		if len(args) != 1 {
			return Matrix2{}, fmt.Errorf("skewX() wants 1 arg, got %d", len(args))
		}
		return SkewX2D(DegToRad(args[0])), nil
	case "skewY":
		if len(args) != 1 {
			return Matrix2{}, fmt.Errorf("skewY() wants 1 arg, got %d", len(args))
		}
		return SkewY2D(DegToRad(args[0])), nil
	}
	return Matrix2{}, fmt.Errorf("unrecognized transform primitive %q", name)
}

// parseFloatArgs splits a whitespace- or comma-separated argument list
// into floats.
func parseFloatArgs(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", f, err)
		}
		out = append(out, v)
	}
	return out, nil
}
