// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathdata

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/svgdraw/math32"
	"cogentcore.org/svgdraw/palette"
	"cogentcore.org/svgdraw/svgtree"
)

func identityMapping(hexes ...string) map[string]palette.Mapping {
	m := map[string]palette.Mapping{}
	for i, h := range hexes {
		m[h] = palette.Mapping{Index: i, Hex: h, Color: palette.Color{A: 1}}
	}
	return m
}

func TestConvertRect(t *testing.T) {
	leaf := svgtree.Leaf{
		D:         "M 0,0 L 10,0 L 10,10 L 0,10 Z",
		Fill:      "#111111",
		Transform: math32.Identity2(),
	}
	vb := svgtree.ViewBox{W: 10, H: 10}
	mapping := identityMapping("#111111")
	segs := Convert(leaf, mapping, vb, 10, 0.05)
	require.Len(t, segs, 4)
	for _, s := range segs {
		assert.True(t, s.F)
		assert.Nil(t, s.BP)
		assert.Equal(t, StyleLine, s.S)
	}
}

func TestConvertEmptyD(t *testing.T) {
	leaf := svgtree.Leaf{D: "", Fill: "#000000", Transform: math32.Identity2()}
	vb := svgtree.ViewBox{W: 10, H: 10}
	segs := Convert(leaf, identityMapping("#000000"), vb, 10, 0.05)
	assert.Empty(t, segs)
}

func TestConvertUnparseableD(t *testing.T) {
	leaf := svgtree.Leaf{D: "not a path", Fill: "#000000", Transform: math32.Identity2()}
	vb := svgtree.ViewBox{W: 10, H: 10}
	segs := Convert(leaf, identityMapping("#000000"), vb, 10, 0.05)
	assert.Empty(t, segs)
}

func TestConvertFillAndStrokeTwoPasses(t *testing.T) {
	leaf := svgtree.Leaf{
		D:         "M 0,0 L 1,1",
		Fill:      "#111111",
		Stroke:    "#222222",
		Transform: math32.Identity2(),
	}
	vb := svgtree.ViewBox{W: 10, H: 10}
	mapping := identityMapping("#111111", "#222222")
	segs := Convert(leaf, mapping, vb, 10, 0.05)
	require.Len(t, segs, 2)
	assert.True(t, segs[0].F)
	assert.False(t, segs[1].F)
}

func TestConvertCollinearCubicSingleQuad(t *testing.T) {
	leaf := svgtree.Leaf{
		D:         "M 0,0 C 1,0 2,0 3,0",
		Fill:      "#000000",
		Transform: math32.Identity2(),
	}
	vb := svgtree.ViewBox{W: 10, H: 10}
	segs := Convert(leaf, identityMapping("#000000"), vb, 10, 0.05)
	require.Len(t, segs, 1)
	require.NotNil(t, segs[0].BP)
}

func TestConvertFullCircleArcFourSubArcs(t *testing.T) {
	d := "M 10,0 A 10,10 0 1,1 -10,0 A 10,10 0 1,1 10,0"
	leaf := svgtree.Leaf{D: d, Fill: "#000000", Transform: math32.Identity2()}
	vb := svgtree.ViewBox{W: 20, H: 20, X: -10, Y: -10}
	segs := Convert(leaf, identityMapping("#000000"), vb, 10, 0.05)
	assert.Equal(t, 4, len(segs))
	for _, s := range segs {
		require.NotNil(t, s.BP)
	}
}

func TestConvertRoundedRectClampsRadii(t *testing.T) {
	// rx,ry larger than half the box; rectPath in svgtree clamps before
	// this package ever parses the d string, so exercise the resulting d
	// directly here instead of depending on shapeToPath.
	d := "M 5,0 L 5,0 A 5,5 0 0,1 10,5 L 10,5 A 5,5 0 0,1 5,10 L 5,10 A 5,5 0 0,1 0,5 L 0,5 A 5,5 0 0,1 5,0 Z"
	leaf := svgtree.Leaf{D: d, Fill: "#000000", Transform: math32.Identity2()}
	vb := svgtree.ViewBox{W: 10, H: 10}
	segs := Convert(leaf, identityMapping("#000000"), vb, 10, 0.05)
	assert.NotEmpty(t, segs)
}

func TestRemapperSquareViewBoxSymmetric(t *testing.T) {
	vb := svgtree.ViewBox{W: 100, H: 100}
	r := newRemapper(vb, 10)
	p := r.point(math32.Vec2(0, 0))
	assert.InDelta(t, -10.0, p.X, 1e-9)
	assert.InDelta(t, -10.0, p.Y, 1e-9)
	p2 := r.point(math32.Vec2(100, 100))
	assert.InDelta(t, 10.0, p2.X, 1e-9)
	assert.InDelta(t, 10.0, p2.Y, 1e-9)
}

func TestArcToQuadsStraightWhenZeroRadius(t *testing.T) {
	segs := arcToQuads(math32.Vec2(0, 0), math32.Vec2(10, 0), 0, 5, 0, false, false)
	require.Len(t, segs, 1)
	assert.Nil(t, segs[0].Bend)
}

func TestCubicToQuadsRespectsMaxDepth(t *testing.T) {
	// A wildly non-flat cubic should still terminate within maxCubicDepth
	// recursion levels rather than subdividing forever.
	segs := cubicToQuads(
		math32.Vec2(0, 0), math32.Vec2(0, 1000), math32.Vec2(1000, -1000), math32.Vec2(1000, 0),
		0.05, 0,
	)
	assert.True(t, len(segs) <= 1<<maxCubicDepth)
	assert.True(t, len(segs) >= 1)
}

func TestScanNumberRunTogether(t *testing.T) {
	sc := newScanner("1.5.5")
	v1, err := sc.readNumber()
	require.NoError(t, err)
	assert.InDelta(t, 1.5, v1, 1e-9)
	v2, err := sc.readNumber()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, v2, 1e-9)
}

func TestScanFlagsConcatenated(t *testing.T) {
	sc := newScanner("0110")
	f1, err := sc.readFlag()
	require.NoError(t, err)
	assert.Equal(t, 0.0, f1)
	f2, err := sc.readFlag()
	require.NoError(t, err)
	assert.Equal(t, 1.0, f2)
	rest, err := sc.readNumber()
	require.NoError(t, err)
	assert.Equal(t, 10.0, rest)
}

func TestParsePathLocalClosePathReturnsToStart(t *testing.T) {
	segs := parsePathLocal("M 0,0 L 10,0 L 10,10 Z", 0.05)
	require.Len(t, segs, 3)
	last := segs[2]
	assert.True(t, last.fromClose)
	assert.InDelta(t, 0.0, last.P1.X, 1e-9)
	assert.InDelta(t, 0.0, last.P1.Y, 1e-9)
}

func TestParsePathLocalClosedAlreadyAtStartKeepsZeroLengthClose(t *testing.T) {
	// the explicit final L already returns to (0,0), so Z's closing
	// segment is zero-length and gets dropped downstream in Convert.
	segs := parsePathLocal("M 0,0 L 10,0 L 0,0 Z", 0.05)
	require.Len(t, segs, 3)
	assert.True(t, segs[2].fromClose)
	assert.InDelta(t, 0.0, math.Abs(segs[2].P0.X-segs[2].P1.X), 1e-9)
}
