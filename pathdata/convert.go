// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathdata

import (
	"math"

	"cogentcore.org/svgdraw/colors"
	"cogentcore.org/svgdraw/math32"
	"cogentcore.org/svgdraw/palette"
	"cogentcore.org/svgdraw/svgtree"
)

// zEpsilon is the drawing-unit distance below which a subpath's closing
// segment is omitted because current point already coincides with the
// subpath start.
const zEpsilon = 1e-3

// parsePathLocal walks an SVG path "d" string, interpreting relative
// commands against the running current point and expanding C/S to
// cubic-derived quadratics and A to arc-derived quadratics, entirely in
// the path's local (untransformed) coordinate space. A malformed "d"
// yields a nil slice and no error, even when a leading part of it
// parsed: per spec, unparseable path data emits no segments rather
// than failing the conversion.
func parsePathLocal(d string, tolerance float64) (segs []quadSeg) {
	if d == "" {
		return nil
	}
	sc := newScanner(d)
	complete := false
	defer func() {
		if !complete {
			segs = nil
		}
	}()
	var cur, subStart math32.Vector2
	haveCur := false

	readPoint := func(rel bool) (math32.Vector2, error) {
		x, err := sc.readNumber()
		if err != nil {
			return math32.Vector2{}, err
		}
		y, err := sc.readNumber()
		if err != nil {
			return math32.Vector2{}, err
		}
		p := math32.Vec2(x, y)
		if rel {
			p = cur.Add(p)
		}
		return p, nil
	}

	for !sc.atEnd() {
		cmd, err := sc.readCommand()
		if err != nil {
			return segs
		}
		rel := cmd >= 'a' && cmd <= 'z'
		upper := cmd
		if rel {
			upper -= 'a' - 'A'
		}

		switch upper {
		case 'M':
			p, err := readPoint(rel && haveCur)
			if err != nil {
				return segs
			}
			cur, subStart, haveCur = p, p, true
			for sc.moreArgs() {
				next, err := readPoint(rel)
				if err != nil {
					return segs
				}
				segs = append(segs, quadSeg{P0: cur, P1: next})
				cur = next
			}
		case 'L':
			for {
				next, err := readPoint(rel)
				if err != nil {
					return segs
				}
				segs = append(segs, quadSeg{P0: cur, P1: next})
				cur = next
				if !sc.moreArgs() {
					break
				}
			}
		case 'H':
			for {
				x, err := sc.readNumber()
				if err != nil {
					return segs
				}
				nx := x
				if rel {
					nx = cur.X + x
				}
				next := math32.Vec2(nx, cur.Y)
				segs = append(segs, quadSeg{P0: cur, P1: next})
				cur = next
				if !sc.moreArgs() {
					break
				}
			}
		case 'V':
			for {
				y, err := sc.readNumber()
				if err != nil {
					return segs
				}
				ny := y
				if rel {
					ny = cur.Y + y
				}
				next := math32.Vec2(cur.X, ny)
				segs = append(segs, quadSeg{P0: cur, P1: next})
				cur = next
				if !sc.moreArgs() {
					break
				}
			}
		case 'Q':
			for {
				cp, err := readPoint(rel)
				if err != nil {
					return segs
				}
				end, err := readPoint(rel)
				if err != nil {
					return segs
				}
				cpCopy := cp
				segs = append(segs, quadSeg{P0: cur, P1: end, Bend: &cpCopy})
				cur = end
				if !sc.moreArgs() {
					break
				}
			}
		case 'T':
			// Smooth quadratic: accepted fidelity loss, emitted as a
			// straight segment (no reflected-control tracking).
			for {
				end, err := readPoint(rel)
				if err != nil {
					return segs
				}
				segs = append(segs, quadSeg{P0: cur, P1: end})
				cur = end
				if !sc.moreArgs() {
					break
				}
			}
		case 'C':
			for {
				cp1, err := readPoint(rel)
				if err != nil {
					return segs
				}
				cp2, err := readPoint(rel)
				if err != nil {
					return segs
				}
				end, err := readPoint(rel)
				if err != nil {
					return segs
				}
				segs = append(segs, cubicToQuads(cur, cp1, cp2, end, tolerance, 0)...)
				cur = end
				if !sc.moreArgs() {
					break
				}
			}
		case 'S':
			// Smooth cubic: accepted fidelity loss, cp1 is the current
			// point rather than the reflection of the prior control.
			for {
				cp2, err := readPoint(rel)
				if err != nil {
					return segs
				}
				end, err := readPoint(rel)
				if err != nil {
					return segs
				}
				segs = append(segs, cubicToQuads(cur, cur, cp2, end, tolerance, 0)...)
				cur = end
				if !sc.moreArgs() {
					break
				}
			}
		case 'A':
			for {
				rx, err := sc.readNumber()
				if err != nil {
					return segs
				}
				ry, err := sc.readNumber()
				if err != nil {
					return segs
				}
				rot, err := sc.readNumber()
				if err != nil {
					return segs
				}
				largeArc, err := sc.readFlag()
				if err != nil {
					return segs
				}
				sweep, err := sc.readFlag()
				if err != nil {
					return segs
				}
				end, err := readPoint(rel)
				if err != nil {
					return segs
				}
				segs = append(segs, arcToQuads(cur, end, rx, ry, rot, largeArc != 0, sweep != 0)...)
				cur = end
				if !sc.moreArgs() {
					break
				}
			}
		case 'Z':
			if haveCur {
				segs = append(segs, quadSeg{P0: cur, P1: subStart, fromClose: true})
			}
			cur = subStart
		default:
			return segs
		}
	}
	complete = true
	return segs
}

// remapper maps a leaf's local path coordinates (after the element's
// accumulated transform) into drawing units, per the viewBox remap in
// spec 4.4: the longer viewBox dimension spans the full drawing width,
// aspect-preserving and centered at the origin.
type remapper struct {
	s          float64
	vx, vy     float64
	vw2s, vh2s float64
}

func newRemapper(vb svgtree.ViewBox, scale float64) remapper {
	maxDim := math.Max(vb.W, vb.H)
	if maxDim <= 0 {
		maxDim = 1
	}
	s := 2 * scale / maxDim
	return remapper{s: s, vx: vb.X, vy: vb.Y, vw2s: vb.W * s / 2, vh2s: vb.H * s / 2}
}

func (r remapper) point(p math32.Vector2) math32.Vector2 {
	return math32.Vector2{
		X: p.X*r.s - r.vx*r.s - r.vw2s,
		Y: p.Y*r.s - r.vy*r.s - r.vh2s,
	}
}

// colorPass describes one {color, fill-flag} pass over a leaf's
// geometry, per spec 4.4's color resolution rule.
type colorPass struct {
	fill          bool
	hasColor      bool
	color         [4]float64
	isTransparent bool
}

func colorPasses(leaf svgtree.Leaf, mapping map[string]palette.Mapping) []colorPass {
	var passes []colorPass
	if leaf.Fill != colors.NoPaint {
		if m, ok := mapping[leaf.Fill]; ok {
			passes = append(passes, colorPass{fill: true, hasColor: true, color: [4]float64{m.Color.R, m.Color.G, m.Color.B, m.Color.A}})
		}
	}
	if leaf.Stroke != colors.NoPaint {
		if m, ok := mapping[leaf.Stroke]; ok {
			passes = append(passes, colorPass{fill: false, hasColor: true, color: [4]float64{m.Color.R, m.Color.G, m.Color.B, m.Color.A}})
		}
	}
	if len(passes) == 0 {
		passes = append(passes, colorPass{fill: false, isTransparent: true})
	}
	return passes
}

// Convert transcribes one flattened leaf's path data into target
// segments: one full copy of the geometry per resolved color pass (fill
// then stroke), each point carried through the leaf's accumulated
// transform and the viewBox-to-drawing-unit remap.
func Convert(leaf svgtree.Leaf, mapping map[string]palette.Mapping, vb svgtree.ViewBox, scale, tolerance float64) []Segment {
	if tolerance <= 0 {
		tolerance = defaultTolerance
	}
	local := parsePathLocal(leaf.D, tolerance)
	if len(local) == 0 {
		return nil
	}
	remap := newRemapper(vb, scale)
	toDrawing := func(p math32.Vector2) math32.Vector2 {
		return remap.point(leaf.Transform.MulPoint(p))
	}

	type drawingSeg struct {
		p0, p1 math32.Vector2
		bend   *math32.Vector2
	}
	drawn := make([]drawingSeg, 0, len(local))
	for _, s := range local {
		ds := drawingSeg{p0: toDrawing(s.P0), p1: toDrawing(s.P1)}
		if s.Bend != nil {
			b := toDrawing(*s.Bend)
			ds.bend = &b
		}
		// Z only emits its closing segment if current point and subpath
		// start differ by more than 1e-3 drawing units, per spec 4.4.
		if s.fromClose && ds.p0.Sub(ds.p1).Length() <= zEpsilon {
			continue
		}
		drawn = append(drawn, ds)
	}

	passes := colorPasses(leaf, mapping)
	out := make([]Segment, 0, len(drawn)*len(passes))
	for _, pass := range passes {
		for _, ds := range drawn {
			seg := Segment{
				P: [4]float64{ds.p0.X, ds.p0.Y, ds.p1.X, ds.p1.Y},
				S: StyleLine,
				F: pass.fill,
			}
			if ds.bend != nil {
				seg.BP = &Point{X: ds.bend.X, Y: ds.bend.Y}
			}
			if pass.hasColor {
				c := pass.color
				seg.C = &c
			}
			if pass.isTransparent {
				t := true
				seg.IsTransparent = &t
			}
			out = append(out, seg)
		}
	}
	return out
}
