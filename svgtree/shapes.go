// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgtree

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// shapeToPath converts a recognized leaf shape tag into an SVG path "d"
// string, per spec 4.3. ok is false for unrecognized tags or degenerate
// geometry (non-positive width/height/radius).
func shapeToPath(n *Node) (d string, ok bool) {
	switch n.Tag {
	case "path":
		return n.Attr("d"), true
	case "rect":
		return rectPath(n)
	case "circle":
		return circlePath(n)
	case "ellipse":
		return ellipsePath(n)
	case "line":
		return linePath(n)
	case "polygon":
		return polyPath(n, true)
	case "polyline":
		return polyPath(n, false)
	}
	return "", false
}

func rectPath(n *Node) (string, bool) {
	x := attrFloat(n, "x", 0)
	y := attrFloat(n, "y", 0)
	w := attrFloat(n, "width", 0)
	h := attrFloat(n, "height", 0)
	if w <= 0 || h <= 0 {
		return "", false
	}
	rx := attrFloat(n, "rx", 0)
	ry := attrFloat(n, "ry", 0)
	if rx == 0 && ry != 0 {
		rx = ry
	}
	if ry == 0 && rx != 0 {
		ry = rx
	}
	if rx <= 0 || ry <= 0 {
		return fmt.Sprintf("M %v,%v L %v,%v L %v,%v L %v,%v Z", x, y, x+w, y, x+w, y+h, x, y+h), true
	}
	if rx > w/2 {
		rx = w / 2
	}
	if ry > h/2 {
		ry = h / 2
	}
	return fmt.Sprintf(
		"M %v,%v L %v,%v A %v,%v 0 0,1 %v,%v L %v,%v A %v,%v 0 0,1 %v,%v "+
			"L %v,%v A %v,%v 0 0,1 %v,%v L %v,%v A %v,%v 0 0,1 %v,%v Z",
		x+rx, y,
		x+w-rx, y, rx, ry, x+w, y+ry,
		x+w, y+h-ry, rx, ry, x+w-rx, y+h,
		x+rx, y+h, rx, ry, x, y+h-ry,
		x, y+ry, rx, ry, x+rx, y,
	), true
}

func circlePath(n *Node) (string, bool) {
	cx := attrFloat(n, "cx", 0)
	cy := attrFloat(n, "cy", 0)
	r := attrFloat(n, "r", 0)
	if r <= 0 {
		return "", false
	}
	return fmt.Sprintf("M %v,%v A %v,%v 0 1,0 %v,%v A %v,%v 0 1,0 %v,%v Z",
		cx+r, cy, r, r, cx-r, cy, r, r, cx+r, cy), true
}

func ellipsePath(n *Node) (string, bool) {
	cx := attrFloat(n, "cx", 0)
	cy := attrFloat(n, "cy", 0)
	rx := attrFloat(n, "rx", 0)
	ry := attrFloat(n, "ry", 0)
	if rx <= 0 || ry <= 0 {
		return "", false
	}
	return fmt.Sprintf("M %v,%v A %v,%v 0 1,0 %v,%v A %v,%v 0 1,0 %v,%v Z",
		cx+rx, cy, rx, ry, cx-rx, cy, rx, ry, cx+rx, cy), true
}

func linePath(n *Node) (string, bool) {
	x1 := attrFloat(n, "x1", 0)
	y1 := attrFloat(n, "y1", 0)
	x2 := attrFloat(n, "x2", 0)
	y2 := attrFloat(n, "y2", 0)
	return fmt.Sprintf("M %v,%v L %v,%v", x1, y1, x2, y2), true
}

func polyPath(n *Node, closed bool) (string, bool) {
	pts := parsePoints(n.Attr("points"))
	if len(pts) < 2 {
		return "", false
	}
	var b strings.Builder
	fmt.Fprintf(&b, "M %v,%v", pts[0].x, pts[0].y)
	for _, p := range pts[1:] {
		fmt.Fprintf(&b, " L %v,%v", p.x, p.y)
	}
	if closed {
		b.WriteString(" Z")
	}
	return b.String(), true
}

type point struct{ x, y float64 }

// parsePoints parses an SVG points attribute ("x1,y1 x2,y2 ...",
// allowing either comma or whitespace between numbers) into pairs,
// dropping any trailing unpaired coordinate.
func parsePoints(s string) []point {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	nums := make([]float64, 0, len(fields))
	for _, f := range fields {
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			continue
		}
		nums = append(nums, v)
	}
	pts := make([]point, 0, len(nums)/2)
	for i := 0; i+1 < len(nums); i += 2 {
		pts = append(pts, point{nums[i], nums[i+1]})
	}
	return pts
}

func attrFloat(n *Node, name string, def float64) float64 {
	v := n.Attr(name)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) {
		return def
	}
	return f
}
