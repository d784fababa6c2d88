// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgtree

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"cogentcore.org/svgdraw/colors"
	"cogentcore.org/svgdraw/math32"
)

var defTags = map[string]bool{
	"defs": true, "clipPath": true, "mask": true,
	"linearGradient": true, "radialGradient": true,
}

var gradientURLRE = regexp.MustCompile(`^url\(#([^)]+)\)$`)

// paintState is the inherited paint and transform context threaded down
// the recursive walk.
type paintState struct {
	fill        string
	stroke      string
	strokeWidth float64
	transform   math32.Matrix2
}

type walker struct {
	byID     map[string]*Node
	doc      *Document
	warnings []string
	colors   map[string]bool
}

// Parse flattens the given SVG document string into a [Document]. It
// fails with an error only when the input does not decode as XML or no
// root <svg> element is found. Gradient fills are recovered locally and
// surfaced as a warning; degenerate shapes and unknown tags are dropped
// without a warning.
func Parse(svgString string) (*Document, error) {
	root, err := parseXML(strings.NewReader(svgString))
	if err != nil {
		return nil, fmt.Errorf("svgtree: malformed input: %w", err)
	}
	svgRoot := root
	if svgRoot.Tag != "svg" {
		svgRoot = findTag(root, "svg")
	}
	if svgRoot == nil {
		return nil, fmt.Errorf("svgtree: malformed input: no root <svg> element found")
	}

	w := &walker{
		byID:   map[string]*Node{},
		doc:    &Document{ViewBox: parseViewBox(svgRoot)},
		colors: map[string]bool{},
	}
	indexIDs(svgRoot, w.byID)

	start := paintState{
		fill:        "#000000",
		stroke:      "",
		strokeWidth: 1,
		transform:   math32.Identity2(),
	}
	for _, c := range svgRoot.Children {
		w.walk(c, start)
	}
	w.doc.Warnings = w.warnings
	w.doc.Colors = sortedKeys(w.colors)
	return w.doc, nil
}

func findTag(n *Node, tag string) *Node {
	if n.Tag == tag {
		return n
	}
	for _, c := range n.Children {
		if found := findTag(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func indexIDs(n *Node, byID map[string]*Node) {
	if id := n.Attr("id"); id != "" {
		byID[id] = n
	}
	for _, c := range n.Children {
		indexIDs(c, byID)
	}
}

// parseViewBox reads the viewBox attribute, falling back to width/height
// (defaulting to 100x100) with origin (0,0), per spec 4.3.
func parseViewBox(svg *Node) ViewBox {
	if vb := svg.Attr("viewBox"); vb != "" {
		fields := strings.FieldsFunc(vb, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n'
		})
		if len(fields) == 4 {
			nums := make([]float64, 4)
			ok := true
			for i, f := range fields {
				v, err := strconv.ParseFloat(f, 64)
				if err != nil {
					ok = false
					break
				}
				nums[i] = v
			}
			if ok && nums[2] > 0 && nums[3] > 0 {
				return ViewBox{X: nums[0], Y: nums[1], W: nums[2], H: nums[3]}
			}
		}
	}
	w := attrFloatOrDefault(svg, "width", 100)
	h := attrFloatOrDefault(svg, "height", 100)
	if w <= 0 {
		w = 100
	}
	if h <= 0 {
		h = 100
	}
	return ViewBox{X: 0, Y: 0, W: w, H: h}
}

func attrFloatOrDefault(n *Node, name string, def float64) float64 {
	v := n.Attr(name)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return def
	}
	return f
}

func (w *walker) walk(n *Node, state paintState) {
	if defTags[n.Tag] {
		return
	}

	var m math32.Matrix2
	if err := m.SetString(n.Attr("transform")); err != nil {
		m = math32.Identity2()
	}
	state.transform = state.transform.Mul(m)

	fill := resolvePaint(fillRE, n, "fill", state.fill)
	stroke := colors.Normalize(resolvePaint(strokeRE, n, "stroke", state.stroke))
	strokeWidth := state.strokeWidth
	if sw := n.Attr("stroke-width"); sw != "" {
		if v, err := strconv.ParseFloat(strings.TrimSpace(sw), 64); err == nil {
			strokeWidth = v
		}
	}

	if gu := gradientURLRE.FindStringSubmatch(fill); gu != nil {
		w.warnings = append(w.warnings, fmt.Sprintf("gradient fill on <%s> approximated by its first stop color", n.Tag))
		if stop := w.firstGradientStop(gu[1]); stop != "" {
			fill = stop
		} else {
			fill = "#000000"
		}
	} else {
		fill = colors.Normalize(fill)
	}

	state.fill = fill
	state.stroke = stroke
	state.strokeWidth = strokeWidth

	if n.Tag == "g" || n.Tag == "svg" {
		for _, c := range n.Children {
			w.walk(c, state)
		}
		return
	}

	d, ok := shapeToPath(n)
	if !ok || d == "" {
		return
	}

	leaf := Leaf{
		D:           d,
		Fill:        fill,
		Stroke:      stroke,
		StrokeWidth: strokeWidth,
		Transform:   state.transform,
	}
	w.doc.Leaves = append(w.doc.Leaves, leaf)
	if leaf.Fill != colors.NoPaint {
		w.colors[leaf.Fill] = true
	}
	if leaf.Stroke != colors.NoPaint {
		w.colors[leaf.Stroke] = true
	}
}

// firstGradientStop looks up the gradient referenced by id and returns
// its first <stop>'s resolved color, or "" if the id doesn't resolve to
// a gradient with at least one stop.
func (w *walker) firstGradientStop(id string) string {
	g, ok := w.byID[id]
	if !ok {
		return ""
	}
	for _, c := range g.Children {
		if c.Tag != "stop" {
			continue
		}
		if v, ok := styleProperty(stopColorRE, c.Attr("style")); ok {
			return colors.Normalize(v)
		}
		if v := c.Attr("stop-color"); v != "" {
			return colors.Normalize(v)
		}
		return ""
	}
	return ""
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	// Stable, deterministic order for reproducible output; exact order is
	// not semantically significant (spec 3 calls this "a set").
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
