// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette matches arbitrary sRGB colors to the nearest entry of
// a fixed, bounded palette under the CIE94 perceptual metric.
package palette

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/svgdraw/colors/cam/cie"
)

// Color is one palette entry: r, g, b, a components in [0,1].
type Color struct {
	R, G, B, A float64
}

// MaxSize is the largest number of colors a palette may contain.
const MaxSize = 64

// AAP64Hex is the default 64-entry palette, referenced by index
// throughout emitted documents.
var AAP64Hex = []string{
	"#060608", "#141013", "#3b1725", "#73172d", "#b4202a", "#df3e23", "#fa6a0a", "#f9a31b",
	"#ffd541", "#fffc40", "#d6f264", "#9cdb43", "#59c135", "#14a02e", "#1a7a3e", "#24523b",
	"#122020", "#143464", "#285cc4", "#249fde", "#8ef8e6", "#ffffff", "#e8eef3", "#bcc6d0",
	"#8a98b0", "#5d6478", "#35314a", "#191e29", "#2a213f", "#52295f", "#8c4d8f", "#c878b5",
	"#ed9fd1", "#ffd2e1", "#fff1e8", "#f8c4a8", "#e79a73", "#c3703a", "#904b23", "#5e2f17",
	"#331f13", "#1a140d", "#241527", "#3f2145", "#6b2d6f", "#9e4191", "#cb5fb5", "#ef8fd6",
	"#ffb8e0", "#ffe3f1", "#f4fbff", "#cfeaff", "#9fc9ef", "#6ea2d6", "#4273b0", "#264a80",
	"#142752", "#0a132b", "#213a1f", "#355f2e", "#518f3c", "#79c357", "#abe273", "#d7f59c",
}

// AAP64 is [AAP64Hex] decoded into floats, built once at init.
var AAP64 []Color

func init() {
	AAP64 = make([]Color, len(AAP64Hex))
	for i, h := range AAP64Hex {
		c, err := decodeHex(h)
		if err != nil {
			panic(err)
		}
		AAP64[i] = c
	}
}

// ParseHex decodes a "#rrggbb" string into a [Color], for callers
// building a custom palette from a hex list.
func ParseHex(h string) (Color, error) {
	return decodeHex(h)
}

func decodeHex(h string) (Color, error) {
	h = strings.TrimPrefix(h, "#")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("palette: invalid hex color %q", h)
	}
	r, err := strconv.ParseUint(h[0:2], 16, 8)
	if err != nil {
		return Color{}, err
	}
	g, err := strconv.ParseUint(h[2:4], 16, 8)
	if err != nil {
		return Color{}, err
	}
	b, err := strconv.ParseUint(h[4:6], 16, 8)
	if err != nil {
		return Color{}, err
	}
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}, nil
}

// Mapping is the result of matching one input color against a palette.
type Mapping struct {
	Index  int
	Hex    string
	Color  Color
	DeltaE float64
}

// HighDeltaE is the threshold above which a mapping is considered an
// "obvious shift" and surfaced as a warning.
const HighDeltaE = 15

// Match finds, for each of the given normalized 6-digit hex input
// colors, the nearest entry of paletteHex (parallel to paletteColor) by
// CIE94 distance, breaking ties by lowest index. It returns a mapping
// keyed by input hex, plus a warning for every mapping whose ΔE exceeds
// [HighDeltaE].
func Match(inputHex []string, paletteHex []string, paletteColor []Color) (map[string]Mapping, []string) {
	labs := make([]cie.Lab, len(paletteColor))
	for i, c := range paletteColor {
		labs[i] = cie.SRGBToLab(c.R, c.G, c.B)
	}
	mapping := make(map[string]Mapping, len(inputHex))
	var warnings []string
	for _, hex := range inputHex {
		if hex == "" {
			continue
		}
		c, err := decodeHex(hex)
		if err != nil {
			continue
		}
		lab := cie.SRGBToLab(c.R, c.G, c.B)
		bestIdx := 0
		bestDE := -1.0
		for i, pl := range labs {
			de := cie.DeltaE94(lab, pl)
			if bestDE < 0 || de < bestDE {
				bestDE = de
				bestIdx = i
			}
		}
		m := Mapping{Index: bestIdx, Hex: paletteHex[bestIdx], Color: paletteColor[bestIdx], DeltaE: bestDE}
		mapping[hex] = m
		if bestDE > HighDeltaE {
			warnings = append(warnings, fmt.Sprintf("color %s mapped to palette entry %s with high perceptual difference (ΔE=%.2f)", hex, m.Hex, bestDE))
		}
	}
	return mapping, warnings
}
