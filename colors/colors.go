// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors normalizes SVG/CSS color strings to 6-digit lowercase
// hex, the key type used throughout the conversion pipeline.
package colors

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// NoPaint is the distinguished "no color" value: "none", "transparent",
// or any unrecognized string normalizes to it.
const NoPaint = ""

// named is the small set of CSS color names this pipeline recognizes,
// per spec 4.2, looked up against [colornames.Map] rather than carrying
// a hand-copied table.
var named = []string{
	"black", "white", "red", "green", "blue", "yellow", "cyan", "magenta",
	"orange", "purple", "pink", "gray", "grey", "silver", "maroon", "olive",
	"lime", "aqua", "teal", "navy", "fuchsia",
}

var namedHex map[string]string

func init() {
	namedHex = make(map[string]string, len(named))
	for _, n := range named {
		c, ok := colornames.Map[n]
		if !ok {
			continue
		}
		namedHex[n] = fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
}

// Normalize lowercases and trims the given color string and converts it
// to a 6-digit lowercase hex string ("#rrggbb"). Recognized forms are
// #rgb, #rrggbb, #rrggbbaa (alpha dropped), rgb(r,g,b), rgba(r,g,b,a)
// (alpha ignored), and the small named-color set. "transparent", "none",
// and any unrecognized string normalize to [NoPaint].
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "none" || s == "transparent" {
		return NoPaint
	}
	if strings.HasPrefix(s, "#") {
		return normalizeHex(s[1:])
	}
	if strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")") {
		return normalizeRGB(s[len("rgba(") : len(s)-1])
	}
	if strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")") {
		return normalizeRGB(s[len("rgb(") : len(s)-1])
	}
	if hex, ok := namedHex[s]; ok {
		return hex
	}
	return NoPaint
}

func normalizeHex(h string) string {
	switch len(h) {
	case 3:
		if !isHex(h) {
			return NoPaint
		}
		r, g, b := h[0], h[1], h[2]
		return "#" + string(r) + string(r) + string(g) + string(g) + string(b) + string(b)
	case 6, 8:
		if !isHex(h) {
			return NoPaint
		}
		return "#" + h[:6]
	}
	return NoPaint
}

func isHex(s string) bool {
	for _, r := range s {
		if !((r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')) {
			return false
		}
	}
	return true
}

// normalizeRGB parses the comma-separated channel list of an rgb()/
// rgba() function (integer channels; alpha, if present, is ignored).
func normalizeRGB(args string) string {
	parts := strings.Split(args, ",")
	if len(parts) < 3 {
		return NoPaint
	}
	var chans [3]int
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return NoPaint
		}
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		chans[i] = v
	}
	return fmt.Sprintf("#%02x%02x%02x", chans[0], chans[1], chans[2])
}
