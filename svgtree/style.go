// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgtree

import (
	"regexp"
	"strings"
)

var fillRE = regexp.MustCompile(`fill\s*:\s*([^;]+)`)
var strokeRE = regexp.MustCompile(`stroke\s*:\s*([^;]+)`)
var stopColorRE = regexp.MustCompile(`stop-color\s*:\s*([^;]+)`)

// styleProperty extracts the named property from an inline "style"
// attribute value via a coarse regex scan (per spec Design Notes 9.2: a
// full CSS property parser is not required — only fill/stroke/
// stop-color are recognized; anything else is treated as absent).
func styleProperty(re *regexp.Regexp, style string) (string, bool) {
	m := re.FindStringSubmatch(style)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// resolvePaint resolves one of fill/stroke for a node: inline style
// wins over the attribute, which wins over the inherited value from an
// ancestor (spec 4.3).
func resolvePaint(re *regexp.Regexp, node *Node, attrName, inherited string) string {
	if v, ok := styleProperty(re, node.Attr("style")); ok {
		return v
	}
	if v := node.Attr(attrName); v != "" {
		return v
	}
	return inherited
}
