// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import "regexp"

// Recolor replaces every case-insensitive occurrence of each mapped
// hex color in svg with its palette hex, via a regex-escaped global
// replace, per spec 4.5 step 5.
func Recolor(svg string, mapping map[string]string) string {
	for from, to := range mapping {
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(from))
		svg = re.ReplaceAllString(svg, to)
	}
	return svg
}
