// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command svgdraw converts an SVG file into the fixed-schema vector
// drawing JSON document, writing it to stdout or a file.
package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"os"

	"cogentcore.org/svgdraw"
	"cogentcore.org/svgdraw/base/errors"
	"cogentcore.org/svgdraw/palette"
)

func main() {
	var (
		inputFile  = flag.String("in", "", "input SVG file (required)")
		outputFile = flag.String("out", "", "output JSON file (defaults to stdout)")
		tolerance  = flag.Float64("tolerance", svgdraw.DefaultTolerance, "cubic subdivision tolerance")
		paletteArg = flag.String("palette", "", "comma-separated palette hex colors (defaults to AAP-64)")
	)
	flag.Parse()

	if *inputFile == "" {
		slog.Error("missing required -in flag")
		flag.Usage()
		os.Exit(2)
	}

	svgBytes, err := os.ReadFile(*inputFile)
	if err != nil {
		slog.Error("reading input file", "path", *inputFile, "error", err)
		os.Exit(1)
	}

	var paletteHex []string
	var paletteColor []palette.Color
	if *paletteArg != "" {
		paletteHex = splitPalette(*paletteArg)
		paletteColor = make([]palette.Color, len(paletteHex))
		for i, hex := range paletteHex {
			c, err := palette.ParseHex(hex)
			if err != nil {
				slog.Error("parsing -palette entry", "hex", hex, "error", err)
				os.Exit(2)
			}
			paletteColor[i] = c
		}
	}

	result, err := svgdraw.Build(string(svgBytes), paletteHex, paletteColor, *tolerance)
	if err != nil {
		slog.Error("converting svg", "error", err)
		os.Exit(1)
	}
	for _, w := range result.Warnings {
		slog.Warn(w)
	}

	out, err := json.Marshal(result.Document)
	if err != nil {
		slog.Error("marshaling document", "error", err)
		os.Exit(1)
	}

	if *outputFile == "" {
		os.Stdout.Write(out)
		os.Stdout.Write([]byte("\n"))
		return
	}
	if err := os.WriteFile(*outputFile, out, 0o644); err != nil {
		errors.Log(err)
		os.Exit(1)
	}
}

func splitPalette(s string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return out
}
