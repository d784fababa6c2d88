// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecolorCaseInsensitive(t *testing.T) {
	svg := `<rect fill="#B4202A"/><rect fill="#b4202a"/>`
	out := Recolor(svg, map[string]string{"#b4202a": "#ffffff"})
	assert.Equal(t, `<rect fill="#ffffff"/><rect fill="#ffffff"/>`, out)
}

func TestRecolorRegexEscapesSpecialChars(t *testing.T) {
	svg := `value(#1)`
	out := Recolor(svg, map[string]string{"(#1)": "REPLACED"})
	assert.Equal(t, "valueREPLACED", out)
}

func TestRecolorNoMatchLeavesInputUnchanged(t *testing.T) {
	svg := `<rect fill="#000000"/>`
	out := Recolor(svg, map[string]string{"#ffffff": "#000000"})
	assert.Equal(t, svg, out)
}

func TestRecolorEmptyMapping(t *testing.T) {
	svg := `<rect fill="#000000"/>`
	out := Recolor(svg, nil)
	assert.Equal(t, svg, out)
}

func TestOKSVGRenderZeroDimensionsReturnsEmpty(t *testing.T) {
	out, err := OKSVG{}.Render(`<svg></svg>`, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestOKSVGRenderMalformedSVGErrors(t *testing.T) {
	_, err := OKSVG{}.Render(`not valid xml <<<`, 4, 4)
	assert.Error(t, err)
}

func TestOKSVGRenderValidSVGProducesBase64(t *testing.T) {
	svg := `<svg viewBox="0 0 10 10"><rect x="0" y="0" width="10" height="10" fill="#ff0000"/></svg>`
	out, err := OKSVG{}.Render(svg, 4, 4)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
