// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitPaletteBasic(t *testing.T) {
	assert.Equal(t, []string{"#ff0000", "#00ff00", "#0000ff"}, splitPalette("#ff0000,#00ff00,#0000ff"))
}

func TestSplitPaletteEmptyString(t *testing.T) {
	assert.Nil(t, splitPalette(""))
}

func TestSplitPaletteIgnoresEmptyEntries(t *testing.T) {
	assert.Equal(t, []string{"#ff0000", "#00ff00"}, splitPalette("#ff0000,,#00ff00,"))
}

func TestSplitPaletteSingleEntry(t *testing.T) {
	assert.Equal(t, []string{"#abcdef"}, splitPalette("#abcdef"))
}
