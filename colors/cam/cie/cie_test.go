// Copyright (c) 2021, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSRGBToLabIdentity(t *testing.T) {
	lab1 := SRGBToLab(0.7, 0.2, 0.4)
	lab2 := SRGBToLab(0.7, 0.2, 0.4)
	assert.InDelta(t, 0, DeltaE94(lab1, lab2), 1e-6)
}

func TestDeltaE94Symmetric(t *testing.T) {
	a := SRGBToLab(1, 0, 0)
	b := SRGBToLab(0, 0, 1)
	assert.InDelta(t, DeltaE94(a, b), DeltaE94(b, a), 1e-6)
	assert.Greater(t, DeltaE94(a, b), 0.0)
}

func TestBlackWhite(t *testing.T) {
	black := SRGBToLab(0, 0, 0)
	white := SRGBToLab(1, 1, 1)
	assert.InDelta(t, 0, black.L, 1e-6)
	assert.InDelta(t, 100, white.L, 1e-4)
}
