// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2AddSub(t *testing.T) {
	a := Vec2(1, 2)
	b := Vec2(3, 4)
	assert.Equal(t, Vec2(4, 6), a.Add(b))
	assert.Equal(t, Vec2(-2, -2), a.Sub(b))
}

func TestVector2MulScalar(t *testing.T) {
	assert.Equal(t, Vec2(2, 4), Vec2(1, 2).MulScalar(2))
}

func TestVector2Length(t *testing.T) {
	assert.InDelta(t, 5.0, Vec2(3, 4).Length(), 1e-9)
}

func TestDegRadRoundTrip(t *testing.T) {
	assert.InDelta(t, 180.0, RadToDeg(DegToRad(180)), 1e-9)
}
