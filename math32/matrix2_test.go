// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const standardTol = 1.0e-6

func tolAssertEqualVector(t *testing.T, vt, va Vector2, tols ...float64) {
	tol := standardTol
	if len(tols) == 1 {
		tol = tols[0]
	}
	assert.InDelta(t, vt.X, va.X, tol)
	assert.InDelta(t, vt.Y, va.Y, tol)
}

func TestMatrix2(t *testing.T) {
	v0 := Vec2(0, 0)
	vx := Vec2(1, 0)
	vy := Vec2(0, 1)
	vxy := Vec2(1, 1)

	rot90 := DegToRad(90)

	assert.Equal(t, vx, Identity2().MulPoint(vx))
	assert.Equal(t, vy, Identity2().MulPoint(vy))
	assert.Equal(t, vxy, Identity2().MulPoint(vxy))

	assert.Equal(t, vxy, Translate2D(1, 1).MulPoint(v0))
	assert.Equal(t, vxy.MulScalar(2), Scale2D(2, 2).MulPoint(vxy))

	tolAssertEqualVector(t, vy, Rotate2D(rot90).MulPoint(vx))
	tolAssertEqualVector(t, vx, Rotate2D(-rot90).MulPoint(vy))

	// multiplication order is *reverse* of "logical" order: the
	// rightmost-written primitive applies first.
	// 1,0 -> scale(2) = 2,0 -> rotate 90 = 0,2 -> trans 1,1 -> 1,3
	got := Translate2D(1, 1).Mul(Rotate2D(rot90)).Mul(Scale2D(2, 2)).MulPoint(vx)
	tolAssertEqualVector(t, Vec2(1, 3), got)
}

func TestMatrix2Inverse(t *testing.T) {
	m := Translate2D(3, 4).Mul(Rotate2D(DegToRad(37))).Mul(Scale2D(2, 0.5))
	p := Vec2(5, -2)
	roundTrip := m.Inverse().MulPoint(m.MulPoint(p))
	tolAssertEqualVector(t, p, roundTrip)
}

func TestMatrix2SetString(t *testing.T) {
	tests := []struct {
		str     string
		wantErr bool
		want    Matrix2
	}{
		{
			str:     "none",
			wantErr: false,
			want:    Identity2(),
		},
		{
			str:     "matrix(1, 2, 3, 4, 5, 6)",
			wantErr: false,
			want:    Matrix2{XX: 1, YX: 2, XY: 3, YY: 4, X0: 5, Y0: 6},
		},
		{
			str:     "translate(1, 2)",
			wantErr: false,
			want:    Matrix2{XX: 1, YX: 0, XY: 0, YY: 1, X0: 1, Y0: 2},
		},
		{
			str:     "invalid(1, 2)",
			wantErr: true,
			want:    Identity2(),
		},
	}

	for _, tt := range tests {
		a := &Matrix2{}
		err := a.SetString(tt.str)
		if tt.wantErr {
			assert.Error(t, err, tt.str)
		} else {
			assert.NoError(t, err, tt.str)
		}
		assert.Equal(t, tt.want, *a, tt.str)
	}
}

func TestMatrix2SetStringMultiple(t *testing.T) {
	var a Matrix2
	assert.NoError(t, a.SetString("translate(10,20) rotate(90)"))
	// translate applies first (left-most), then rotate.
	want := Translate2D(10, 20).MulPoint(Vec2(1, 0))
	want = Rotate2D(DegToRad(90)).MulPoint(want)
	got := a.MulPoint(Vec2(1, 0))
	tolAssertEqualVector(t, want, got)
}

func TestMatrix2RotateAboutPoint(t *testing.T) {
	var a Matrix2
	assert.NoError(t, a.SetString("rotate(90,5,5)"))
	got := a.MulPoint(Vec2(5, 0))
	tolAssertEqualVector(t, Vec2(10, 5), got)
}

func TestMatrix2String(t *testing.T) {
	assert.Equal(t, "none", Identity2().String())
	assert.Equal(t, "translate(1,2)", Matrix2{XX: 1, YY: 1, X0: 1, Y0: 2}.String())
	assert.Equal(t, "scale(2,2)", Matrix2{XX: 2, YY: 2}.String())
}
