// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDegRadRoundTrip(t *testing.T) {
	for _, deg := range []float32{0, 30, 90, 180, 270, -45} {
		rad := DegToRad(deg)
		assert.InDelta(t, deg, RadToDeg(rad), 1e-3)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(0), Clamp(-1, 0, 10))
	assert.Equal(t, float32(10), Clamp(11, 0, 10))
	assert.Equal(t, float32(5), Clamp(5, 0, 10))
}

func TestAxisString(t *testing.T) {
	assert.Equal(t, "Y", AxisY.String())
	assert.Equal(t, "Z", AxisZ.String())
	assert.Equal(t, "Y", Axis(99).String())
}

func TestVector3Ops(t *testing.T) {
	a := Vec3(1, 2, 3)
	b := Vec3(4, 5, 6)
	assert.Equal(t, Vec3(5, 7, 9), a.Add(b))
	assert.Equal(t, Vec3(-3, -3, -3), a.Sub(b))
	assert.InDelta(t, float32(32), a.Dot(b), 1e-6)
	assert.Equal(t, Vec3(-3, 6, -3), a.Cross(b))
}

func TestVector3Normal(t *testing.T) {
	v := Vec3(3, 0, 4)
	n := v.Normal()
	assert.InDelta(t, float32(1), n.Length(), 1e-5)
}

func TestQuatEulerRoundTrip(t *testing.T) {
	e := Euler{X: DegToRad(10), Y: DegToRad(20), Z: DegToRad(30)}
	q := NewQuatFromEuler(e, XYZ)
	back := q.ToEuler(XYZ)
	assert.InDelta(t, e.X, back.X, 1e-3)
	assert.InDelta(t, e.Y, back.Y, 1e-3)
	assert.InDelta(t, e.Z, back.Z, 1e-3)
}

func TestQuatIdentityToMatrix4(t *testing.T) {
	q := NewQuat()
	m := q.ToMatrix4()
	ident := NewMatrix4().SetIdentity()
	for i := 0; i < 16; i++ {
		assert.InDelta(t, ident[i], m[i], 1e-6)
	}
}

func TestMatrix4DecomposeRoundTrip(t *testing.T) {
	pos := Vec3(1, 2, 3)
	rot := NewQuatAxisAngle(Vec3(0, 1, 0), DegToRad(45))
	scale := Vec3(1, 1, 1)

	m := NewMatrix4().SetTransform(pos, rot, scale)
	gotPos, gotRot, gotScale := m.Decompose()

	assert.InDelta(t, pos.X, gotPos.X, 1e-4)
	assert.InDelta(t, pos.Y, gotPos.Y, 1e-4)
	assert.InDelta(t, pos.Z, gotPos.Z, 1e-4)
	assert.InDelta(t, scale.X, gotScale.X, 1e-4)
	assert.InDelta(t, rot.Length(), gotRot.Length(), 1e-3)
}
