// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Quat is a unit quaternion rotation, X/Y/Z/W (vector, scalar) order.
type Quat struct {
	X, Y, Z, W float32
}

// NewQuat returns the identity quaternion (no rotation).
func NewQuat() Quat { return Quat{0, 0, 0, 1} }

// NewQuatAxisAngle returns the quaternion that rotates by angle
// radians around axis (which must be a unit vector).
func NewQuatAxisAngle(axis Vector3, angle float32) Quat {
	half := angle * 0.5
	s := Sin(half)
	return Quat{axis.X * s, axis.Y * s, axis.Z * s, Cos(half)}
}

// NewQuatFromRotationMatrix extracts a unit quaternion from the
// upper-left 3x3 (assumed pure-rotation, no scale) block of m.
func NewQuatFromRotationMatrix(m *Matrix4) Quat {
	m00, m10, m20 := m[0], m[1], m[2]
	m01, m11, m21 := m[4], m[5], m[6]
	m02, m12, m22 := m[8], m[9], m[10]
	trace := m00 + m11 + m22

	var q Quat
	switch {
	case trace > 0:
		s := 0.5 / Sqrt(trace+1)
		q.W = 0.25 / s
		q.X = (m21 - m12) * s
		q.Y = (m02 - m20) * s
		q.Z = (m10 - m01) * s
	case m00 > m11 && m00 > m22:
		s := 2 * Sqrt(1+m00-m11-m22)
		q.W = (m21 - m12) / s
		q.X = 0.25 * s
		q.Y = (m01 + m10) / s
		q.Z = (m02 + m20) / s
	case m11 > m22:
		s := 2 * Sqrt(1+m11-m00-m22)
		q.W = (m02 - m20) / s
		q.X = (m01 + m10) / s
		q.Y = 0.25 * s
		q.Z = (m12 + m21) / s
	default:
		s := 2 * Sqrt(1+m22-m00-m11)
		q.W = (m10 - m01) / s
		q.X = (m02 + m20) / s
		q.Y = (m12 + m21) / s
		q.Z = 0.25 * s
	}
	return q.Normal()
}

func (q Quat) Length() float32 {
	return Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

func (q Quat) Normal() Quat {
	l := q.Length()
	if l == 0 {
		return NewQuat()
	}
	inv := 1 / l
	return Quat{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}
}

// Mul returns the Hamilton product q*r: the composed rotation that
// applies r first, then q.
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

func (q Quat) Inverse() Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

// ToMatrix4 returns the rotation matrix equivalent to q.
func (q Quat) ToMatrix4() Matrix4 {
	m := Identity4
	m.SetTransform(Vector3{}, q, Vector3{1, 1, 1})
	return m
}

// RotationOrder enumerates the Euler axis orderings FBX supports on
// a node's RotationOrder property.
type RotationOrder int32 //enums:enum

const (
	XYZ RotationOrder = iota
	XZY
	YZX
	YXZ
	ZXY
	ZYX
	SphericXYZ
)

var rotationOrderNames = []string{"XYZ", "XZY", "YZX", "YXZ", "ZXY", "ZYX", "SphericXYZ"}

func (r RotationOrder) String() string {
	if int(r) < 0 || int(r) >= len(rotationOrderNames) {
		return "XYZ"
	}
	return rotationOrderNames[r]
}

// Euler is an Euler angle triple, in radians, to be applied in the
// order given by a [RotationOrder].
type Euler struct {
	X, Y, Z float32
}

// NewQuatFromEuler builds a quaternion from Euler angles (radians)
// applied in the given rotation order, matching the order FBX bakes
// into FbxEuler::EOrder.
func NewQuatFromEuler(e Euler, order RotationOrder) Quat {
	qx := NewQuatAxisAngle(Vector3{1, 0, 0}, e.X)
	qy := NewQuatAxisAngle(Vector3{0, 1, 0}, e.Y)
	qz := NewQuatAxisAngle(Vector3{0, 0, 1}, e.Z)

	switch order {
	case XYZ:
		return qx.Mul(qy).Mul(qz)
	case XZY:
		return qx.Mul(qz).Mul(qy)
	case YZX:
		return qy.Mul(qz).Mul(qx)
	case YXZ:
		return qy.Mul(qx).Mul(qz)
	case ZXY:
		return qz.Mul(qx).Mul(qy)
	case ZYX, SphericXYZ:
		return qz.Mul(qy).Mul(qx)
	default:
		return qx.Mul(qy).Mul(qz)
	}
}

// ToEuler decomposes q into Euler angles (radians) for the given
// rotation order. SphericXYZ falls back to the ZYX decomposition,
// which is the closest of the orderings FBX itself ships an
// implementation for.
func (q Quat) ToEuler(order RotationOrder) Euler {
	m := q.ToMatrix4()
	m00, m10, m20 := m[0], m[1], m[2]
	m01, m11, m21 := m[4], m[5], m[6]
	m02, m12, m22 := m[8], m[9], m[10]

	clampAsin := func(v float32) float32 { return Asin(Clamp(v, -1, 1)) }

	switch order {
	case XZY:
		e := Euler{}
		e.Z = clampAsin(-m01)
		if Abs(m01) < 0.9999999 {
			e.X = Atan2(m21, m11)
			e.Y = Atan2(m02, m00)
		} else {
			e.X = Atan2(-m12, m22)
			e.Y = 0
		}
		return e
	case YXZ:
		e := Euler{}
		e.X = clampAsin(-m21)
		if Abs(m21) < 0.9999999 {
			e.Y = Atan2(m20, m22)
			e.Z = Atan2(m01, m11)
		} else {
			e.Y = Atan2(-m02, m00)
			e.Z = 0
		}
		return e
	case ZXY:
		e := Euler{}
		e.X = clampAsin(m12)
		if Abs(m12) < 0.9999999 {
			e.Y = Atan2(-m02, m22)
			e.Z = Atan2(-m10, m11)
		} else {
			e.Y = 0
			e.Z = Atan2(m01, m00)
		}
		return e
	case YZX:
		e := Euler{}
		e.Z = clampAsin(m10)
		if Abs(m10) < 0.9999999 {
			e.X = Atan2(-m12, m11)
			e.Y = Atan2(-m20, m00)
		} else {
			e.X = 0
			e.Y = Atan2(m02, m22)
		}
		return e
	case ZYX, SphericXYZ:
		e := Euler{}
		e.Y = clampAsin(-m20)
		if Abs(m20) < 0.9999999 {
			e.X = Atan2(m21, m22)
			e.Z = Atan2(m10, m00)
		} else {
			e.X = Atan2(-m12, m11)
			e.Z = 0
		}
		return e
	default: // XYZ
		e := Euler{}
		e.Y = clampAsin(m02)
		if Abs(m02) < 0.9999999 {
			e.X = Atan2(-m12, m22)
			e.Z = Atan2(-m01, m00)
		} else {
			e.X = 0
			e.Z = Atan2(m10, m11)
		}
		return e
	}
}
