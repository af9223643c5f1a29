// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Vector3 is a 3D vector/point with X, Y and Z float32 components.
type Vector3 struct {
	X, Y, Z float32
}

// Vec3 returns a new [Vector3] from three scalars.
func Vec3(x, y, z float32) Vector3 { return Vector3{x, y, z} }

// Vector3Scalar returns a new [Vector3] with all components set to s.
func Vector3Scalar(s float32) Vector3 { return Vector3{s, s, s} }

// Vector3FromVector4 drops the W component of a [Vector4].
func Vector3FromVector4(v Vector4) Vector3 { return Vector3{v.X, v.Y, v.Z} }

// Vec3i is an integer point in 3D space, used for grid/lattice indices.
type Vec3i struct {
	X, Y, Z int32
}

func NewVec3i(x, y, z int32) Vec3i { return Vec3i{x, y, z} }

func (a Vector3) Set(x, y, z float32) Vector3 { return Vector3{x, y, z} }

func (a Vector3) SetScalar(s float32) Vector3 { return Vector3{s, s, s} }

func (a Vector3) SetFromVector3i(v Vec3i) Vector3 {
	return Vector3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// SetDim sets the given indexed dimension (0=X, 1=Y, 2=Z) to value.
func (a Vector3) SetDim(dim int, value float32) Vector3 {
	switch dim {
	case 0:
		a.X = value
	case 1:
		a.Y = value
	case 2:
		a.Z = value
	}
	return a
}

// Dim returns the given indexed dimension (0=X, 1=Y, 2=Z).
func (a Vector3) Dim(dim int) float32 {
	switch dim {
	case 0:
		return a.X
	case 1:
		return a.Y
	case 2:
		return a.Z
	}
	return 0
}

func (a Vector3) Add(b Vector3) Vector3 {
	return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func (a Vector3) Sub(b Vector3) Vector3 {
	return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func (a Vector3) Mul(b Vector3) Vector3 {
	return Vector3{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

func (a Vector3) MulScalar(s float32) Vector3 {
	return Vector3{a.X * s, a.Y * s, a.Z * s}
}

func (a Vector3) Negate() Vector3 { return Vector3{-a.X, -a.Y, -a.Z} }

func (a Vector3) Dot(b Vector3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func (a Vector3) Cross(b Vector3) Vector3 {
	return Vector3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (a Vector3) LengthSquared() float32 { return a.Dot(a) }

func (a Vector3) Length() float32 { return Sqrt(a.LengthSquared()) }

func (a Vector3) Normal() Vector3 {
	l := a.Length()
	if l == 0 {
		return a
	}
	return a.MulScalar(1 / l)
}

// IsNil reports whether all three components are exactly zero.
func (a Vector3) IsNil() bool { return a.X == 0 && a.Y == 0 && a.Z == 0 }

// MulMatrix4 transforms this point by the given 4x4 matrix
// (implicit homogeneous W=1, perspective divide applied).
func (a Vector3) MulMatrix4(m *Matrix4) Vector3 {
	x, y, z := a.X, a.Y, a.Z
	w := m[3]*x + m[7]*y + m[11]*z + m[15]
	if w == 0 {
		w = 1
	}
	return Vector3{
		(m[0]*x + m[4]*y + m[8]*z + m[12]) / w,
		(m[1]*x + m[5]*y + m[9]*z + m[13]) / w,
		(m[2]*x + m[6]*y + m[10]*z + m[14]) / w,
	}
}

// MulQuat rotates this vector by the given unit quaternion.
func (a Vector3) MulQuat(q Quat) Vector3 {
	qv := Vector3{q.X, q.Y, q.Z}
	uv := qv.Cross(a)
	uuv := qv.Cross(uv)
	return a.Add(uv.MulScalar(2 * q.W)).Add(uuv.MulScalar(2))
}
