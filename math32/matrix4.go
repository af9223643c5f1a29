// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Matrix4 is a 4x4 matrix in column-major order, matching the layout FBX
// (and GPU shader uniforms) expect: m[0..3] is the first column, etc.
type Matrix4 [16]float32

// Identity4 is the 4x4 identity matrix.
var Identity4 = Matrix4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// NewMatrix4 returns a new identity matrix.
func NewMatrix4() *Matrix4 {
	m := Identity4
	return &m
}

// SetIdentity resets the matrix to identity.
func (m *Matrix4) SetIdentity() *Matrix4 {
	*m = Identity4
	return m
}

// SetTranslation sets the translation column, leaving rotation/scale alone.
func (m *Matrix4) SetTranslation(x, y, z float32) *Matrix4 {
	m[12], m[13], m[14] = x, y, z
	return m
}

// SetTransform composes translation, rotation (as a quaternion) and
// scale into this matrix, in T * R * S order — the standard TRS
// composition used for FBX node local transforms.
func (m *Matrix4) SetTransform(pos Vector3, rot Quat, scale Vector3) *Matrix4 {
	x, y, z, w := rot.X, rot.Y, rot.Z, rot.W
	x2, y2, z2 := x+x, y+y, z+z
	xx, xy, xz := x*x2, x*y2, x*z2
	yy, yz, zz := y*y2, y*z2, z*z2
	wx, wy, wz := w*x2, w*y2, w*z2

	m[0] = (1 - (yy + zz)) * scale.X
	m[1] = (xy + wz) * scale.X
	m[2] = (xz - wy) * scale.X
	m[3] = 0

	m[4] = (xy - wz) * scale.Y
	m[5] = (1 - (xx + zz)) * scale.Y
	m[6] = (yz + wx) * scale.Y
	m[7] = 0

	m[8] = (xz + wy) * scale.Z
	m[9] = (yz - wx) * scale.Z
	m[10] = (1 - (xx + yy)) * scale.Z
	m[11] = 0

	m[12] = pos.X
	m[13] = pos.Y
	m[14] = pos.Z
	m[15] = 1
	return m
}

// Decompose extracts the translation, rotation and scale out of this
// matrix, assuming no skew (pure TRS composition).
func (m *Matrix4) Decompose() (pos Vector3, rot Quat, scale Vector3) {
	pos = Vector3{m[12], m[13], m[14]}

	sx := Vector3{m[0], m[1], m[2]}.Length()
	sy := Vector3{m[4], m[5], m[6]}.Length()
	sz := Vector3{m[8], m[9], m[10]}.Length()

	det := m.Determinant3()
	if det < 0 {
		sx = -sx
	}
	scale = Vector3{sx, sy, sz}

	var rm Matrix4
	copy(rm[:], m[:])
	if sx != 0 {
		inv := 1 / sx
		rm[0], rm[1], rm[2] = m[0]*inv, m[1]*inv, m[2]*inv
	}
	if sy != 0 {
		inv := 1 / sy
		rm[4], rm[5], rm[6] = m[4]*inv, m[5]*inv, m[6]*inv
	}
	if sz != 0 {
		inv := 1 / sz
		rm[8], rm[9], rm[10] = m[8]*inv, m[9]*inv, m[10]*inv
	}
	rot = NewQuatFromRotationMatrix(&rm)
	return
}

// Determinant3 returns the determinant of the upper-left 3x3 submatrix
// (the linear part, ignoring translation).
func (m *Matrix4) Determinant3() float32 {
	a, b, c := m[0], m[4], m[8]
	d, e, f := m[1], m[5], m[9]
	g, h, i := m[2], m[6], m[10]
	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}

// MulMatrices sets m = a * b.
func (m *Matrix4) MulMatrices(a, b *Matrix4) *Matrix4 {
	var out Matrix4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[k*4+row] * b[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	*m = out
	return m
}

// Mul returns a * b without mutating either operand.
func (a Matrix4) Mul(b Matrix4) Matrix4 {
	var out Matrix4
	out.MulMatrices(&a, &b)
	return out
}

// Inverse returns the inverse of this matrix; if the matrix is
// singular, the identity is returned.
func (m Matrix4) Inverse() Matrix4 {
	var inv Matrix4
	a := m

	inv[0] = a[5]*a[10]*a[15] - a[5]*a[11]*a[14] - a[9]*a[6]*a[15] + a[9]*a[7]*a[14] + a[13]*a[6]*a[11] - a[13]*a[7]*a[10]
	inv[4] = -a[4]*a[10]*a[15] + a[4]*a[11]*a[14] + a[8]*a[6]*a[15] - a[8]*a[7]*a[14] - a[12]*a[6]*a[11] + a[12]*a[7]*a[10]
	inv[8] = a[4]*a[9]*a[15] - a[4]*a[11]*a[13] - a[8]*a[5]*a[15] + a[8]*a[7]*a[13] + a[12]*a[5]*a[11] - a[12]*a[7]*a[9]
	inv[12] = -a[4]*a[9]*a[14] + a[4]*a[10]*a[13] + a[8]*a[5]*a[14] - a[8]*a[6]*a[13] - a[12]*a[5]*a[10] + a[12]*a[6]*a[9]

	inv[1] = -a[1]*a[10]*a[15] + a[1]*a[11]*a[14] + a[9]*a[2]*a[15] - a[9]*a[3]*a[14] - a[13]*a[2]*a[11] + a[13]*a[3]*a[10]
	inv[5] = a[0]*a[10]*a[15] - a[0]*a[11]*a[14] - a[8]*a[2]*a[15] + a[8]*a[3]*a[14] + a[12]*a[2]*a[11] - a[12]*a[3]*a[10]
	inv[9] = -a[0]*a[9]*a[15] + a[0]*a[11]*a[13] + a[8]*a[1]*a[15] - a[8]*a[3]*a[13] - a[12]*a[1]*a[11] + a[12]*a[3]*a[9]
	inv[13] = a[0]*a[9]*a[14] - a[0]*a[10]*a[13] - a[8]*a[1]*a[14] + a[8]*a[2]*a[13] + a[12]*a[1]*a[10] - a[12]*a[2]*a[9]

	inv[2] = a[1]*a[6]*a[15] - a[1]*a[7]*a[14] - a[5]*a[2]*a[15] + a[5]*a[3]*a[14] + a[13]*a[2]*a[7] - a[13]*a[3]*a[6]
	inv[6] = -a[0]*a[6]*a[15] + a[0]*a[7]*a[14] + a[4]*a[2]*a[15] - a[4]*a[3]*a[14] - a[12]*a[2]*a[7] + a[12]*a[3]*a[6]
	inv[10] = a[0]*a[5]*a[15] - a[0]*a[7]*a[13] - a[4]*a[1]*a[15] + a[4]*a[3]*a[13] + a[12]*a[1]*a[7] - a[12]*a[3]*a[5]
	inv[14] = -a[0]*a[5]*a[14] + a[0]*a[6]*a[13] + a[4]*a[1]*a[14] - a[4]*a[2]*a[13] - a[12]*a[1]*a[6] + a[12]*a[2]*a[5]

	inv[3] = -a[1]*a[6]*a[11] + a[1]*a[7]*a[10] + a[5]*a[2]*a[11] - a[5]*a[3]*a[10] - a[9]*a[2]*a[7] + a[9]*a[3]*a[6]
	inv[7] = a[0]*a[6]*a[11] - a[0]*a[7]*a[10] - a[4]*a[2]*a[11] + a[4]*a[3]*a[10] + a[8]*a[2]*a[7] - a[8]*a[3]*a[6]
	inv[11] = -a[0]*a[5]*a[11] + a[0]*a[7]*a[9] + a[4]*a[1]*a[11] - a[4]*a[3]*a[9] - a[8]*a[1]*a[7] + a[8]*a[3]*a[5]
	inv[15] = a[0]*a[5]*a[10] - a[0]*a[6]*a[9] - a[4]*a[1]*a[10] + a[4]*a[2]*a[9] + a[8]*a[1]*a[6] - a[8]*a[2]*a[5]

	det := a[0]*inv[0] + a[1]*inv[4] + a[2]*inv[8] + a[3]*inv[12]
	if det == 0 {
		return Identity4
	}
	invDet := 1 / det
	for i := range inv {
		inv[i] *= invDet
	}
	return inv
}

// SetPerspective sets this matrix to a perspective projection, given
// a vertical field of view in degrees, aspect ratio, and near/far clip
// planes. Nothing in the export pipeline calls it.
func (m *Matrix4) SetPerspective(fov, aspect, near, far float32) *Matrix4 {
	ymax := near * Tan(DegToRad(fov*0.5))
	ymin := -ymax
	xmin := ymin * aspect
	xmax := ymax * aspect
	return m.SetFrustum(xmin, xmax, ymin, ymax, near, far)
}

// SetFrustum sets this matrix to an off-axis perspective projection.
func (m *Matrix4) SetFrustum(left, right, bottom, top, near, far float32) *Matrix4 {
	x := 2 * near / (right - left)
	y := 2 * near / (top - bottom)
	a := (right + left) / (right - left)
	b := (top + bottom) / (top - bottom)
	c := -(far + near) / (far - near)
	d := -2 * far * near / (far - near)

	*m = Matrix4{
		x, 0, 0, 0,
		0, y, 0, 0,
		a, b, c, -1,
		0, 0, d, 0,
	}
	return m
}

// NewLookAt returns a matrix that orients -Z towards target from eye,
// with up as the rough up direction — the camera-aim convention FBX
// cameras use for their interest point.
func NewLookAt(eye, target, up Vector3) Matrix4 {
	z := eye.Sub(target).Normal()
	if z.IsNil() {
		z = Vector3{0, 0, 1}
	}
	x := up.Cross(z).Normal()
	if x.IsNil() {
		z.X += 0.0001
		x = up.Cross(z).Normal()
	}
	y := z.Cross(x)

	return Matrix4{
		x.X, x.Y, x.Z, 0,
		y.X, y.Y, y.Z, 0,
		z.X, z.Y, z.Z, 0,
		eye.X, eye.Y, eye.Z, 1,
	}
}
