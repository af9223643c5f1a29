// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Vector4 is a homogeneous 4D vector, used for tangents (W carries
// bitangent handedness) and raw homogeneous coordinates.
type Vector4 struct {
	X, Y, Z, W float32
}

func Vec4(x, y, z, w float32) Vector4 { return Vector4{x, y, z, w} }

func Vector4FromVector3(v Vector3, w float32) Vector4 {
	return Vector4{v.X, v.Y, v.Z, w}
}
