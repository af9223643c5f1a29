// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbxserializer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bhsingleton/dcc-sub000/fbxnode"
	"github.com/bhsingleton/dcc-sub000/fbxscene"
	"github.com/bhsingleton/dcc-sub000/fbxwriter"
	"github.com/bhsingleton/dcc-sub000/math32"
)

func TestWriteTransformConvertsRadiansToDegrees(t *testing.T) {
	q := math32.NewQuatFromEuler(math32.Euler{X: 0, Y: math32.Pi / 2, Z: 0}, math32.XYZ)
	m := math32.Identity4
	m.SetTransform(math32.Vector3{X: 1, Y: 2, Z: 3}, q, math32.Vector3{X: 2, Y: 2, Z: 2})

	info := fbxscene.NodeInfo{LocalMatrix: m, RotationOrder: math32.XYZ}
	sh := &fbxnode.Shell{FbxNode: fbxwriter.NewNode("joint", "LimbNode")}

	writeTransform(sh, info)

	props := sh.FbxNode.Properties
	assert.Equal(t, fbxwriter.InheritRSrs, props.InheritType)
	assert.InDelta(t, float32(1), props.Translation.X, 1e-4)
	assert.InDelta(t, float32(2), props.Translation.Y, 1e-4)
	assert.InDelta(t, float32(3), props.Translation.Z, 1e-4)
	assert.InDelta(t, float32(90), props.Rotation.Y, 1e-2)
	assert.InDelta(t, float32(2), props.Scaling.X, 1e-4)
}

func TestWriteTransformIdentityHasZeroRotation(t *testing.T) {
	info := fbxscene.NodeInfo{LocalMatrix: math32.Identity4, RotationOrder: math32.XYZ}
	sh := &fbxnode.Shell{FbxNode: fbxwriter.NewNode("joint", "LimbNode")}

	writeTransform(sh, info)

	props := sh.FbxNode.Properties
	assert.InDelta(t, float32(0), props.Rotation.X, 1e-4)
	assert.InDelta(t, float32(0), props.Rotation.Y, 1e-4)
	assert.InDelta(t, float32(0), props.Rotation.Z, 1e-4)
	assert.InDelta(t, float32(1), props.Scaling.X, 1e-4)
}

func TestDegreesVecMatchesRadToDeg(t *testing.T) {
	e := math32.Euler{X: math32.Pi, Y: 0, Z: math32.Pi / 2}
	got := degreesVec(e)
	assert.InDelta(t, float32(180), got.X, 1e-2)
	assert.InDelta(t, float32(0), got.Y, 1e-4)
	assert.InDelta(t, float32(90), got.Z, 1e-2)
}
