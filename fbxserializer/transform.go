// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fbxserializer is the FbxSerializer orchestrator: transform,
// geometry, skin, and animation composition, and the Serialize entry
// points that drive the whole Gather -> Allocate -> Compose -> Bake ->
// Emit pipeline.
package fbxserializer

import (
	"github.com/bhsingleton/dcc-sub000/fbxnode"
	"github.com/bhsingleton/dcc-sub000/fbxscene"
	"github.com/bhsingleton/dcc-sub000/fbxwriter"
	"github.com/bhsingleton/dcc-sub000/math32"
)

// writeTransform copies a source node's local transform onto sh, per
// the fixed "RSrs" inherit rule: rotation and scale are always
// inherited from the parent, never compensated. Pivots, pre-rotation,
// and post-rotation are zeroed; shear is not copied — Decompose
// itself discards it.
func writeTransform(sh *fbxnode.Shell, info fbxscene.NodeInfo) {
	pos, rot, scale := info.LocalMatrix.Decompose()
	euler := rot.ToEuler(info.RotationOrder)

	t := &sh.FbxNode.Properties
	t.InheritType = fbxwriter.InheritRSrs
	t.RotationOrder = info.RotationOrder
	t.Translation = pos
	t.Rotation = degreesVec(euler)
	t.Scaling = scale
}

// writeCameraAttribute copies a KindCamera node's field-of-view,
// clip-plane and film-size properties onto sh's node attribute. Called in addition
// to writeTransform, never instead of it — a camera shell still needs
// its TRS.
func writeCameraAttribute(sh *fbxnode.Shell, cam fbxscene.CameraInfo) {
	sh.FbxNode.Camera = &fbxwriter.Camera{
		FieldOfView: cam.FieldOfView,
		NearPlane:   cam.NearPlane,
		FarPlane:    cam.FarPlane,
		FilmWidth:   cam.FilmWidth,
		FilmHeight:  cam.FilmHeight,
	}
}

func radToDeg(r float32) float32 { return math32.RadToDeg(r) }

func degreesVec(e math32.Euler) math32.Vector3 {
	return math32.Vector3{X: radToDeg(e.X), Y: radToDeg(e.Y), Z: radToDeg(e.Z)}
}
