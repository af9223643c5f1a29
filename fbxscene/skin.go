// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbxscene

import "github.com/bhsingleton/dcc-sub000/math32"

// Skin is the per-skin query surface the skin writer drives.
type Skin interface {
	// Influences returns the ordered influenceId -> node handle map,
	// in the order the source skin deformer records them.
	Influences() []int
	InfluenceHandle(influenceID int) Handle

	// InfluenceGlobalMatrix returns the influence's current global
	// transform, evaluated from the source scene at the current time.
	// The skin writer takes each cluster's transform-link from here; the
	// FBX document's node hierarchy is not evaluated for it.
	InfluenceGlobalMatrix(influenceID int) math32.Matrix4

	// VertexWeights returns, for vertexIndex, the influenceId -> weight
	// map exactly as the source stores it. Weights are not normalized.
	VertexWeights(vertexIndex int) map[int]float64

	BindPoseName() string
}
