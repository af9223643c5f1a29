// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbxscene

import "github.com/bhsingleton/dcc-sub000/math32"

// MemorySkin is the fixture-backed [Skin] implementation.
type MemorySkin struct {
	InfluenceOrder []int
	InfluenceNodes map[int]Handle
	GlobalMatrices map[int]math32.Matrix4
	Weights        map[int]map[int]float64
	BindPose       string
}

func (s *MemorySkin) Influences() []int { return s.InfluenceOrder }

func (s *MemorySkin) InfluenceHandle(influenceID int) Handle {
	return s.InfluenceNodes[influenceID]
}

func (s *MemorySkin) InfluenceGlobalMatrix(influenceID int) math32.Matrix4 {
	return s.GlobalMatrices[influenceID]
}

func (s *MemorySkin) VertexWeights(vertexIndex int) map[int]float64 {
	return s.Weights[vertexIndex]
}

func (s *MemorySkin) BindPoseName() string { return s.BindPose }
