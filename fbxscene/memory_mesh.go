// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbxscene

import "github.com/bhsingleton/dcc-sub000/math32"

// MemoryMesh is the fixture-backed [Mesh] implementation used by
// [Memory]. Every face-vertex table is keyed the same way the real
// interface promises: outer index is face, inner index is the
// vertex's position within that face's winding order.
type MemoryMesh struct {
	Positions []math32.Vector3
	Faces     [][]int32

	Materials    []MaterialAssignment
	FaceMaterial []int

	Normals [][]math32.Vector3 // per face, per face-vertex

	EdgeSmoothings []bool
	FaceSmoothings []int32

	ColorSets map[string][][][4]float64 // name -> per-face -> per-face-vertex
	UVSets    map[string][][][2]float64

	Tangents  map[string][][]math32.Vector3
	Binormals map[string][][]math32.Vector3
}

func (m *MemoryMesh) VertexCount() int { return len(m.Positions) }

func (m *MemoryMesh) VertexPosition(i int) math32.Vector3 { return m.Positions[i] }

func (m *MemoryMesh) FaceVertexIndices() [][]int32 { return m.Faces }

func (m *MemoryMesh) FaceMaterialIndex(face int) int {
	if face < len(m.FaceMaterial) {
		return m.FaceMaterial[face]
	}
	return 0
}

func (m *MemoryMesh) MaterialAssignments() []MaterialAssignment { return m.Materials }

func (m *MemoryMesh) HasNormals() bool { return m.Normals != nil }

func (m *MemoryMesh) FaceVertexNormal(face, vertInFace int) math32.Vector3 {
	return m.Normals[face][vertInFace]
}

func (m *MemoryMesh) HasEdgeSmoothings() bool { return m.EdgeSmoothings != nil }

func (m *MemoryMesh) EdgeSmoothing(edgeIndex int) bool { return m.EdgeSmoothings[edgeIndex] }

func (m *MemoryMesh) HasFaceSmoothingGroups() bool { return m.FaceSmoothings != nil }

func (m *MemoryMesh) FaceSmoothingGroup(face int) int32 { return m.FaceSmoothings[face] }

func (m *MemoryMesh) ColorSetNames() []string {
	names := make([]string, 0, len(m.ColorSets))
	for name := range m.ColorSets {
		names = append(names, name)
	}
	return names
}

func (m *MemoryMesh) FaceVertexColor(set string, face, vertInFace int) [4]float64 {
	return m.ColorSets[set][face][vertInFace]
}

func (m *MemoryMesh) UVSetNames() []string {
	names := make([]string, 0, len(m.UVSets))
	for name := range m.UVSets {
		names = append(names, name)
	}
	return names
}

func (m *MemoryMesh) FaceVertexUV(set string, face, vertInFace int) [2]float64 {
	return m.UVSets[set][face][vertInFace]
}

func (m *MemoryMesh) HasTangents(set string) bool {
	_, ok := m.Tangents[set]
	return ok
}

func (m *MemoryMesh) FaceVertexTangent(set string, face, vertInFace int) math32.Vector3 {
	return m.Tangents[set][face][vertInFace]
}

func (m *MemoryMesh) FaceVertexBinormal(set string, face, vertInFace int) math32.Vector3 {
	return m.Binormals[set][face][vertInFace]
}
