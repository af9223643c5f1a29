// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbxscene

import "github.com/bhsingleton/dcc-sub000/math32"

// Mesh is the per-mesh query surface the geometry writer drives. Every
// face-vertex-indexed accessor is in the same flattened order as
// [Mesh.FaceVertexIndices]: walk faces, and within each face walk its
// vertices, to align normals/colors/UVs/tangents with their polygon.
type Mesh interface {
	VertexCount() int
	VertexPosition(i int) math32.Vector3

	// FaceVertexIndices returns, for each face, the control-point
	// indices of its vertices in winding order.
	FaceVertexIndices() [][]int32

	// FaceMaterialIndex returns the assigned material slot per face,
	// indexing into MaterialAssignments.
	FaceMaterialIndex(face int) int
	MaterialAssignments() []MaterialAssignment

	// FaceVertexNormal is lazy: callers invoke it once per face-vertex
	// in FaceVertexIndices order, rather than through an eager slice.
	HasNormals() bool
	FaceVertexNormal(face, vertInFace int) math32.Vector3

	// HasEdgeSmoothings/EdgeSmoothing report per-edge booleans, present
	// only when the source mesh exposes that representation.
	HasEdgeSmoothings() bool
	EdgeSmoothing(edgeIndex int) bool

	// HasFaceSmoothingGroups/FaceSmoothingGroup are the per-polygon
	// alternative; a mesh exposes at most one of the two forms.
	HasFaceSmoothingGroups() bool
	FaceSmoothingGroup(face int) int32

	ColorSetNames() []string
	// FaceVertexColor returns the RGBA color for a named set at a given
	// face-vertex position.
	FaceVertexColor(set string, face, vertInFace int) [4]float64

	UVSetNames() []string
	FaceVertexUV(set string, face, vertInFace int) [2]float64

	HasTangents(set string) bool
	FaceVertexTangent(set string, face, vertInFace int) math32.Vector3
	FaceVertexBinormal(set string, face, vertInFace int) math32.Vector3
}
