// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbxwriter

import "github.com/bhsingleton/dcc-sub000/math32"

// MappingMode mirrors FBX's FbxLayerElement::EMappingMode: which scene
// entity a layer element's values are attached to.
type MappingMode int32 //enums:enum

const (
	MapByControlPoint MappingMode = iota
	MapByPolygonVertex
	MapByPolygon
	MapByEdge
	MapAllSame
)

var mappingModeNames = []string{"ByControlPoint", "ByPolygonVertex", "ByPolygon", "ByEdge", "AllSame"}

func (m MappingMode) String() string {
	if int(m) < 0 || int(m) >= len(mappingModeNames) {
		return "ByPolygonVertex"
	}
	return mappingModeNames[m]
}

// ReferenceMode mirrors FBX's FbxLayerElement::EReferenceMode.
type ReferenceMode int32 //enums:enum

const (
	ReferenceDirect ReferenceMode = iota
	ReferenceIndexToDirect
)

func (r ReferenceMode) String() string {
	if r == ReferenceIndexToDirect {
		return "IndexToDirect"
	}
	return "Direct"
}

// LayerElement is one FBX mesh layer element: normals, a UV set, a
// color set, or material assignment, each carrying its own
// mapping/reference mode exactly as FbxLayerElementTemplate does.
type LayerElement struct {
	Name      string // UV/color set name; empty for normals and materials
	Mapping   MappingMode
	Reference ReferenceMode

	// Direct values, present when Reference == ReferenceDirect, or the
	// pool indexed by Indices when Reference == ReferenceIndexToDirect.
	Vectors []math32.Vector3 // normals, tangents, binormals
	Colors  []Color          // color sets
	UVs     [][2]float64     // UV sets
	Ints    []int32          // material/smoothing-group IDs

	// Indices is populated only for ReferenceIndexToDirect elements.
	Indices []int32
}

// Mesh is the geometry payload of a [Node] with Attribute == "Mesh",
// built by the eight steps of the geometry writer: control points,
// polygons + edges, materials, normals, smoothing, colors, UVs,
// tangents+binormals.
type Mesh struct {
	// ControlPoints are the mesh's deduplicated vertex positions.
	ControlPoints []math32.Vector3

	// PolygonVertexIndices lists each polygon's control-point indices
	// back to back; the last index of each polygon is bitwise-complemented
	// (^i, ie FBX's -i-1 convention) to mark the polygon boundary, exactly
	// as FbxMesh::SetPolygonVertexCount/AddVertex encodes it.
	PolygonVertexIndices []int32

	// PolygonSizes records how many vertices each polygon has, in the
	// same order as the polygons appear in PolygonVertexIndices; used
	// to drive per-polygon layer elements and edge construction.
	PolygonSizes []int32

	// Edges are the mesh's unique undirected edges, each a pair of
	// control-point indices, built once via BuildMeshEdgeArray after
	// every polygon has been added.
	Edges [][2]int32

	// Materials is the per-polygon material assignment, always
	// IndexToDirect per spec.
	Materials LayerElement

	Normals *LayerElement // nil if normals were not requested

	// Smoothing is either per-edge or per-polygon, never both.
	Smoothing *LayerElement

	Colors []LayerElement // zero or more named color sets

	// UVSets is always populated (at least the default set), per spec.
	UVSets []LayerElement

	Tangents  *LayerElement
	Binormals *LayerElement
}

// NewMesh returns an empty mesh ready for control points to be added.
func NewMesh() *Mesh {
	return &Mesh{Materials: LayerElement{Reference: ReferenceIndexToDirect, Mapping: MapByPolygon}}
}

// AddPolygon appends one polygon's control-point indices, recording
// PolygonSizes alongside. The caller is responsible for calling
// [Mesh.BuildEdgeArray] once after every polygon has been added.
func (m *Mesh) AddPolygon(indices []int32) {
	m.PolygonSizes = append(m.PolygonSizes, int32(len(indices)))
	for i, idx := range indices {
		if i == len(indices)-1 {
			idx = ^idx
		}
		m.PolygonVertexIndices = append(m.PolygonVertexIndices, idx)
	}
}

// BuildEdgeArray derives the mesh's unique edge list from its
// polygons, the Go equivalent of FbxMesh::BuildMeshEdgeArray. It must
// be called exactly once, after every polygon has been added — calling
// it per-polygon (as a naive port might) produces duplicate edges at
// shared boundaries.
func (m *Mesh) BuildEdgeArray() {
	seen := make(map[[2]int32]bool)
	pos := 0
	for _, size := range m.PolygonSizes {
		poly := make([]int32, size)
		for i := int32(0); i < size; i++ {
			v := m.PolygonVertexIndices[pos]
			pos++
			if v < 0 {
				v = ^v
			}
			poly[i] = v
		}
		for i := range poly {
			a, b := poly[i], poly[(i+1)%len(poly)]
			key := [2]int32{a, b}
			if a > b {
				key = [2]int32{b, a}
			}
			if !seen[key] {
				seen[key] = true
				m.Edges = append(m.Edges, key)
			}
		}
	}
}

// PolygonCount returns the number of polygons in the mesh.
func (m *Mesh) PolygonCount() int { return len(m.PolygonSizes) }
