// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fbxscene declares the read-only scene adapter contract the
// rest of the pipeline is built against, plus [Memory], an in-memory
// reference implementation that plays the role a live DCC scene would
// play in production. Nothing in this package writes FBX; it only
// answers questions about a host scene graph.
package fbxscene

import "github.com/bhsingleton/dcc-sub000/math32"

// Handle stably identifies one scene node for the lifetime of a single
// export. Adapters are free to back it with whatever the host uses
// internally (a DAG path hash, a GUID, an integer node id) as long as
// it is stable across the export's duration. Never persisted.
type Handle uint64

// Kind classifies what a node is, driving which geometry block (if
// any) the allocator attaches to its shell.
type Kind int32 //enums:enum

const (
	KindTransform Kind = iota
	KindJoint
	KindMesh
	KindCamera
)

var kindNames = []string{"Transform", "Joint", "Mesh", "Camera"}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "Transform"
	}
	return kindNames[k]
}

// NodeInfo is the per-node query result: everything the allocator and
// transform writer need without holding a live reference back into
// the scene.
type NodeInfo struct {
	Handle        Handle
	Name          string
	ParentHandle  Handle
	HasParent     bool
	Kind          Kind
	LocalMatrix   math32.Matrix4
	BindMatrix    math32.Matrix4
	RotationOrder math32.RotationOrder
}

// EnumMode selects how node enumeration resolves its object list,
// mirroring an ExportSet object-set's includeType/excludeType.
type EnumMode int32 //enums:enum

const (
	EnumNodes EnumMode = iota
	EnumLayers
	EnumSelectionSets
	EnumRegex
)

var enumModeNames = []string{"Nodes", "Layers", "SelectionSets", "Regex"}

func (m EnumMode) String() string {
	if int(m) < 0 || int(m) >= len(enumModeNames) {
		return "Nodes"
	}
	return enumModeNames[m]
}

// MaterialAssignment pairs a mesh-assigned material with its (possibly
// empty) diffuse texture path, as the source scene records it.
type MaterialAssignment struct {
	MaterialHandle Handle
	MaterialName   string
	DiffuseColor   [4]float64
	TexturePath    string
}

// CameraInfo is the subset of camera attributes the transform writer
// copies onto a KindCamera node's attribute block.
type CameraInfo struct {
	FieldOfView float64
	NearPlane   float64
	FarPlane    float64
	FilmWidth   float64
	FilmHeight  float64
}

// Scene is the abstract read-only view of a host scene graph that the
// gatherer, allocator, and serializer are built against. A missing
// node or unsupported attribute is a recoverable condition — adapters
// return an error from the specific accessor rather than panicking,
// and callers log and skip the affected entity.
type Scene interface {
	// NodesByName resolves name patterns (post-namespace short names)
	// to handles, expanding descendants when includeChildren is set.
	NodesByName(namespace string, patterns []string, includeChildren bool) []Handle
	// NodesByLayer resolves layer membership to handles.
	NodesByLayer(namespace string, layers []string, includeChildren bool) []Handle
	// NodesBySelectionSet resolves named selection-set membership.
	NodesBySelectionSet(namespace string, sets []string, includeChildren bool) []Handle
	// NodesByRegex matches patterns against every node's short name.
	NodesByRegex(namespace string, patterns []string, includeChildren bool) []Handle

	// AllNodeNames returns every node's post-namespace short name, used
	// only for "did you mean" suggestions when a pattern yields nothing.
	AllNodeNames() []string

	// Node returns the per-node query result for h.
	Node(h Handle) (NodeInfo, error)

	// Mesh returns the mesh adapter for a KindMesh node.
	Mesh(h Handle) (Mesh, error)
	// Skin returns the skin adapter for a skinned mesh node, if any.
	Skin(h Handle) (Skin, bool, error)
	// Camera returns the camera attributes for a KindCamera node.
	Camera(h Handle) (CameraInfo, error)

	// CurrentTime and SetTime drive the baker's sampling loop.
	CurrentTime() float64
	SetTime(t float64)

	// SuspendViewport and ResumeViewport bracket the bake loop.
	SuspendViewport()
	ResumeViewport()

	// UpAxis reports the host's up axis.
	UpAxis() math32.Axis
	// LinearUnit reports the host's working unit name (eg "cm", "m",
	// "in"); unsupported units are coerced to centimeters by the
	// Writer, not here.
	LinearUnit() string

	// TimelineRange reports the host's current start/end frame, used
	// when an export range sets UseTimeline.
	TimelineRange() (start, end float64)
}
