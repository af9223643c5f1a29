// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fbxwriter is the FBX document model and encoder: the
// in-memory scene/object graph a [github.com/bhsingleton/dcc-sub000/fbxserializer]
// orchestrator populates, plus a binary and ASCII encoder for it.
//
// No third-party Go module implements the FBX file format (binary or
// ASCII), so this package is necessarily hand-rolled against the
// format observed in the Python original this module was distilled
// from; see DESIGN.md for why no dependency could serve this piece.
package fbxwriter

import "github.com/bhsingleton/dcc-sub000/math32"

// Node is one entry in the FBX scene hierarchy — the Go analogue of
// an FbxNode. It is the type [fbxnode.Shell] wraps: the allocator
// creates an empty Node per gathered scene object, then the
// transform/geometry/skin writers fill in its fields before Emit.
type Node struct {
	// Name is the node's FBX object name, eg "pCube1".
	Name string

	// Attribute is the node-attribute type name FBX expects:
	// "Null", "Mesh", "LimbNode", "Skeleton", "Camera", "Root".
	Attribute string

	Properties Transform

	Children []*Node

	Mesh   *Mesh
	Skin   *Skin
	Camera *Camera

	// Materials lists the Lambert/Phong materials assigned to this
	// node's mesh, in the order referenced by Mesh.Materials.
	Materials []*Material
}

// NewNode returns a Node with identity transform and RSrs inherit type.
func NewNode(name, attribute string) *Node {
	return &Node{
		Name:      name,
		Attribute: attribute,
		Properties: Transform{
			Scaling:     math32.Vector3{X: 1, Y: 1, Z: 1},
			InheritType: InheritRSrs,
			RotationOrder: math32.XYZ,
		},
	}
}

func (n *Node) AddChild(c *Node) {
	n.Children = append(n.Children, c)
}

// InheritType enumerates FBX's node transform-inheritance modes.
// This implementation always writes [InheritRSrs] per spec — no
// segment-scale compensation — but the type carries the other modes
// for completeness/documentation of what was deliberately not used.
type InheritType int32 //enums:enum

const (
	InheritRrSs InheritType = iota
	InheritRSrs
	InheritRrs
)

// Transform is a node's local TRS plus the handful of FBX transform
// properties this pipeline actually writes. Pivots and pre/post
// rotation are intentionally absent: spec zeroes them.
type Transform struct {
	Translation   math32.Vector3
	Rotation      math32.Vector3 // Euler angles, degrees, in RotationOrder
	Scaling       math32.Vector3
	RotationOrder math32.RotationOrder
	InheritType   InheritType
}

// Color is an RGBA color, each channel normalized to [0,1], as written
// into FBX layer elements and material properties.
type Color struct {
	R, G, B, A float64
}

// Material is a simplified Lambert/Phong material.
type Material struct {
	Name          string
	Diffuse       Color
	DiffuseTexture string // absolute or scene-relative path; empty if none
	Shading       string // "Lambert" or "Phong"
}

// Camera holds the subset of FbxCamera properties the serializer
// copies: field of view, the near/far clip planes and the film size.
type Camera struct {
	FieldOfView      float64
	NearPlane        float64
	FarPlane         float64
	FilmWidth        float64
	FilmHeight       float64
}
