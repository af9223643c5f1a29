// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbxwriter

import "github.com/bhsingleton/dcc-sub000/math32"

// Cluster is one FbxCluster: an ordered (vertex index, weight) list
// binding a single influence (limb) to the skin's mesh, plus the two
// matrices FBX needs to reconstruct bind-pose deformation.
type Cluster struct {
	Name string

	// Influence is the Node this cluster deforms towards.
	Influence *Node

	Indices []int32
	Weights []float64

	// TransformMatrix is the mesh's global transform at bind time.
	TransformMatrix math32.Matrix4

	// TransformLinkMatrix is the influence's global transform, as the
	// source scene reports it when the skin is written.
	TransformLinkMatrix math32.Matrix4
}

// Skin is the deformer attached to a [Mesh] via [Node.Skin]: an
// ordered set of clusters, one per influence, built from the scene
// adapter's influence map and vertex-weight table.
type Skin struct {
	Name     string
	Clusters []*Cluster

	// BindPoseName is non-empty when a bind pose was requested
	// (ExportSet.IncludeBindPose); it names the FbxPose object this
	// skin's bind pose is emitted under.
	BindPoseName string
}

func NewSkin(name string) *Skin { return &Skin{Name: name} }

func (s *Skin) AddCluster(c *Cluster) { s.Clusters = append(s.Clusters, c) }
