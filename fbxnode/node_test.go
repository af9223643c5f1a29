// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbxnode

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bhsingleton/dcc-sub000/fbxscene"
	"github.com/bhsingleton/dcc-sub000/fbxwriter"
)

func fixtureMemory() *fbxscene.Memory {
	m := fbxscene.NewMemory()
	m.AddNode(&fbxscene.MemoryNode{Handle: 1, Name: "hip", Kind: fbxscene.KindJoint})
	m.AddNode(&fbxscene.MemoryNode{Handle: 2, Name: "spine", Parent: 1, HasParent: true, Kind: fbxscene.KindJoint})
	m.AddNode(&fbxscene.MemoryNode{Handle: 3, Name: "head", Parent: 2, HasParent: true, Kind: fbxscene.KindJoint})
	return m
}

func TestReserveIsIdempotent(t *testing.T) {
	scene := fixtureMemory()
	reg := NewRegistry(fbxwriter.NewNode("Scene", "Null"))

	info, err := scene.Node(1)
	assert.NoError(t, err)

	a := reg.Reserve(info)
	b := reg.Reserve(info)
	assert.Same(t, a, b)
	assert.Equal(t, 1, reg.Len())
}

func TestLinkReparentsInScatteredOrder(t *testing.T) {
	scene := fixtureMemory()
	root := fbxwriter.NewNode("Scene", "Null")
	reg := NewRegistry(root)

	// Reserve child before parent, exercising the out-of-order case
	// the two-phase split exists for.
	headInfo, _ := scene.Node(3)
	hipInfo, _ := scene.Node(1)
	spineInfo, _ := scene.Node(2)

	head := reg.Reserve(headInfo)
	hip := reg.Reserve(hipInfo)
	spine := reg.Reserve(spineInfo)

	err := reg.Link(scene)
	assert.NoError(t, err)

	assert.Contains(t, root.Children, hip.FbxNode)
	assert.Contains(t, hip.FbxNode.Children, spine.FbxNode)
	assert.Contains(t, spine.FbxNode.Children, head.FbxNode)
}

func TestUnmappedParentFallsBackToRoot(t *testing.T) {
	scene := fbxscene.NewMemory()
	scene.AddNode(&fbxscene.MemoryNode{Handle: 1, Name: "orphan", Parent: 99, HasParent: true, Kind: fbxscene.KindJoint})

	root := fbxwriter.NewNode("Scene", "Null")
	reg := NewRegistry(root)
	info, _ := scene.Node(1)
	sh := reg.Reserve(info)

	assert.NoError(t, reg.Link(scene))
	assert.Contains(t, root.Children, sh.FbxNode)
	assert.False(t, sh.Parent.Valid)
}

func TestByFbxNodeReverseLookup(t *testing.T) {
	scene := fixtureMemory()
	reg := NewRegistry(fbxwriter.NewNode("Scene", "Null"))
	info, _ := scene.Node(1)
	sh := reg.Reserve(info)

	got := reg.ByFbxNode(sh.FbxNode)
	assert.Same(t, sh, got)
	assert.Nil(t, reg.ByFbxNode(fbxwriter.NewNode("other", "Null")))
}

func TestBySourceUnknownHandle(t *testing.T) {
	reg := NewRegistry(fbxwriter.NewNode("Scene", "Null"))
	assert.Nil(t, reg.BySource(123))
}
