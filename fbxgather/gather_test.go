// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbxgather

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bhsingleton/dcc-sub000/fbxscene"
)

func fixtureScene() *fbxscene.Memory {
	m := fbxscene.NewMemory()
	m.AddNode(&fbxscene.MemoryNode{Handle: 1, Name: "root", Kind: fbxscene.KindTransform})
	m.AddNode(&fbxscene.MemoryNode{Handle: 2, Name: "hip", Parent: 1, HasParent: true, Kind: fbxscene.KindJoint, Layers: []string{"skeleton"}})
	m.AddNode(&fbxscene.MemoryNode{Handle: 3, Name: "spine", Parent: 2, HasParent: true, Kind: fbxscene.KindJoint, Layers: []string{"skeleton"}})
	m.AddNode(&fbxscene.MemoryNode{Handle: 4, Name: "body_mesh", Parent: 1, HasParent: true, Kind: fbxscene.KindMesh, Sets: []string{"geo"}})
	m.AddNode(&fbxscene.MemoryNode{Handle: 5, Name: "cam1", Parent: 1, HasParent: true, Kind: fbxscene.KindCamera})
	return m
}

func TestGatherByName(t *testing.T) {
	scene := fixtureScene()
	out := Gather(scene, Spec{Name: "set", IncludeType: fbxscene.EnumNodes, IncludeObjects: []string{"hip"}, IncludeChildren: true})
	var names []string
	for _, n := range out {
		names = append(names, n.Name)
	}
	assert.ElementsMatch(t, []string{"hip", "spine"}, names)
}

func TestGatherByLayer(t *testing.T) {
	scene := fixtureScene()
	out := Gather(scene, Spec{Name: "set", IncludeType: fbxscene.EnumLayers, IncludeObjects: []string{"skeleton"}})
	assert.Len(t, out, 2)
}

func TestGatherExcludeRemoves(t *testing.T) {
	scene := fixtureScene()
	out := Gather(scene, Spec{
		Name:            "set",
		IncludeType:     fbxscene.EnumNodes,
		IncludeObjects:  []string{"hip"},
		IncludeChildren: true,
		ExcludeType:     fbxscene.EnumNodes,
		ExcludeObjects:  []string{"spine"},
	})
	assert.Len(t, out, 1)
	assert.Equal(t, "hip", out[0].Name)
}

func TestGatherBySelectionSet(t *testing.T) {
	scene := fixtureScene()
	out := Gather(scene, Spec{Name: "set", IncludeType: fbxscene.EnumSelectionSets, IncludeObjects: []string{"geo"}})
	assert.Len(t, out, 1)
	assert.Equal(t, "body_mesh", out[0].Name)
}

func TestGatherByRegex(t *testing.T) {
	scene := fixtureScene()
	out := Gather(scene, Spec{Name: "set", IncludeType: fbxscene.EnumRegex, IncludeObjects: []string{"^cam"}})
	assert.Len(t, out, 1)
	assert.Equal(t, "cam1", out[0].Name)
}

func TestGatherNoHitsIsNonFatal(t *testing.T) {
	scene := fixtureScene()
	out := Gather(scene, Spec{Name: "set", IncludeType: fbxscene.EnumNodes, IncludeObjects: []string{"nonexistent"}})
	assert.Empty(t, out)
}

func TestGatherDedupesAcrossIncludePatterns(t *testing.T) {
	scene := fixtureScene()
	out := Gather(scene, Spec{Name: "set", IncludeType: fbxscene.EnumNodes, IncludeObjects: []string{"hip", "hip"}})
	assert.Len(t, out, 1)
}
