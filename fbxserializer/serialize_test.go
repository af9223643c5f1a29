// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbxserializer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhsingleton/dcc-sub000/fbxconfig"
	"github.com/bhsingleton/dcc-sub000/fbxnode"
	"github.com/bhsingleton/dcc-sub000/fbxscene"
	"github.com/bhsingleton/dcc-sub000/fbxwriter"
	"github.com/bhsingleton/dcc-sub000/math32"
)

func fixtureScene() *fbxscene.Memory {
	m := fbxscene.NewMemory()
	m.AddNode(&fbxscene.MemoryNode{
		Handle: 1, Name: "hip", Kind: fbxscene.KindJoint,
		Local: *math32.NewMatrix4().SetTranslation(0, 10, 0),
	})
	m.AddNode(&fbxscene.MemoryNode{
		Handle: 2, Name: "spine", Parent: 1, HasParent: true, Kind: fbxscene.KindJoint,
		Local: *math32.NewMatrix4().SetTranslation(0, 5, 0),
	})
	m.AddNode(&fbxscene.MemoryNode{
		Handle: 3, Name: "body_mesh", Parent: 1, HasParent: true, Kind: fbxscene.KindMesh,
		Mesh: &fbxscene.MemoryMesh{
			Positions: []math32.Vector3{
				{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
			},
			Faces: [][]int32{{0, 1, 2, 3}},
			Normals: [][]math32.Vector3{
				{{X: 0, Y: 0, Z: 1}, {X: 0, Y: 0, Z: 1}, {X: 0, Y: 0, Z: 1}, {X: 0, Y: 0, Z: 1}},
			},
		},
	})
	m.AddNode(&fbxscene.MemoryNode{
		Handle: 4, Name: "cam1", Parent: 1, HasParent: true, Kind: fbxscene.KindCamera,
		Camera: &fbxscene.CameraInfo{FieldOfView: 45, NearPlane: 0.1, FarPlane: 1000, FilmWidth: 36, FilmHeight: 24},
	})
	m.TimelineStart = 0
	m.TimelineEnd = 30
	return m
}

func fixtureExportSet() fbxconfig.ExportSet {
	return fbxconfig.ExportSet{
		Name:           "main",
		Scale:          1,
		Skeleton:       fbxconfig.ObjectSet{IncludeObjects: []string{"hip"}, IncludeChildren: true},
		Mesh:           fbxconfig.ObjectSet{IncludeObjects: []string{"body_mesh"}},
		Camera:         fbxconfig.ObjectSet{IncludeObjects: []string{"cam1"}},
		IncludeNormals: true,
		MoveToOrigin:   true,
	}
}

func jointShells(shells []*fbxnode.Shell) []*fbxnode.Shell {
	var out []*fbxnode.Shell
	for _, sh := range shells {
		if sh.Kind == "Joint" {
			out = append(out, sh)
		}
	}
	return out
}

func TestSerializeExportSetProducesExpectedShells(t *testing.T) {
	scene := fixtureScene()
	ser := NewSerializer(scene, "7.4.0", fbxwriter.FormatBinary)

	shells, err := ser.SerializeExportSet(scene.Namespace, fixtureExportSet(), filepath.Join(t.TempDir(), "out.fbx"))
	require.NoError(t, err)

	var kinds []string
	for _, sh := range shells {
		kinds = append(kinds, sh.Kind)
	}
	assert.ElementsMatch(t, []string{"Joint", "Joint", "Mesh", "Camera"}, kinds)
	assert.Equal(t, 4, ser.Document.NodeCount())
}

func TestSerializeExportSetWritesCameraAttribute(t *testing.T) {
	scene := fixtureScene()
	ser := NewSerializer(scene, "7.4.0", fbxwriter.FormatBinary)

	_, err := ser.SerializeExportSet(scene.Namespace, fixtureExportSet(), filepath.Join(t.TempDir(), "out.fbx"))
	require.NoError(t, err)

	var cam *fbxwriter.Node
	var findCam func(*fbxwriter.Node)
	findCam = func(n *fbxwriter.Node) {
		if n.Name == "cam1" {
			cam = n
		}
		for _, c := range n.Children {
			findCam(c)
		}
	}
	for _, c := range ser.Document.Root.Children {
		findCam(c)
	}
	require.NotNil(t, cam)
	require.NotNil(t, cam.Camera)
	assert.Equal(t, 45.0, cam.Camera.FieldOfView)
	assert.Equal(t, 0.1, cam.Camera.NearPlane)
	assert.Equal(t, 1000.0, cam.Camera.FarPlane)
}

func TestSerializeExportSetMoveToOriginZerosRootTranslation(t *testing.T) {
	scene := fixtureScene()
	ser := NewSerializer(scene, "7.4.0", fbxwriter.FormatBinary)

	_, err := ser.SerializeExportSet(scene.Namespace, fixtureExportSet(), filepath.Join(t.TempDir(), "out.fbx"))
	require.NoError(t, err)

	var hip *fbxwriter.Node
	for _, c := range ser.Document.Root.Children {
		if c.Name == "hip" {
			hip = c
		}
	}
	require.NotNil(t, hip)
	assert.InDelta(t, float32(0), hip.Properties.Translation.Y, 1e-4)
}

func TestSerializeExportRangeBakesSkeleton(t *testing.T) {
	scene := fixtureScene()
	ser := NewSerializer(scene, "7.4.0", fbxwriter.FormatBinary)
	set := fixtureExportSet()
	set.MoveToOrigin = false

	shells, err := ser.SerializeExportSet(scene.Namespace, set, filepath.Join(t.TempDir(), "out.fbx"))
	require.NoError(t, err)
	joints := jointShells(shells)
	assert.Len(t, joints, 2)

	asset := fbxconfig.Asset{ExportSets: []fbxconfig.ExportSet{set}}
	rng := fbxconfig.ExportRange{Name: "walk", ExportSetID: 0, StartFrame: 0, EndFrame: 10, Step: 1}

	err = ser.SerializeExportRange(asset, rng, joints, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, ser.Document.AnimLayer.Curves)
	assert.Equal(t, 0.0, ser.Document.Settings.TimeSpanStart)
	assert.Equal(t, 10.0, ser.Document.Settings.TimeSpanEnd)
}

func TestSerializeExportSetReconciledReusesShellsByName(t *testing.T) {
	scene := fixtureScene()
	ser := NewSerializer(scene, "7.4.0", fbxwriter.FormatBinary)
	set := fixtureExportSet()

	first, err := ser.SerializeExportSetReconciled(scene.Namespace, set, filepath.Join(t.TempDir(), "out.fbx"), nil)
	require.NoError(t, err)

	second, err := ser.SerializeExportSetReconciled(scene.Namespace, set, filepath.Join(t.TempDir(), "out.fbx"), first)
	require.NoError(t, err)

	byName := map[string]*fbxnode.Shell{}
	for _, sh := range first {
		byName[sh.FbxNode.Name] = sh
	}
	for _, sh := range second {
		prev, ok := byName[sh.FbxNode.Name]
		require.True(t, ok)
		assert.Same(t, prev, sh)
	}
}

func TestSerializeExportSetWritesSkinClusters(t *testing.T) {
	scene := fixtureScene()
	for _, n := range scene.Nodes {
		if n.Name == "body_mesh" {
			n.Skin = &fbxscene.MemorySkin{
				InfluenceOrder: []int{0, 1},
				InfluenceNodes: map[int]fbxscene.Handle{0: 1, 1: 2},
				GlobalMatrices: map[int]math32.Matrix4{
					0: *math32.NewMatrix4(),
					1: *math32.NewMatrix4(),
				},
				Weights: map[int]map[int]float64{
					0: {0: 1},
					1: {0: 0.5, 1: 0.5},
					2: {1: 1},
					3: {1: 1},
				},
			}
		}
	}

	set := fixtureExportSet()
	set.IncludeSkins = true

	ser := NewSerializer(scene, "7.4.0", fbxwriter.FormatBinary)
	shells, err := ser.SerializeExportSet(scene.Namespace, set, filepath.Join(t.TempDir(), "out.fbx"))
	require.NoError(t, err)

	var meshNode *fbxwriter.Node
	for _, sh := range shells {
		if sh.Kind == "Mesh" {
			meshNode = sh.FbxNode
		}
	}
	require.NotNil(t, meshNode)
	require.NotNil(t, meshNode.Skin)
	assert.Len(t, meshNode.Skin.Clusters, 2)
}

// Two independent pipeline runs over the same scene and export set, each
// with its own Serializer/Registry, must produce byte-identical output:
// gathering, allocation, composition and baking are all pure functions
// of the scene and config, with no hidden run-to-run state.
func TestSerializeExportSetIsIdempotentAcrossIndependentRuns(t *testing.T) {
	set := fixtureExportSet()

	runOnce := func() string {
		s := fixtureScene()
		ser := NewSerializer(s, "7.4.0", fbxwriter.FormatBinary)
		_, err := ser.SerializeExportSet(s.Namespace, set, filepath.Join(t.TempDir(), "out.fbx"))
		require.NoError(t, err)
		digest, err := ser.WriteFile(filepath.Join(t.TempDir(), "out.fbx"), false)
		require.NoError(t, err)
		return digest
	}

	first := runOnce()
	second := runOnce()
	assert.Equal(t, first, second)
}
