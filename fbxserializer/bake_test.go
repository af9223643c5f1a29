// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbxserializer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhsingleton/dcc-sub000/fbxconfig"
	"github.com/bhsingleton/dcc-sub000/fbxnode"
	"github.com/bhsingleton/dcc-sub000/fbxscene"
	"github.com/bhsingleton/dcc-sub000/fbxwriter"
	"github.com/bhsingleton/dcc-sub000/math32"
)

func TestBakeRangeUsesTimelineWhenRequested(t *testing.T) {
	scene := fixtureScene()
	start, end, step := bakeRange(scene, fbxconfig.ExportRange{UseTimeline: true, Step: 1})
	assert.Equal(t, float64(0), start)
	assert.Equal(t, float64(30), end)
	assert.Equal(t, float64(1), step)
}

func TestBakeRangeUsesExplicitFrames(t *testing.T) {
	scene := fixtureScene()
	start, end, step := bakeRange(scene, fbxconfig.ExportRange{StartFrame: 5, EndFrame: 15, Step: 2})
	assert.Equal(t, float64(5), start)
	assert.Equal(t, float64(15), end)
	assert.Equal(t, float64(2), step)
}

func TestBakeOnlyKeysFramesInsideTheRequestedWindow(t *testing.T) {
	scene := fixtureScene()
	ser := NewSerializer(scene, "7.4.0", fbxwriter.FormatBinary)
	hip := &fbxnode.Shell{FbxNode: fbxwriter.NewNode("hip", "LimbNode"), Source: 1}

	rng := fbxconfig.ExportRange{StartFrame: 10, EndFrame: 12, Step: 1}
	err := bake(scene, []*fbxnode.Shell{hip}, ser.Document.AnimLayer, rng, nil)
	require.NoError(t, err)

	curve, ok := ser.Document.AnimLayer.Curves["hip_anim_translateX"]
	require.True(t, ok)
	require.Len(t, curve.Keys, 3)
	assert.Equal(t, float64(10), curve.Keys[0].Time)
	assert.Equal(t, float64(12), curve.Keys[2].Time)
}

func TestBakeSuspendsAndResumesViewport(t *testing.T) {
	scene := fixtureScene()
	layer := fbxwriter.NewAnimLayer("Layer0")
	rng := fbxconfig.ExportRange{StartFrame: 0, EndFrame: 2, Step: 1}

	require.NoError(t, bake(scene, nil, layer, rng, nil))
	assert.False(t, scene.ViewportSuspended)
}

func TestKeyShellWritesAllNineChannels(t *testing.T) {
	layer := fbxwriter.NewAnimLayer("Layer0")
	sh := &fbxnode.Shell{FbxNode: fbxwriter.NewNode("spine", "LimbNode")}
	info := fbxscene.NodeInfo{
		LocalMatrix:   *math32.NewMatrix4().SetTranslation(1, 2, 3),
		RotationOrder: math32.XYZ,
	}

	keyShell(sh, info, layer, 0.5)

	for _, ch := range fbxwriter.AnimChannels {
		curve, ok := layer.Curves["spine_anim_"+ch]
		require.True(t, ok, "missing curve for channel %s", ch)
		require.Len(t, curve.Keys, 1)
		assert.Equal(t, 0.5, curve.Keys[0].Time)
	}
	assert.InDelta(t, 1.0, layer.Curves["spine_anim_translateX"].Keys[0].Value, 1e-4)
}
