// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbxgather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhsingleton/dcc-sub000/fbxnode"
	"github.com/bhsingleton/dcc-sub000/fbxscene"
	"github.com/bhsingleton/dcc-sub000/fbxwriter"
)

// reconcileInfo builds a NodeInfo with a handle unique to the node's
// identity so Registry.Reserve's bySource cache can't alias two
// differently-named nodes onto the same shell within a single test.
func reconcileInfo(handle int, name string) fbxscene.NodeInfo {
	return fbxscene.NodeInfo{Handle: fbxscene.Handle(handle), Name: name, Kind: fbxscene.KindJoint}
}

func TestReconcileReusesShellsByName(t *testing.T) {
	registry := fbxnode.NewRegistry(fbxwriter.NewNode("Scene", "Null"))

	first, mods := Reconcile(nil, registry, []fbxscene.NodeInfo{reconcileInfo(1, "hip"), reconcileInfo(2, "spine")})
	require.True(t, mods)
	require.Len(t, first, 2)
	hip, spine := first[0], first[1]

	second, mods := Reconcile(first, registry, []fbxscene.NodeInfo{reconcileInfo(1, "hip"), reconcileInfo(2, "spine")})
	require.False(t, mods)
	require.Len(t, second, 2)
	assert.Same(t, hip, second[0])
	assert.Same(t, spine, second[1])
}

func TestReconcileDropsMissingAndAddsNew(t *testing.T) {
	registry := fbxnode.NewRegistry(fbxwriter.NewNode("Scene", "Null"))

	first, _ := Reconcile(nil, registry, []fbxscene.NodeInfo{reconcileInfo(1, "hip"), reconcileInfo(2, "spine")})
	hip := first[0]

	second, mods := Reconcile(first, registry, []fbxscene.NodeInfo{reconcileInfo(1, "hip"), reconcileInfo(3, "head")})
	require.True(t, mods)
	require.Len(t, second, 2)
	assert.Same(t, hip, second[0])
	assert.Equal(t, "head", second[1].FbxNode.Name)
}

func TestReconcileReordersWithoutNewShells(t *testing.T) {
	registry := fbxnode.NewRegistry(fbxwriter.NewNode("Scene", "Null"))

	first, _ := Reconcile(nil, registry, []fbxscene.NodeInfo{reconcileInfo(1, "hip"), reconcileInfo(2, "spine")})
	hip, spine := first[0], first[1]

	second, mods := Reconcile(first, registry, []fbxscene.NodeInfo{reconcileInfo(2, "spine"), reconcileInfo(1, "hip")})
	require.True(t, mods)
	assert.Same(t, spine, second[0])
	assert.Same(t, hip, second[1])
}
