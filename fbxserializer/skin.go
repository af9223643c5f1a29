// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbxserializer

import (
	"log/slog"

	"github.com/bhsingleton/dcc-sub000/base/keylist"
	"github.com/bhsingleton/dcc-sub000/fbxnode"
	"github.com/bhsingleton/dcc-sub000/fbxscene"
	"github.com/bhsingleton/dcc-sub000/fbxwriter"
)

// writeSkin creates a skin deformer on sh's mesh once the geometry
// writer has finished it, linking one cluster per influence that made
// it into the export set. Influences missing from registry are
// skipped (logged) rather than failing the whole mesh. The influence
// map uses [keylist.List] — cluster creation only needs forward
// iteration plus integer-key lookup, not ordmap's tuple access.
func writeSkin(sh *fbxnode.Shell, src fbxscene.Skin, registry *fbxnode.Registry) {
	influences := keylist.New[int, fbxscene.Handle]()
	for _, id := range src.Influences() {
		influences.Set(id, src.InfluenceHandle(id))
	}

	skin := fbxwriter.NewSkin(sh.FbxNode.Name + "Skin")
	skin.BindPoseName = src.BindPoseName()

	clusterByInfluence := make(map[int]*fbxwriter.Cluster, influences.Len())
	for _, id := range influences.Keys {
		limb := registry.BySource(influences.At(id))
		if limb == nil {
			slog.Warn("fbxserializer: skin influence not in export set, skipping", "influenceId", id)
			continue
		}
		// the transform-link is the source adapter's current global matrix
		// for the influence (src.InfluenceGlobalMatrix); it is not
		// evaluated from the FBX document's nodes.
		cl := &fbxwriter.Cluster{
			Name:                limb.FbxNode.Name,
			Influence:           limb.FbxNode,
			TransformLinkMatrix: src.InfluenceGlobalMatrix(id),
		}
		skin.AddCluster(cl)
		clusterByInfluence[id] = cl
	}

	vertexCount := 0
	if m, ok := meshVertexCount(sh); ok {
		vertexCount = m
	}
	for v := 0; v < vertexCount; v++ {
		for influenceID, weight := range src.VertexWeights(v) {
			cl, ok := clusterByInfluence[influenceID]
			if !ok {
				continue
			}
			cl.Indices = append(cl.Indices, int32(v))
			cl.Weights = append(cl.Weights, weight)
		}
	}

	sh.FbxNode.Skin = skin
}

func meshVertexCount(sh *fbxnode.Shell) (int, bool) {
	if sh.FbxNode.Mesh == nil {
		return 0, false
	}
	return len(sh.FbxNode.Mesh.ControlPoints), true
}
