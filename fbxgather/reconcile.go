// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbxgather

import (
	"github.com/bhsingleton/dcc-sub000/base/config"
	"github.com/bhsingleton/dcc-sub000/fbxnode"
	"github.com/bhsingleton/dcc-sub000/fbxscene"
)

// trackedShell adapts a *[fbxnode.Shell] to [namer.Namer] so
// [config.Config] can reconcile shells by name across watch-mode
// re-gathers, the same way the teacher reconciles any named slice.
type trackedShell struct {
	*fbxnode.Shell
}

func (t trackedShell) Name() string { return t.FbxNode.Name }

// Reconcile diffs a freshly gathered node list against the previous
// gather's shells by name: a node that persists keeps its existing
// shell (and therefore its handle) instead of getting a brand new one,
// so repeated exports during a watch session don't thrash the
// allocator. Returns the updated shell slice, in the new gather's
// order, and whether anything changed.
func Reconcile(prev []*fbxnode.Shell, registry *fbxnode.Registry, gathered []fbxscene.NodeInfo) ([]*fbxnode.Shell, bool) {
	tracked := make([]trackedShell, len(prev))
	for i, sh := range prev {
		tracked[i] = trackedShell{sh}
	}

	updated, mods := config.Config(tracked, len(gathered),
		func(i int) string { return gathered[i].Name },
		func(name string, i int) trackedShell {
			return trackedShell{registry.Reserve(gathered[i])}
		},
	)

	out := make([]*fbxnode.Shell, len(updated))
	for i, t := range updated {
		out[i] = t.Shell
	}
	return out, mods
}
