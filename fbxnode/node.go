// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fbxnode implements the two-phase node allocator: minting a
// [Handle] and an empty [Shell] per gathered scene object (Reserve),
// then re-parenting every shell under its mapped ancestor once the
// whole set is known (Link). Splitting allocation from linking this
// way is what lets a skin cluster reference a limb that hasn't been
// visited yet, and vice versa — the two-phase split breaks that
// cycle without either side needing the other to exist first.
package fbxnode

import (
	"github.com/bhsingleton/dcc-sub000/base/atomiccounter"
	"github.com/bhsingleton/dcc-sub000/base/ordmap"
	"github.com/bhsingleton/dcc-sub000/base/option"
	"github.com/bhsingleton/dcc-sub000/fbxscene"
	"github.com/bhsingleton/dcc-sub000/fbxwriter"
)

// Handle identifies one scene node touched during a single export. It
// is minted from a process-local atomic counter and never persisted —
// a fresh export gets fresh handles even for the same scene node.
type Handle uint64

var counter atomiccounter.Counter

func nextHandle() Handle {
	return Handle(counter.Inc())
}

// Shell pairs one [Handle] with the [fbxwriter.Node] being built for
// it. Parent is set during Reserve from the scene adapter's reported
// parent handle, but only Link actually attaches it into the FBX
// scene hierarchy — before Link, Parent may name a handle that has
// not been reserved yet.
type Shell struct {
	Handle  Handle
	FbxNode *fbxwriter.Node
	Kind    string // source node's [fbxscene.Kind]: "Transform", "Joint", "Mesh" or "Camera"
	Source  fbxscene.Handle

	Parent option.Option[*Shell]
}

// Registry is the handle→shell bijection, backed by [ordmap.Map] so
// Link and Emit walk shells in the order they were gathered, matching
// how a depth-first scene walk would visit them.
type Registry struct {
	Root *fbxwriter.Node

	shells   ordmap.Map[Handle, *Shell]
	bySource map[fbxscene.Handle]Handle
	byNode   map[*fbxwriter.Node]Handle
}

// NewRegistry returns an empty registry whose shells attach under root
// once they have no mapped ancestor.
func NewRegistry(root *fbxwriter.Node) *Registry {
	return &Registry{
		Root:     root,
		bySource: make(map[fbxscene.Handle]Handle),
		byNode:   make(map[*fbxwriter.Node]Handle),
	}
}

// Reserve allocates a [Shell] for a gathered scene node. It is
// idempotent: calling it twice with the same source handle returns
// the shell created the first time.
func (r *Registry) Reserve(info fbxscene.NodeInfo) *Shell {
	if h, has := r.bySource[info.Handle]; has {
		return r.shells.ValueByKey(h)
	}
	h := nextHandle()
	attr := info.Kind.String()
	switch info.Kind {
	case fbxscene.KindJoint:
		attr = "LimbNode"
	case fbxscene.KindTransform:
		attr = "Null"
	}
	sh := &Shell{
		Handle:  h,
		FbxNode: fbxwriter.NewNode(info.Name, attr),
		Kind:    info.Kind.String(),
		Source:  info.Handle,
	}
	r.shells.Add(h, sh)
	r.bySource[info.Handle] = h
	r.byNode[sh.FbxNode] = h
	return sh
}

// Link walks every reserved shell in insertion order, looks up its
// source node's parent handle in scene, and re-parents the shell under
// its mapped ancestor's node — or under the registry's root if the
// parent is unmapped (excluded from the gather, or the scene root
// itself). This never depends on gather order: a child reserved before
// its parent still links correctly once every shell exists.
func (r *Registry) Link(scene fbxscene.Scene) error {
	for _, kv := range r.shells.Order {
		sh := kv.Value
		info, err := scene.Node(sh.Source)
		if err != nil {
			return err
		}
		if !info.HasParent {
			r.Root.AddChild(sh.FbxNode)
			continue
		}
		parentHandle, mapped := r.bySource[info.ParentHandle]
		if !mapped {
			r.Root.AddChild(sh.FbxNode)
			continue
		}
		parent := r.shells.ValueByKey(parentHandle)
		parent.FbxNode.AddChild(sh.FbxNode)
		sh.Parent.Set(parent)
	}
	return nil
}

// ByHandle returns the shell for a given [Handle], or nil if unknown.
func (r *Registry) ByHandle(h Handle) *Shell {
	return r.shells.ValueByKey(h)
}

// BySource returns the shell reserved for a given scene handle, or nil
// if it was never gathered.
func (r *Registry) BySource(h fbxscene.Handle) *Shell {
	sh, has := r.bySource[h]
	if !has {
		return nil
	}
	return r.shells.ValueByKey(sh)
}

// ByFbxNode returns the shell that owns n, the reverse-lookup side
// table described in the allocator's design: a shell handle keyed by
// FBX node, used only during export to go from an FBX node back to
// its shell and so its source, eg when the bake's move-to-origin pass walks root's
// direct children.
func (r *Registry) ByFbxNode(n *fbxwriter.Node) *Shell {
	h, has := r.byNode[n]
	if !has {
		return nil
	}
	return r.shells.ValueByKey(h)
}

// Len returns the number of reserved shells.
func (r *Registry) Len() int { return r.shells.Len() }

// Shells returns every reserved shell, in insertion order.
func (r *Registry) Shells() []*Shell { return r.shells.Values() }
