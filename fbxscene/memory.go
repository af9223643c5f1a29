// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbxscene

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bhsingleton/dcc-sub000/math32"
)

// MemoryNode is one node in a [Memory] scene graph.
type MemoryNode struct {
	Handle   Handle
	Name     string
	Parent   Handle
	HasParent bool
	Layers   []string
	Sets     []string
	Kind     Kind

	Local         math32.Matrix4
	Bind          math32.Matrix4
	RotationOrder math32.RotationOrder

	Mesh   *MemoryMesh
	Skin   *MemorySkin
	Camera *CameraInfo
}

// Memory is an in-memory [Scene] implementation: a real, if simplified,
// scene graph built from plain slices and maps. It is the seam the
// test suite drives the whole pipeline through, playing the role a
// live DCC scene plays in production — not a stub, just a small one.
type Memory struct {
	Namespace string
	Nodes     []*MemoryNode
	byHandle  map[Handle]*MemoryNode

	Time             float64
	ViewportSuspended bool
	Up               math32.Axis
	Unit             string
	TimelineStart    float64
	TimelineEnd      float64
}

// NewMemory returns an empty scene with centimeters and Y-up defaults.
func NewMemory() *Memory {
	return &Memory{
		byHandle: make(map[Handle]*MemoryNode),
		Up:       math32.AxisY,
		Unit:     "cm",
	}
}

// AddNode registers n, indexing it by handle. Panics on a duplicate
// handle — a fixture-construction bug, never a runtime condition.
func (m *Memory) AddNode(n *MemoryNode) {
	if _, dup := m.byHandle[n.Handle]; dup {
		panic(fmt.Sprintf("fbxscene.Memory: duplicate handle %d", n.Handle))
	}
	m.Nodes = append(m.Nodes, n)
	m.byHandle[n.Handle] = n
}

func (m *Memory) shortName(n *MemoryNode) string {
	if m.Namespace == "" {
		return n.Name
	}
	prefix := m.Namespace + ":"
	return strings.TrimPrefix(n.Name, prefix)
}

func (m *Memory) descendants(root Handle) []Handle {
	var out []Handle
	var walk func(h Handle)
	walk = func(h Handle) {
		for _, n := range m.Nodes {
			if n.HasParent && n.Parent == h {
				out = append(out, n.Handle)
				walk(n.Handle)
			}
		}
	}
	walk(root)
	return out
}

func (m *Memory) expand(hs []Handle, includeChildren bool) []Handle {
	if !includeChildren {
		return hs
	}
	seen := make(map[Handle]bool, len(hs))
	var out []Handle
	add := func(h Handle) {
		if !seen[h] {
			seen[h] = true
			out = append(out, h)
		}
	}
	for _, h := range hs {
		add(h)
		for _, d := range m.descendants(h) {
			add(d)
		}
	}
	return out
}

// NodesByName resolves each pattern against every node's short name.
// This is the only query mode descendant expansion applies to.
func (m *Memory) NodesByName(namespace string, patterns []string, includeChildren bool) []Handle {
	var hits []Handle
	for _, pat := range patterns {
		want := pat
		if namespace != "" {
			want = namespace + ":" + pat
		}
		for _, n := range m.Nodes {
			if n.Name == want || m.shortName(n) == pat {
				hits = append(hits, n.Handle)
			}
		}
	}
	return m.expand(hits, includeChildren)
}

// NodesByLayer resolves layer membership. Descendant expansion is a
// Nodes-mode-only concept (see [Memory.NodesByName]); includeChildren
// is accepted only to satisfy the [Scene] interface and is ignored
// here.
func (m *Memory) NodesByLayer(namespace string, layers []string, includeChildren bool) []Handle {
	var hits []Handle
	for _, n := range m.Nodes {
		for _, l := range n.Layers {
			if contains(layers, l) {
				hits = append(hits, n.Handle)
				break
			}
		}
	}
	return hits
}

// NodesBySelectionSet resolves named selection-set membership.
// includeChildren is accepted only to satisfy the [Scene] interface
// and is ignored — see [Memory.NodesByLayer].
func (m *Memory) NodesBySelectionSet(namespace string, sets []string, includeChildren bool) []Handle {
	var hits []Handle
	for _, n := range m.Nodes {
		for _, s := range n.Sets {
			if contains(sets, s) {
				hits = append(hits, n.Handle)
				break
			}
		}
	}
	return hits
}

// NodesByRegex matches each pattern against every node's short name.
// includeChildren is accepted only to satisfy the [Scene] interface
// and is ignored — see [Memory.NodesByLayer].
func (m *Memory) NodesByRegex(namespace string, patterns []string, includeChildren bool) []Handle {
	var hits []Handle
	for _, pat := range patterns {
		re, err := regexp.Compile(pat)
		if err != nil {
			continue
		}
		for _, n := range m.Nodes {
			if re.MatchString(m.shortName(n)) {
				hits = append(hits, n.Handle)
			}
		}
	}
	return hits
}

// AllNodeNames returns every node's post-namespace short name.
func (m *Memory) AllNodeNames() []string {
	names := make([]string, len(m.Nodes))
	for i, n := range m.Nodes {
		names[i] = m.shortName(n)
	}
	return names
}

// Node returns the per-node query result for h.
func (m *Memory) Node(h Handle) (NodeInfo, error) {
	n, ok := m.byHandle[h]
	if !ok {
		return NodeInfo{}, fmt.Errorf("fbxscene.Memory: no node with handle %d", h)
	}
	return NodeInfo{
		Handle:        n.Handle,
		Name:          n.Name,
		ParentHandle:  n.Parent,
		HasParent:     n.HasParent,
		Kind:          n.Kind,
		LocalMatrix:   n.Local,
		BindMatrix:    n.Bind,
		RotationOrder: n.RotationOrder,
	}, nil
}

// Mesh returns the mesh adapter for a mesh node.
func (m *Memory) Mesh(h Handle) (Mesh, error) {
	n, ok := m.byHandle[h]
	if !ok || n.Mesh == nil {
		return nil, fmt.Errorf("fbxscene.Memory: no mesh at handle %d", h)
	}
	return n.Mesh, nil
}

// Skin returns the skin adapter for a skinned mesh node, if any.
func (m *Memory) Skin(h Handle) (Skin, bool, error) {
	n, ok := m.byHandle[h]
	if !ok {
		return nil, false, fmt.Errorf("fbxscene.Memory: no node at handle %d", h)
	}
	if n.Skin == nil {
		return nil, false, nil
	}
	return n.Skin, true, nil
}

// Camera returns the camera attributes for a KindCamera node.
func (m *Memory) Camera(h Handle) (CameraInfo, error) {
	n, ok := m.byHandle[h]
	if !ok || n.Camera == nil {
		return CameraInfo{}, fmt.Errorf("fbxscene.Memory: no camera at handle %d", h)
	}
	return *n.Camera, nil
}

func (m *Memory) CurrentTime() float64   { return m.Time }
func (m *Memory) SetTime(t float64)      { m.Time = t }
func (m *Memory) SuspendViewport()       { m.ViewportSuspended = true }
func (m *Memory) ResumeViewport()        { m.ViewportSuspended = false }
func (m *Memory) UpAxis() math32.Axis    { return m.Up }
func (m *Memory) LinearUnit() string     { return m.Unit }
func (m *Memory) TimelineRange() (float64, float64) {
	return m.TimelineStart, m.TimelineEnd
}

func contains(hay []string, needle string) bool {
	for _, s := range hay {
		if s == needle {
			return true
		}
	}
	return false
}
