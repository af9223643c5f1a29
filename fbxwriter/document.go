// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbxwriter

// UpAxis mirrors the host scene's up axis into the FBX file's global
// settings — the Writer copies whatever the scene adapter reports, it
// never picks one itself.
type UpAxis int32 //enums:enum

const (
	UpAxisY UpAxis = iota
	UpAxisZ
)

func (a UpAxis) String() string {
	if a == UpAxisZ {
		return "Z"
	}
	return "Y"
}

// TimeMode mirrors FbxTime::EMode; this pipeline only ever emits
// TimeMode30, per spec's fixed 30fps bake rate.
type TimeMode int32 //enums:enum

const (
	TimeMode30 TimeMode = iota
)

func (m TimeMode) String() string { return "TC30" }

// GlobalSettings is the FBX file's "GlobalSettings" block.
type GlobalSettings struct {
	UpAxis   UpAxis
	Unit     string // always "cm"
	TimeMode TimeMode

	// TimeSpanStart and TimeSpanEnd are the timeline's default time
	// span, in frames at TimeMode's rate. SetTimeSpan populates them
	// from the range the baker actually keyed.
	TimeSpanStart float64
	TimeSpanEnd   float64
}

// SetTimeSpan records the baked range's default time span, mirroring
// FbxGlobalSettings::SetTimelineDefaultTimeSpan.
func (g *GlobalSettings) SetTimeSpan(start, end float64) {
	g.TimeSpanStart = start
	g.TimeSpanEnd = end
}

// Format selects the FBX file's on-disk encoding.
type Format int

const (
	FormatBinary Format = iota
	FormatASCII
)

// Document is the root of one export: the scene hierarchy (rooted at
// Root, whose children are the top-level gathered objects), the
// single animation stack/layer (always present, even mesh-only
// exports), and the global settings block.
type Document struct {
	SchemaVersion string // eg "7.4.0"
	Settings      GlobalSettings

	// Root is the implicit scene root; it is never itself emitted as
	// a Model object, only its Children are.
	Root *Node

	AnimStackName string
	AnimLayer     *AnimLayer
}

// NewDocument returns a Document with an always-present anim stack
// and layer, centimeters, 30fps and Y-up. Unit and time mode are
// fixed; the up axis is a default that [fbxserializer.NewSerializer]
// replaces with the scene adapter's up axis.
func NewDocument(schemaVersion string) *Document {
	return &Document{
		SchemaVersion: schemaVersion,
		Settings: GlobalSettings{
			UpAxis:   UpAxisY,
			Unit:     "cm",
			TimeMode: TimeMode30,
		},
		Root:          &Node{Name: "RootNode", Attribute: "Root"},
		AnimStackName: "Take 001",
		AnimLayer:     NewAnimLayer("BaseLayer"),
	}
}

// Walk visits every node in the scene hierarchy in depth-first,
// parent-before-child order.
func (d *Document) Walk(fn func(*Node)) {
	var walk func(*Node)
	walk = func(n *Node) {
		fn(n)
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, c := range d.Root.Children {
		walk(c)
	}
}

// NodeCount returns the number of scene nodes (excluding the implicit root).
func (d *Document) NodeCount() int {
	n := 0
	d.Walk(func(*Node) { n++ })
	return n
}
