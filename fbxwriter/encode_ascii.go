// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbxwriter

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bhsingleton/dcc-sub000/base/indent"
)

// encodeASCII writes the document in FBX's human-readable ASCII form:
// indented "Name: { ... }" blocks, matching the layout FBX Review and
// older Maya/Max exporters emit for schema versions before binary
// became the default.
func (d *Document) encodeASCII(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "; FBX %s project file\n", d.SchemaVersion)
	fmt.Fprintf(bw, "FBXHeaderExtension:  {\n")
	fmt.Fprintf(bw, "%sFBXVersion: %s\n", indent.Tabs(1), d.SchemaVersion)
	fmt.Fprintf(bw, "}\n\n")

	fmt.Fprintf(bw, "GlobalSettings:  {\n")
	fmt.Fprintf(bw, "%sUpAxis: %q\n", indent.Tabs(1), d.Settings.UpAxis.String())
	fmt.Fprintf(bw, "%sUnitScaleFactor: %q\n", indent.Tabs(1), d.Settings.Unit)
	fmt.Fprintf(bw, "%sTimeMode: %q\n", indent.Tabs(1), d.Settings.TimeMode.String())
	fmt.Fprintf(bw, "%sTimeSpanStart: %v\n", indent.Tabs(1), d.Settings.TimeSpanStart)
	fmt.Fprintf(bw, "%sTimeSpanEnd: %v\n", indent.Tabs(1), d.Settings.TimeSpanEnd)
	fmt.Fprintf(bw, "}\n\n")

	fmt.Fprintf(bw, "Objects:  {\n")
	for _, n := range d.Root.Children {
		writeNodeASCII(bw, n, 1)
	}
	fmt.Fprintf(bw, "}\n\n")

	fmt.Fprintf(bw, "Connections:  {\n")
	var writeConn func(parent, child *Node)
	writeConn = func(parent, child *Node) {
		fmt.Fprintf(bw, "%sC: %q,%q,%q\n", indent.Tabs(1), "OO", child.Name, parent.Name)
		for _, gc := range child.Children {
			writeConn(child, gc)
		}
	}
	for _, n := range d.Root.Children {
		writeConn(d.Root, n)
		for _, c := range n.Children {
			writeConn(n, c)
		}
	}
	fmt.Fprintf(bw, "}\n\n")

	fmt.Fprintf(bw, "AnimationStack: %q {\n", d.AnimStackName)
	fmt.Fprintf(bw, "%sAnimationLayer: %q {\n", indent.Tabs(1), d.AnimLayer.Name)
	for _, name := range sortedCurveNames(d.AnimLayer) {
		c := d.AnimLayer.Curves[name]
		fmt.Fprintf(bw, "%sCurve: %q {\n", indent.Tabs(2), c.Name)
		for _, k := range c.Keys {
			fmt.Fprintf(bw, "%sKey: %g,%g\n", indent.Tabs(3), k.Time, k.Value)
		}
		fmt.Fprintf(bw, "%s}\n", indent.Tabs(2))
	}
	fmt.Fprintf(bw, "%s}\n", indent.Tabs(1))
	fmt.Fprintf(bw, "}\n")

	return bw.Flush()
}

func sortedCurveNames(l *AnimLayer) []string {
	names := make([]string, 0, len(l.Curves))
	for n := range l.Curves {
		names = append(names, n)
	}
	// stable, deterministic output: node name, then channel order
	// within AnimChannels.
	order := make(map[string]int, len(AnimChannels))
	for i, c := range AnimChannels {
		order[c] = i
	}
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && less(names[j], names[j-1], order); j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
	return names
}

func less(a, b string, order map[string]int) bool {
	// names look like "<node>_anim_<channel>"; compare by node prefix
	// first, then channel order, so output is stable across runs.
	const sep = "_anim_"
	ai, bi := strings.LastIndex(a, sep), strings.LastIndex(b, sep)
	if ai < 0 || bi < 0 {
		return a < b
	}
	if a[:ai] != b[:bi] {
		return a[:ai] < b[:bi]
	}
	oa, okA := order[a[ai+len(sep):]]
	ob, okB := order[b[bi+len(sep):]]
	if !okA || !okB {
		return a < b
	}
	return oa < ob
}

func writeNodeASCII(w *bufio.Writer, n *Node, depth int) {
	ind := indent.Tabs(depth)
	fmt.Fprintf(w, "%sModel: %q, %q {\n", ind, n.Name, n.Attribute)
	t := n.Properties
	fmt.Fprintf(w, "%sProperties70:  {\n", indent.Tabs(depth+1))
	fmt.Fprintf(w, "%sP: \"Lcl Translation\", \"Lcl Translation\", \"\", \"A\",%g,%g,%g\n",
		indent.Tabs(depth+2), t.Translation.X, t.Translation.Y, t.Translation.Z)
	fmt.Fprintf(w, "%sP: \"Lcl Rotation\", \"Lcl Rotation\", \"\", \"A\",%g,%g,%g\n",
		indent.Tabs(depth+2), t.Rotation.X, t.Rotation.Y, t.Rotation.Z)
	fmt.Fprintf(w, "%sP: \"Lcl Scaling\", \"Lcl Scaling\", \"\", \"A\",%g,%g,%g\n",
		indent.Tabs(depth+2), t.Scaling.X, t.Scaling.Y, t.Scaling.Z)
	fmt.Fprintf(w, "%sP: \"InheritType\", \"enum\", \"\", \"\",%d\n", indent.Tabs(depth+2), t.InheritType)
	fmt.Fprintf(w, "%sP: \"RotationOrder\", \"enum\", \"\", \"\",%d\n", indent.Tabs(depth+2), t.RotationOrder)
	fmt.Fprintf(w, "%s}\n", indent.Tabs(depth+1))

	if n.Mesh != nil {
		writeMeshASCII(w, n.Mesh, depth+1)
	}
	if n.Skin != nil {
		writeSkinASCII(w, n.Skin, depth+1)
	}
	if n.Camera != nil {
		fmt.Fprintf(w, "%sNodeAttribute: \"Camera\" {\n", indent.Tabs(depth+1))
		fmt.Fprintf(w, "%sFieldOfView: %g\n", indent.Tabs(depth+2), n.Camera.FieldOfView)
		fmt.Fprintf(w, "%sNearPlane: %g\n", indent.Tabs(depth+2), n.Camera.NearPlane)
		fmt.Fprintf(w, "%sFarPlane: %g\n", indent.Tabs(depth+2), n.Camera.FarPlane)
		fmt.Fprintf(w, "%s}\n", indent.Tabs(depth+1))
	}
	for i, m := range n.Materials {
		fmt.Fprintf(w, "%sMaterial: %d, %q {\n", indent.Tabs(depth+1), i, m.Name)
		fmt.Fprintf(w, "%sShadingModel: %q\n", indent.Tabs(depth+2), m.Shading)
		fmt.Fprintf(w, "%sDiffuseColor: %g,%g,%g,%g\n", indent.Tabs(depth+2), m.Diffuse.R, m.Diffuse.G, m.Diffuse.B, m.Diffuse.A)
		if m.DiffuseTexture != "" {
			fmt.Fprintf(w, "%sFileTexture: %q\n", indent.Tabs(depth+2), m.DiffuseTexture)
		}
		fmt.Fprintf(w, "%s}\n", indent.Tabs(depth+1))
	}

	for _, c := range n.Children {
		writeNodeASCII(w, c, depth+1)
	}
	fmt.Fprintf(w, "%s}\n", ind)
}

func writeMeshASCII(w *bufio.Writer, m *Mesh, depth int) {
	ind := indent.Tabs(depth)
	fmt.Fprintf(w, "%sGeometry: \"Mesh\" {\n", ind)
	fmt.Fprintf(w, "%sVertices: *%d\n", indent.Tabs(depth+1), len(m.ControlPoints)*3)
	fmt.Fprintf(w, "%sPolygonVertexIndex: *%d\n", indent.Tabs(depth+1), len(m.PolygonVertexIndices))
	fmt.Fprintf(w, "%sEdges: *%d\n", indent.Tabs(depth+1), len(m.Edges)*2)
	if m.Normals != nil {
		fmt.Fprintf(w, "%sLayerElementNormal: {\n", indent.Tabs(depth+1))
		fmt.Fprintf(w, "%sMappingInformationType: %q\n", indent.Tabs(depth+2), m.Normals.Mapping.String())
		fmt.Fprintf(w, "%sReferenceInformationType: %q\n", indent.Tabs(depth+2), m.Normals.Reference.String())
		fmt.Fprintf(w, "%s}\n", indent.Tabs(depth+1))
	}
	if m.Smoothing != nil {
		fmt.Fprintf(w, "%sLayerElementSmoothing: {\n", indent.Tabs(depth+1))
		fmt.Fprintf(w, "%sMappingInformationType: %q\n", indent.Tabs(depth+2), m.Smoothing.Mapping.String())
		fmt.Fprintf(w, "%s}\n", indent.Tabs(depth+1))
	}
	for _, cs := range m.Colors {
		fmt.Fprintf(w, "%sLayerElementColor: %q {\n", indent.Tabs(depth+1), cs.Name)
		fmt.Fprintf(w, "%sMappingInformationType: %q\n", indent.Tabs(depth+2), cs.Mapping.String())
		fmt.Fprintf(w, "%s}\n", indent.Tabs(depth+1))
	}
	for _, uv := range m.UVSets {
		fmt.Fprintf(w, "%sLayerElementUV: %q {\n", indent.Tabs(depth+1), uv.Name)
		fmt.Fprintf(w, "%sMappingInformationType: %q\n", indent.Tabs(depth+2), uv.Mapping.String())
		fmt.Fprintf(w, "%s}\n", indent.Tabs(depth+1))
	}
	if m.Tangents != nil {
		fmt.Fprintf(w, "%sLayerElementTangent: {\n", indent.Tabs(depth+1))
		fmt.Fprintf(w, "%s}\n", indent.Tabs(depth+1))
	}
	if m.Binormals != nil {
		fmt.Fprintf(w, "%sLayerElementBinormal: {\n", indent.Tabs(depth+1))
		fmt.Fprintf(w, "%s}\n", indent.Tabs(depth+1))
	}
	fmt.Fprintf(w, "%sLayerElementMaterial: {\n", indent.Tabs(depth+1))
	fmt.Fprintf(w, "%sMappingInformationType: %q\n", indent.Tabs(depth+2), m.Materials.Mapping.String())
	fmt.Fprintf(w, "%sReferenceInformationType: %q\n", indent.Tabs(depth+2), m.Materials.Reference.String())
	fmt.Fprintf(w, "%s}\n", indent.Tabs(depth+1))
	fmt.Fprintf(w, "%s}\n", ind)
}

func writeSkinASCII(w *bufio.Writer, s *Skin, depth int) {
	ind := indent.Tabs(depth)
	fmt.Fprintf(w, "%sDeformer: %q, \"Skin\" {\n", ind, s.Name)
	for _, c := range s.Clusters {
		infName := ""
		if c.Influence != nil {
			infName = c.Influence.Name
		}
		fmt.Fprintf(w, "%sCluster: %q {\n", indent.Tabs(depth+1), c.Name)
		fmt.Fprintf(w, "%sLink: %q\n", indent.Tabs(depth+2), infName)
		fmt.Fprintf(w, "%sIndexes: *%d\n", indent.Tabs(depth+2), len(c.Indices))
		fmt.Fprintf(w, "%sWeights: *%d\n", indent.Tabs(depth+2), len(c.Weights))
		fmt.Fprintf(w, "%s}\n", indent.Tabs(depth+1))
	}
	if s.BindPoseName != "" {
		fmt.Fprintf(w, "%sPose: %q, \"BindPose\" {\n", indent.Tabs(depth+1), s.BindPoseName)
		fmt.Fprintf(w, "%s}\n", indent.Tabs(depth+1))
	}
	fmt.Fprintf(w, "%s}\n", ind)
}
