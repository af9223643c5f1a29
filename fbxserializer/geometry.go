// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbxserializer

import (
	"bytes"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"

	"github.com/bhsingleton/dcc-sub000/base/iox/imagex"
	"github.com/bhsingleton/dcc-sub000/colors"
	"github.com/bhsingleton/dcc-sub000/fbxconfig"
	"github.com/bhsingleton/dcc-sub000/fbxnode"
	"github.com/bhsingleton/dcc-sub000/fbxscene"
	"github.com/bhsingleton/dcc-sub000/fbxwriter"
)

// writeGeometry runs the eight-step geometry writer over a mesh shell,
// guarded by the ExportSet's geometry-inclusion flags. outPath names
// the FBX file this export will eventually write, used only to place
// an optional texture thumbnail alongside it.
func writeGeometry(sh *fbxnode.Shell, src fbxscene.Mesh, set fbxconfig.ExportSet, outPath string) {
	m := fbxwriter.NewMesh()

	// 1. Control points.
	for i := 0; i < src.VertexCount(); i++ {
		m.ControlPoints = append(m.ControlPoints, src.VertexPosition(i))
	}

	// 2. Polygons + edges (built exactly once, after all polygons).
	faces := src.FaceVertexIndices()
	for _, face := range faces {
		m.AddPolygon(face)
	}
	m.BuildEdgeArray()

	// 3. Materials + textures.
	writeMaterials(sh, m, src, set, outPath)

	// 4. Normals.
	if set.IncludeNormals && src.HasNormals() {
		el := &fbxwriter.LayerElement{Mapping: fbxwriter.MapByPolygonVertex, Reference: fbxwriter.ReferenceIndexToDirect}
		idx := int32(0)
		for fi, face := range faces {
			for vi := range face {
				n := src.FaceVertexNormal(fi, vi)
				el.Vectors = append(el.Vectors, n)
				el.Indices = append(el.Indices, idx)
				idx++
			}
		}
		m.Normals = el
	}

	// 5. Smoothings: prefer per-edge, else per-face groups, never both.
	if set.IncludeSmoothings {
		switch {
		case src.HasEdgeSmoothings():
			el := &fbxwriter.LayerElement{Mapping: fbxwriter.MapByEdge, Reference: fbxwriter.ReferenceDirect}
			for i := range m.Edges {
				v := int32(0)
				if src.EdgeSmoothing(i) {
					v = 1
				}
				el.Ints = append(el.Ints, v)
			}
			m.Smoothing = el
		case src.HasFaceSmoothingGroups():
			el := &fbxwriter.LayerElement{Mapping: fbxwriter.MapByPolygon, Reference: fbxwriter.ReferenceDirect}
			for fi := range faces {
				el.Ints = append(el.Ints, src.FaceSmoothingGroup(fi))
			}
			m.Smoothing = el
		}
	}

	// 6. Color sets.
	if set.IncludeColorSets {
		for _, name := range src.ColorSetNames() {
			el := fbxwriter.LayerElement{Name: name, Mapping: fbxwriter.MapByPolygonVertex, Reference: fbxwriter.ReferenceIndexToDirect}
			idx := int32(0)
			for fi, face := range faces {
				for vi := range face {
					c := src.FaceVertexColor(name, fi, vi)
					rgba := colors.FromFloat64(c[0], c[1], c[2], c[3])
					el.Colors = append(el.Colors, fbxwriter.Color{
						R: float64(rgba.R) / 255, G: float64(rgba.G) / 255,
						B: float64(rgba.B) / 255, A: float64(rgba.A) / 255,
					})
					el.Indices = append(el.Indices, idx)
					idx++
				}
			}
			m.Colors = append(m.Colors, el)
		}
	}

	// 7. UV sets (always on).
	for _, name := range src.UVSetNames() {
		el := fbxwriter.LayerElement{Name: name, Mapping: fbxwriter.MapByPolygonVertex, Reference: fbxwriter.ReferenceIndexToDirect}
		idx := int32(0)
		for fi, face := range faces {
			for vi := range face {
				uv := src.FaceVertexUV(name, fi, vi)
				el.UVs = append(el.UVs, uv)
				el.Indices = append(el.Indices, idx)
				idx++
			}
		}
		m.UVSets = append(m.UVSets, el)
	}

	// 8. Tangents + binormals, gated on normals also being requested.
	if set.IncludeTangentsAndBinormals && set.IncludeNormals {
		for _, name := range src.UVSetNames() {
			if !src.HasTangents(name) {
				continue
			}
			tangents := &fbxwriter.LayerElement{Name: name, Mapping: fbxwriter.MapByPolygonVertex, Reference: fbxwriter.ReferenceDirect}
			binormals := &fbxwriter.LayerElement{Name: name, Mapping: fbxwriter.MapByPolygonVertex, Reference: fbxwriter.ReferenceDirect}
			for fi, face := range faces {
				for vi := range face {
					tangents.Vectors = append(tangents.Vectors, src.FaceVertexTangent(name, fi, vi))
					binormals.Vectors = append(binormals.Vectors, src.FaceVertexBinormal(name, fi, vi))
				}
			}
			m.Tangents, m.Binormals = tangents, binormals
		}
	}

	sh.FbxNode.Mesh = m
}

// writeMaterials creates (or reuses) a Lambert surface material per
// assignment, wires its diffuse file texture when the path resolves,
// and fills the mesh's per-polygon material index array.
func writeMaterials(sh *fbxnode.Shell, m *fbxwriter.Mesh, src fbxscene.Mesh, set fbxconfig.ExportSet, outPath string) {
	assignments := src.MaterialAssignments()
	for _, a := range assignments {
		mat := &fbxwriter.Material{
			Name:    a.MaterialName,
			Diffuse: fbxwriter.Color{R: a.DiffuseColor[0], G: a.DiffuseColor[1], B: a.DiffuseColor[2], A: a.DiffuseColor[3]},
			Shading: "Lambert",
		}
		if a.TexturePath != "" {
			if texPath, ok := resolveTexture(a.TexturePath, outPath, set.GenerateThumbnails); ok {
				mat.DiffuseTexture = texPath
			}
		}
		sh.FbxNode.Materials = append(sh.FbxNode.Materials, mat)
	}

	faces := src.FaceVertexIndices()
	for fi := range faces {
		m.Materials.Indices = append(m.Materials.Indices, int32(src.FaceMaterialIndex(fi)))
	}
}

// resolveTexture sniffs path's real file type, logging and skipping
// (but never failing the export) on a mismatch against its extension,
// then decodes it to log a non-power-of-two dimension warning and,
// when generateThumbnail is set, write a downsampled copy next to
// outPath.
func resolveTexture(path, outPath string, generateThumbnail bool) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("fbxserializer: texture unreadable, omitting", "path", path, "error", err)
		return "", false
	}
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		slog.Warn("fbxserializer: texture type unrecognized, omitting", "path", path)
		return "", false
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext != "" && ext != kind.Extension && !(ext == "jpg" && kind.Extension == "jpeg") {
		slog.Warn("fbxserializer: texture extension does not match sniffed type, omitting", "path", path, "ext", ext, "sniffed", kind.Extension)
		return "", false
	}

	img, _, err := imagex.Read(bytes.NewReader(data))
	if err != nil {
		return path, true
	}
	b := img.Bounds()
	if !isPowerOfTwo(b.Dx()) || !isPowerOfTwo(b.Dy()) {
		slog.Warn("fbxserializer: texture is not power-of-two", "path", path, "width", b.Dx(), "height", b.Dy())
	}
	if generateThumbnail && outPath != "" {
		if err := writeThumbnail(img, outPath); err != nil {
			slog.Warn("fbxserializer: thumbnail generation failed", "path", path, "error", err)
		}
	}

	return path, true
}

// writeThumbnail downsamples img and writes it next to the FBX output,
// only called when ExportSet.GenerateThumbnails is set.
func writeThumbnail(img image.Image, fbxPath string) error {
	thumb := transform.Resize(imagex.AsRGBA(img), 256, 256, transform.Linear)
	out := strings.TrimSuffix(fbxPath, filepath.Ext(fbxPath)) + "_thumb.png"
	return imagex.Save(thumb, out)
}

func isPowerOfTwo(n int) bool { return n > 0 && n&(n-1) == 0 }
