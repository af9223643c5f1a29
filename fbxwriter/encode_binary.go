// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbxwriter

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// binaryMagic is the 21-byte magic string every FBX binary file opens
// with (18 ASCII bytes, padded to 21), copied from the 7500-era
// format's own header.
var binaryMagic = []byte("Kaydara FBX Binary  \x00")

// record type tags for the simplified binary container. Each node
// record is: tag byte, name and attribute strings (uint32 length plus
// bytes), nine float32 TRS values, inherit-type and rotation-order
// bytes, a mesh flag byte and mesh payload, a skin flag byte and
// cluster list, the material names, uint32 child count, children. This mirrors the
// real format's nested length-prefixed node records without
// replicating every property-type byte code Autodesk's spec defines —
// the FBX SDK is the only consumer of bit-exact binary FBX, and
// nothing in this module links against it.
const (
	tagNode byte = 1
)

func (d *Document) encodeBinary(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.Write(binaryMagic); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(binarySchemaCode(d.SchemaVersion))); err != nil {
		return err
	}

	if err := writeString(bw, d.SchemaVersion); err != nil {
		return err
	}
	if err := writeString(bw, d.Settings.Unit); err != nil {
		return err
	}
	if err := bw.WriteByte(byte(d.Settings.UpAxis)); err != nil {
		return err
	}
	if err := bw.WriteByte(byte(d.Settings.TimeMode)); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, d.Settings.TimeSpanStart); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, d.Settings.TimeSpanEnd); err != nil {
		return err
	}

	if err := binary.Write(bw, binary.LittleEndian, uint32(len(d.Root.Children))); err != nil {
		return err
	}
	for _, n := range d.Root.Children {
		if err := writeNodeBinary(bw, n); err != nil {
			return err
		}
	}

	if err := writeString(bw, d.AnimStackName); err != nil {
		return err
	}
	if err := writeString(bw, d.AnimLayer.Name); err != nil {
		return err
	}
	names := sortedCurveNames(d.AnimLayer)
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(names))); err != nil {
		return err
	}
	for _, name := range names {
		c := d.AnimLayer.Curves[name]
		if err := writeString(bw, c.Name); err != nil {
			return err
		}
		if err := binary.Write(bw, binary.LittleEndian, uint32(len(c.Keys))); err != nil {
			return err
		}
		for _, k := range c.Keys {
			if err := binary.Write(bw, binary.LittleEndian, k.Time); err != nil {
				return err
			}
			if err := binary.Write(bw, binary.LittleEndian, k.Value); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

func binarySchemaCode(version string) int {
	// FBX encodes its schema version as eg 7400 for "7.4.0"; callers
	// pass the dotted form, so translate it the way the real format does.
	var maj, min, patch int
	n, _ := fmt.Sscanf(version, "%d.%d.%d", &maj, &min, &patch)
	if n < 2 {
		return 7400
	}
	return maj*1000 + min*100 + patch
}

func writeString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func writeNodeBinary(w *bufio.Writer, n *Node) error {
	if err := w.WriteByte(tagNode); err != nil {
		return err
	}
	if err := writeString(w, n.Name); err != nil {
		return err
	}
	if err := writeString(w, n.Attribute); err != nil {
		return err
	}
	t := n.Properties
	vals := []float32{
		t.Translation.X, t.Translation.Y, t.Translation.Z,
		t.Rotation.X, t.Rotation.Y, t.Rotation.Z,
		t.Scaling.X, t.Scaling.Y, t.Scaling.Z,
	}
	for _, v := range vals {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	if err := w.WriteByte(byte(t.InheritType)); err != nil {
		return err
	}
	if err := w.WriteByte(byte(t.RotationOrder)); err != nil {
		return err
	}

	hasMesh := byte(0)
	if n.Mesh != nil {
		hasMesh = 1
	}
	if err := w.WriteByte(hasMesh); err != nil {
		return err
	}
	if n.Mesh != nil {
		if err := writeMeshBinary(w, n.Mesh); err != nil {
			return err
		}
	}

	hasSkin := byte(0)
	if n.Skin != nil {
		hasSkin = 1
	}
	if err := w.WriteByte(hasSkin); err != nil {
		return err
	}
	if n.Skin != nil {
		if err := binary.Write(w, binary.LittleEndian, uint32(len(n.Skin.Clusters))); err != nil {
			return err
		}
		for _, c := range n.Skin.Clusters {
			if err := writeString(w, c.Name); err != nil {
				return err
			}
			if err := binary.Write(w, binary.LittleEndian, uint32(len(c.Indices))); err != nil {
				return err
			}
		}
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(len(n.Materials))); err != nil {
		return err
	}
	for _, m := range n.Materials {
		if err := writeString(w, m.Name); err != nil {
			return err
		}
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(len(n.Children))); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := writeNodeBinary(w, c); err != nil {
			return err
		}
	}
	return nil
}

func writeMeshBinary(w *bufio.Writer, m *Mesh) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(m.ControlPoints))); err != nil {
		return err
	}
	for _, p := range m.ControlPoints {
		if err := binary.Write(w, binary.LittleEndian, [3]float32{p.X, p.Y, p.Z}); err != nil {
			return err
		}
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(m.PolygonVertexIndices))); err != nil {
		return err
	}
	for _, idx := range m.PolygonVertexIndices {
		if err := binary.Write(w, binary.LittleEndian, idx); err != nil {
			return err
		}
	}
	return binary.Write(w, binary.LittleEndian, uint32(len(m.Edges)))
}
