// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbxwriter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureDocument() *Document {
	doc := NewDocument("7.4.0")
	hip := NewNode("hip", "LimbNode")
	spine := NewNode("spine", "LimbNode")
	hip.AddChild(spine)
	doc.Root.AddChild(hip)
	return doc
}

func TestNewDocumentDefaults(t *testing.T) {
	doc := NewDocument("7.4.0")
	assert.Equal(t, UpAxisY, doc.Settings.UpAxis)
	assert.Equal(t, "cm", doc.Settings.Unit)
	assert.Equal(t, TimeMode30, doc.Settings.TimeMode)
	assert.Equal(t, "Take 001", doc.AnimStackName)
	assert.NotNil(t, doc.AnimLayer)
}

func TestWalkVisitsDepthFirst(t *testing.T) {
	doc := fixtureDocument()
	var names []string
	doc.Walk(func(n *Node) { names = append(names, n.Name) })
	assert.Equal(t, []string{"hip", "spine"}, names)
	assert.Equal(t, 2, doc.NodeCount())
}

func TestSetTimeSpanWritesDefaultTimeSpanIntoASCII(t *testing.T) {
	doc := fixtureDocument()
	doc.Settings.SetTimeSpan(0, 10)
	assert.Equal(t, 0.0, doc.Settings.TimeSpanStart)
	assert.Equal(t, 10.0, doc.Settings.TimeSpanEnd)

	encoded, err := doc.Encode(FormatASCII)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), "TimeSpanStart: 0\n")
	assert.Contains(t, string(encoded), "TimeSpanEnd: 10\n")
}

func TestEncodeDecodeASCIIRoundTrip(t *testing.T) {
	doc := fixtureDocument()
	encoded, err := doc.Encode(FormatASCII)
	require.NoError(t, err)

	summary, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.NodeCount)
}

func TestEncodeBinaryProducesBytes(t *testing.T) {
	doc := fixtureDocument()
	encoded, err := doc.Encode(FormatBinary)
	require.NoError(t, err)
	assert.NotEmpty(t, encoded)
}

func TestDigestIsStableAcrossRepeatedEncodes(t *testing.T) {
	doc := fixtureDocument()
	a, err := doc.Encode(FormatBinary)
	require.NoError(t, err)
	b, err := doc.Encode(FormatBinary)
	require.NoError(t, err)

	digestA, err := Digest(a)
	require.NoError(t, err)
	digestB, err := Digest(b)
	require.NoError(t, err)
	assert.Equal(t, digestA, digestB)
}

func TestWriteFileSafeOverwrite(t *testing.T) {
	doc := fixtureDocument()
	path := filepath.Join(t.TempDir(), "out.fbx")

	digest1, err := WriteFile(doc, path, FormatBinary, false)
	require.NoError(t, err)
	assert.NotEmpty(t, digest1)

	digest2, err := WriteFile(doc, path, FormatBinary, true)
	require.NoError(t, err)
	assert.Equal(t, digest1, digest2)
}
