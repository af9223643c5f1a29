// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbxscene

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhsingleton/dcc-sub000/math32"
)

func TestSaveLoadMemoryRoundTrip(t *testing.T) {
	m := NewMemory()
	m.Namespace = "char01"
	m.Up = math32.AxisZ
	m.TimelineStart = 0
	m.TimelineEnd = 60
	m.AddNode(&MemoryNode{Handle: 1, Name: "hip", Kind: KindJoint})
	m.AddNode(&MemoryNode{Handle: 2, Name: "spine", Parent: 1, HasParent: true, Kind: KindJoint})

	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, SaveMemory(path, m))

	got, err := LoadMemory(path)
	require.NoError(t, err)

	assert.Equal(t, "char01", got.Namespace)
	assert.Equal(t, math32.AxisZ, got.Up)
	assert.Equal(t, 60.0, got.TimelineEnd)
	require.Len(t, got.Nodes, 2)
	assert.Equal(t, "hip", got.Nodes[0].Name)
	assert.Equal(t, "spine", got.Nodes[1].Name)
	assert.True(t, got.Nodes[1].HasParent)
}

func TestLoadMemoryMissingFile(t *testing.T) {
	_, err := LoadMemory(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
