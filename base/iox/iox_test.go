// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iox

import (
	"encoding/json"
	"io"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	A string `json:"a"`
	B int    `json:"b"`
}

func jsonDecoder(r io.Reader) Decoder { return json.NewDecoder(r) }
func jsonEncoder(w io.Writer) Encoder { return json.NewEncoder(w) }

func TestWriteBytesReadBytesRoundTrip(t *testing.T) {
	in := &fixture{A: "x", B: 7}
	data, err := WriteBytes(in, jsonEncoder)
	require.NoError(t, err)

	out := &fixture{}
	require.NoError(t, ReadBytes(out, data, jsonDecoder))
	assert.Equal(t, in, out)
}

func TestSaveOpenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.json")
	in := &fixture{A: "y", B: 3}
	require.NoError(t, Save(in, path, jsonEncoder))

	out := &fixture{}
	require.NoError(t, Open(out, path, jsonDecoder))
	assert.Equal(t, in, out)
}

func TestOpenFilesLaterFileOverrides(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.json")
	second := filepath.Join(dir, "b.json")
	require.NoError(t, Save(&fixture{A: "first", B: 1}, first, jsonEncoder))
	require.NoError(t, Save(&fixture{B: 2}, second, jsonEncoder))

	out := &fixture{}
	require.NoError(t, OpenFiles(out, []string{first, second}, jsonDecoder))
	assert.Equal(t, "first", out.A)
	assert.Equal(t, 2, out.B)
}

func TestOpenFSReadsFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"fixture.json": {Data: []byte(`{"a":"z","b":9}`)},
	}
	out := &fixture{}
	require.NoError(t, OpenFS(out, fsys, "fixture.json", jsonDecoder))
	assert.Equal(t, &fixture{A: "z", B: 9}, out)
}

func TestOpenMissingFileErrors(t *testing.T) {
	out := &fixture{}
	assert.Error(t, Open(out, filepath.Join(t.TempDir(), "missing.json"), jsonDecoder))
}
