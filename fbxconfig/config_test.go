// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbxconfig

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureAsset() Asset {
	return Asset{
		Namespace:   "char01",
		FileVersion: "7.4.0",
		FileType:    "binary",
		FrameRate:   30,
		ExportSets: []ExportSet{
			{
				Name:         "main",
				Scale:        1,
				Skeleton:     ObjectSet{IncludeObjects: []string{"hip"}, IncludeChildren: true},
				Mesh:         ObjectSet{IncludeObjects: []string{"body"}},
				IncludeSkins: true,
				MoveToOrigin: true,
			},
		},
		ExportRanges: []ExportRange{
			{Name: "walk", ExportSetID: 0, StartFrame: 0, EndFrame: 30, Step: 1},
		},
	}
}

func TestSaveLoadYAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "asset.yaml")
	want := fixtureAsset()

	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveLoadTOMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "asset.toml")
	want := fixtureAsset()

	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCheckSchemaVersion(t *testing.T) {
	ok := Asset{FileVersion: "7.4.0"}
	assert.NoError(t, ok.CheckSchemaVersion())

	bad := Asset{FileVersion: "not-a-version"}
	assert.Error(t, bad.CheckSchemaVersion())

	outOfRange := Asset{FileVersion: "12.0.0"}
	assert.Error(t, outOfRange.CheckSchemaVersion())
}

func TestExportSetByID(t *testing.T) {
	a := fixtureAsset()
	set, err := a.ExportSetByID(0)
	require.NoError(t, err)
	assert.Equal(t, "main", set.Name)

	_, err = a.ExportSetByID(5)
	assert.Error(t, err)
}
