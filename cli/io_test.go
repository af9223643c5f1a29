// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ioTestConfig struct {
	Name string `toml:"Name"`
}

func TestOpenWithIncludesFindsFileOnIncludePath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.toml"), []byte(`Name = "widget"`), 0o644))

	opts := &Options{IncludePaths: []string{dir}}
	cfg := &ioTestConfig{}
	require.NoError(t, OpenWithIncludes(opts, cfg, "app.toml"))
	assert.Equal(t, "widget", cfg.Name)
}

func TestOpenWithIncludesMissingFile(t *testing.T) {
	opts := &Options{IncludePaths: []string{t.TempDir()}}
	cfg := &ioTestConfig{}
	assert.Error(t, OpenWithIncludes(opts, cfg, "nope.toml"))
}

func TestOpenReadsDirectPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.toml")
	require.NoError(t, os.WriteFile(path, []byte(`Name = "gizmo"`), 0o644))

	cfg := &ioTestConfig{}
	require.NoError(t, Open(cfg, path))
	assert.Equal(t, "gizmo", cfg.Name)
}
