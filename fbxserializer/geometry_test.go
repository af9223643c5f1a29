// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbxserializer

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNGFixture(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0, A: 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestIsPowerOfTwo(t *testing.T) {
	assert.True(t, isPowerOfTwo(1))
	assert.True(t, isPowerOfTwo(256))
	assert.False(t, isPowerOfTwo(0))
	assert.False(t, isPowerOfTwo(-4))
	assert.False(t, isPowerOfTwo(255))
}

func TestResolveTextureAcceptsMatchingPNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "diffuse.png")
	writePNGFixture(t, path, 64, 64)

	got, ok := resolveTexture(path, filepath.Join(dir, "out.fbx"), false)
	assert.True(t, ok)
	assert.Equal(t, path, got)
}

func TestResolveTextureRejectsExtensionMismatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "diffuse.jpg")
	writePNGFixture(t, path, 32, 32)

	_, ok := resolveTexture(path, filepath.Join(dir, "out.fbx"), false)
	assert.False(t, ok)
}

func TestResolveTextureMissingFile(t *testing.T) {
	dir := t.TempDir()
	_, ok := resolveTexture(filepath.Join(dir, "missing.png"), filepath.Join(dir, "out.fbx"), false)
	assert.False(t, ok)
}

func TestResolveTextureGeneratesThumbnail(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "diffuse.png")
	writePNGFixture(t, path, 64, 64)
	outPath := filepath.Join(dir, "out.fbx")

	got, ok := resolveTexture(path, outPath, true)
	assert.True(t, ok)
	assert.Equal(t, path, got)

	_, err := os.Stat(filepath.Join(dir, "out_thumb.png"))
	assert.NoError(t, err)
}
