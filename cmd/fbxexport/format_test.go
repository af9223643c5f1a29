// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bhsingleton/dcc-sub000/fbxnode"
	"github.com/bhsingleton/dcc-sub000/fbxwriter"
)

func TestOutputFormat(t *testing.T) {
	assert.Equal(t, fbxwriter.FormatASCII, outputFormat(&Config{Format: "ascii"}))
	assert.Equal(t, fbxwriter.FormatASCII, outputFormat(&Config{Format: "ASCII"}))
	assert.Equal(t, fbxwriter.FormatBinary, outputFormat(&Config{Format: "binary"}))
	assert.Equal(t, fbxwriter.FormatBinary, outputFormat(&Config{Format: ""}))
}

func TestBatchOutPath(t *testing.T) {
	got := batchOutPath("/out", "/sidecars/char01.yaml", "main")
	assert.Equal(t, "/out/char01_main.fbx", got)
}

func TestSkeletonShellsFiltersByKind(t *testing.T) {
	shells := []*fbxnode.Shell{
		{Kind: "Joint"},
		{Kind: "Mesh"},
		{Kind: "Joint"},
		{Kind: "Camera"},
	}
	got := skeletonShells(shells)
	assert.Len(t, got, 2)
	for _, sh := range got {
		assert.Equal(t, "Joint", sh.Kind)
	}
}
