// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

// Config holds every flag shared across fbxexport's subcommands. Not
// every field is meaningful to every command: export reads Scene,
// Asset, ExportSet, and ExportRange; batch and watch read Dir and
// Scene instead of Asset.
type Config struct {
	// Scene is the path to a YAML scene snapshot, the stand-in for a
	// live host scene connection.
	Scene string `flag:"scene"`

	// Asset is the path to a single fbxconfig sidecar file, used by
	// the export command.
	Asset string `flag:"asset"`

	// Dir is the directory of fbxconfig sidecar files batch and watch
	// operate on.
	Dir string `flag:"dir"`

	// ExportSet is the ordinal index into Asset's ExportSets, used by
	// the export command.
	ExportSet int `flag:"set" default:"0"`

	// ExportRange is the ordinal index into Asset's ExportRanges to
	// bake after the export set is composed; -1 skips baking.
	ExportRange int `flag:"range" default:"-1"`

	// Out is the FBX file path the export command writes to.
	Out string `flag:"out"`

	// Format selects "binary" or "ascii" output.
	Format string `flag:"format" default:"binary"`

	// SchemaVersion is the FBX SDK version string written into the
	// document the export command produces, eg "7.4.0". batch and watch
	// write each sidecar's FileVersion instead.
	SchemaVersion string `flag:"schema" default:"7.4.0"`

	// Concurrency bounds how many batch jobs run at once.
	Concurrency int `flag:"jobs,j" default:"4"`
}
