// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fbxconfig holds the read-only configuration surface the
// serializer consumes: export sets, export ranges, and the asset that
// ties a sequence of export ranges to an export set list. Persistence
// is a YAML or TOML sidecar file, chosen by the sidecar's own
// extension — something an embedded scene-file property never needed,
// but a batch/CLI-driven export does.
package fbxconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/bhsingleton/dcc-sub000/base/iox/yamlx"
	"github.com/bhsingleton/dcc-sub000/fbxscene"
)

// ObjectSet is one include/exclude object-set specification, as
// carried by an [ExportSet]'s skeleton/mesh/camera members.
type ObjectSet struct {
	IncludeType     fbxscene.EnumMode `yaml:"includeType" toml:"includeType"`
	IncludeObjects  []string          `yaml:"includeObjects" toml:"includeObjects"`
	IncludeChildren bool              `yaml:"includeChildren" toml:"includeChildren"`
	ExcludeType     fbxscene.EnumMode `yaml:"excludeType" toml:"excludeType"`
	ExcludeObjects  []string          `yaml:"excludeObjects" toml:"excludeObjects"`
	ExcludeChildren bool              `yaml:"excludeChildren" toml:"excludeChildren"`
}

// ExportSet groups the skeleton/mesh/camera object sets exported
// together, plus the geometry-inclusion flags the geometry writer
// reads.
type ExportSet struct {
	Name     string    `yaml:"name" toml:"name"`
	Scale    float64   `yaml:"scale" toml:"scale"`
	Skeleton ObjectSet `yaml:"skeleton" toml:"skeleton"`
	Mesh     ObjectSet `yaml:"mesh" toml:"mesh"`
	Camera   ObjectSet `yaml:"camera" toml:"camera"`

	MoveToOrigin       bool `yaml:"moveToOrigin" toml:"moveToOrigin"`
	RemoveDisplayLayers bool `yaml:"removeDisplayLayers" toml:"removeDisplayLayers"`
	RemoveContainers    bool `yaml:"removeContainers" toml:"removeContainers"`

	IncludeNormals              bool `yaml:"includeNormals" toml:"includeNormals"`
	IncludeSmoothings           bool `yaml:"includeSmoothings" toml:"includeSmoothings"`
	IncludeTangentsAndBinormals bool `yaml:"includeTangentsAndBinormals" toml:"includeTangentsAndBinormals"`
	IncludeColorSets            bool `yaml:"includeColorSets" toml:"includeColorSets"`
	IncludeSkins                bool `yaml:"includeSkins" toml:"includeSkins"`
	IncludeBlendshapes          bool `yaml:"includeBlendshapes" toml:"includeBlendshapes"`

	SafeOverwrite     bool `yaml:"safeOverwrite" toml:"safeOverwrite"`
	GenerateThumbnails bool `yaml:"generateThumbnails" toml:"generateThumbnails"`
}

// ExportRange references an ExportSet by ordinal index within its
// asset, plus the frame range and step to bake.
type ExportRange struct {
	Name        string  `yaml:"name" toml:"name"`
	ExportSetID int     `yaml:"exportSetId" toml:"exportSetId"`
	StartFrame  float64 `yaml:"startFrame" toml:"startFrame"`
	EndFrame    float64 `yaml:"endFrame" toml:"endFrame"`
	Step        float64 `yaml:"step" toml:"step"`
	UseTimeline bool    `yaml:"useTimeline" toml:"useTimeline"`
	MoveToOrigin bool   `yaml:"moveToOrigin" toml:"moveToOrigin"`
}

// Asset ties a schema version and file type to the export sets/ranges
// defined for one scene asset.
type Asset struct {
	Namespace     string        `yaml:"namespace" toml:"namespace"`
	FileVersion   string        `yaml:"fileVersion" toml:"fileVersion"`
	FileType      string        `yaml:"fileType" toml:"fileType"` // "binary" | "ascii"
	FrameRate     float64       `yaml:"frameRate" toml:"frameRate"`
	ExportSets    []ExportSet   `yaml:"exportSets" toml:"exportSets"`
	ExportRanges  []ExportRange `yaml:"exportRanges" toml:"exportRanges"`
}

// CheckSchemaVersion validates FileVersion parses as semver and falls
// within the supported FBX 2009-2020 window (schema major 2009..2020
// expressed as the dotted SDK version, eg "7.4.0" for FBX 2014-2020).
func (a Asset) CheckSchemaVersion() error {
	v, err := semver.NewVersion(a.FileVersion)
	if err != nil {
		return fmt.Errorf("fbxconfig: invalid fileVersion %q: %w", a.FileVersion, err)
	}
	if v.Major() < 6 || v.Major() > 7 {
		return fmt.Errorf("fbxconfig: unsupported schema version %s", v)
	}
	return nil
}

// ExportSetByID returns the ExportSet for an ExportRange's ordinal
// index, or an error if out of range.
func (a Asset) ExportSetByID(id int) (ExportSet, error) {
	if id < 0 || id >= len(a.ExportSets) {
		return ExportSet{}, fmt.Errorf("fbxconfig: export set index %d out of range (have %d)", id, len(a.ExportSets))
	}
	return a.ExportSets[id], nil
}

// Load reads an [Asset] from a YAML or TOML sidecar file, chosen by
// path's extension.
func Load(path string) (Asset, error) {
	var a Asset
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		var data []byte
		data, err = os.ReadFile(path)
		if err == nil {
			err = toml.Unmarshal(data, &a)
		}
	default:
		err = yamlx.Open(&a, path)
	}
	if err != nil {
		return Asset{}, fmt.Errorf("fbxconfig.Load: %s: %w", path, err)
	}
	return a, nil
}

// Save writes an [Asset] to a YAML or TOML sidecar file, chosen by
// path's extension.
func Save(path string, a Asset) error {
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		var data []byte
		data, err = toml.Marshal(a)
		if err == nil {
			err = os.WriteFile(path, data, 0o644)
		}
	default:
		err = yamlx.Save(a, path)
	}
	if err != nil {
		return fmt.Errorf("fbxconfig.Save: %s: %w", path, err)
	}
	return nil
}
