// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"

	"github.com/bhsingleton/dcc-sub000/cli"
	"github.com/bhsingleton/dcc-sub000/fbxconfig"
	"github.com/bhsingleton/dcc-sub000/fbxscene"
	"github.com/bhsingleton/dcc-sub000/fbxserializer"
)

// ExportCmd runs one export set (and, if -range is non-negative, bakes
// one export range onto it) to a single FBX file. It is the Root
// command: running fbxexport with no subcommand name runs export.
var ExportCmd = &cli.Cmd[*Config]{
	Name: "export",
	Doc:  "export a single ExportSet (and optionally bake an ExportRange) to an FBX file",
	Root: true,
	Func: func(cfg *Config) error { return runExport(cfg) },
}

func runExport(cfg *Config) error {
	scene, err := fbxscene.LoadMemory(cfg.Scene)
	if err != nil {
		return fmt.Errorf("fbxexport: %w", err)
	}
	asset, err := fbxconfig.Load(cfg.Asset)
	if err != nil {
		return fmt.Errorf("fbxexport: %w", err)
	}
	if err := asset.CheckSchemaVersion(); err != nil {
		return err
	}
	return exportOne(scene, asset, cfg)
}

// exportOne runs a single Serialize*/WriteFile cycle, shared by the
// export and batch commands.
func exportOne(scene *fbxscene.Memory, asset fbxconfig.Asset, cfg *Config) error {
	set, err := asset.ExportSetByID(cfg.ExportSet)
	if err != nil {
		return fmt.Errorf("fbxexport: %w", err)
	}

	ser := fbxserializer.NewSerializer(scene, cfg.SchemaVersion, outputFormat(cfg))
	defer ser.Close()

	shells, err := ser.SerializeExportSet(asset.Namespace, set, cfg.Out)
	if err != nil {
		return fmt.Errorf("fbxexport: serializing export set %q: %w", set.Name, err)
	}

	if cfg.ExportRange >= 0 {
		if cfg.ExportRange >= len(asset.ExportRanges) {
			return fmt.Errorf("fbxexport: range index %d out of range (have %d)", cfg.ExportRange, len(asset.ExportRanges))
		}
		rng := asset.ExportRanges[cfg.ExportRange]
		progress := func(done, total int) {
			slog.Info("fbxexport: baking", "range", rng.Name, "done", done, "total", total)
		}
		if err := ser.SerializeExportRange(asset, rng, skeletonShells(shells), progress); err != nil {
			return fmt.Errorf("fbxexport: baking range %q: %w", rng.Name, err)
		}
	}

	digest, err := ser.WriteFile(cfg.Out, set.SafeOverwrite)
	if err != nil {
		return fmt.Errorf("fbxexport: writing %q: %w", cfg.Out, err)
	}
	slog.Info("fbxexport: wrote file", "path", cfg.Out, "digest", digest)
	return nil
}
