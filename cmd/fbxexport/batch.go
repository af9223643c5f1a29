// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/bhsingleton/dcc-sub000/base/atomicx"
	"github.com/bhsingleton/dcc-sub000/cli"
	"github.com/bhsingleton/dcc-sub000/fbxconfig"
	"github.com/bhsingleton/dcc-sub000/fbxscene"
)

// BatchCmd exports every ExportSet of every fbxconfig sidecar file in a
// directory against one shared scene snapshot. Jobs run across
// independent single-threaded Serializer instances, bounded by
// Config.Concurrency — there is no concurrency within a single export.
var BatchCmd = &cli.Cmd[*Config]{
	Name: "batch",
	Doc:  "export every ExportSet of every sidecar file in a directory",
	Func: func(cfg *Config) error { return runBatch(cfg) },
}

func runBatch(cfg *Config) error {
	scene, err := fbxscene.LoadMemory(cfg.Scene)
	if err != nil {
		return fmt.Errorf("fbxexport batch: %w", err)
	}

	sidecars, err := sidecarFiles(cfg.Dir)
	if err != nil {
		return fmt.Errorf("fbxexport batch: %w", err)
	}
	if len(sidecars) == 0 {
		return fmt.Errorf("fbxexport batch: no fbxconfig sidecar files found in %q", cfg.Dir)
	}

	jobs := cfg.Concurrency
	if jobs <= 0 {
		jobs = 1
	}
	sem := make(chan struct{}, jobs)
	group, _ := errgroup.WithContext(context.Background())
	var exported atomicx.Counter

	for _, path := range sidecars {
		path := path
		group.Go(func() error {
			sem <- struct{}{}
			defer func() { <-sem }()
			return runBatchJob(scene, path, cfg, &exported)
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}
	slog.Info("fbxexport batch: done", "sidecars", len(sidecars), "exportSets", exported.Value())
	return nil
}

// runBatchJob exports every ExportSet in one sidecar file, against a
// scene snapshot shared (read-only) across all concurrently running
// jobs. exported is bumped once per successfully written ExportSet,
// shared across every concurrently running job.
func runBatchJob(scene *fbxscene.Memory, sidecarPath string, cfg *Config, exported *atomicx.Counter) error {
	asset, err := fbxconfig.Load(sidecarPath)
	if err != nil {
		return fmt.Errorf("fbxexport batch: %s: %w", sidecarPath, err)
	}
	if err := asset.CheckSchemaVersion(); err != nil {
		return fmt.Errorf("fbxexport batch: %s: %w", sidecarPath, err)
	}

	for id := range asset.ExportSets {
		set := asset.ExportSets[id]
		jobCfg := *cfg
		jobCfg.ExportSet = id
		jobCfg.Out = batchOutPath(cfg.Dir, sidecarPath, set.Name)
		jobCfg.SchemaVersion = asset.FileVersion
		if asset.FileType != "" {
			jobCfg.Format = asset.FileType
		}
		if err := exportOne(scene, asset, &jobCfg); err != nil {
			return fmt.Errorf("fbxexport batch: %s: export set %q: %w", sidecarPath, set.Name, err)
		}
		exported.Inc()
		slog.Info("fbxexport batch: exported", "sidecar", sidecarPath, "set", set.Name, "out", jobCfg.Out)
	}
	return nil
}

// sidecarFiles returns every .yaml/.yml/.toml file directly in dir,
// sorted for deterministic job ordering.
func sidecarFiles(dir string) ([]string, error) {
	var out []string
	for _, pattern := range []string{"*.yaml", "*.yml", "*.toml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		out = append(out, matches...)
	}
	sort.Strings(out)
	return out, nil
}
