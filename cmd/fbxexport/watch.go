// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/bhsingleton/dcc-sub000/cli"
	"github.com/bhsingleton/dcc-sub000/fbxconfig"
	"github.com/bhsingleton/dcc-sub000/fbxnode"
	"github.com/bhsingleton/dcc-sub000/fbxscene"
	"github.com/bhsingleton/dcc-sub000/fbxserializer"
)

// WatchCmd re-exports every ExportSet of a sidecar file each time that
// file changes on disk, reusing one Serializer per sidecar across
// re-exports so the allocator keeps handing out the same FBX node for
// a scene node that survives between edits.
var WatchCmd = &cli.Cmd[*Config]{
	Name: "watch",
	Doc:  "re-export a directory's sidecar files whenever they change",
	Func: func(cfg *Config) error { return runWatch(cfg) },
}

// watchAssetState is the per-sidecar state a watch run carries across
// fsnotify events: the live Serializer (so its Registry persists) and
// the most recently reserved shells, reconciled against on every
// subsequent change.
type watchAssetState struct {
	serializer *fbxserializer.Serializer
	prevShells map[int][]*fbxnode.Shell // by ExportSet ordinal
}

func runWatch(cfg *Config) error {
	scene, err := fbxscene.LoadMemory(cfg.Scene)
	if err != nil {
		return fmt.Errorf("fbxexport watch: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fbxexport watch: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(cfg.Dir); err != nil {
		return fmt.Errorf("fbxexport watch: %w", err)
	}

	sidecars, err := sidecarFiles(cfg.Dir)
	if err != nil {
		return fmt.Errorf("fbxexport watch: %w", err)
	}

	var mu sync.Mutex
	states := map[string]*watchAssetState{}

	reexport := func(path string) {
		mu.Lock()
		defer mu.Unlock()
		if err := watchReexport(scene, path, cfg, states); err != nil {
			slog.Error("fbxexport watch: re-export failed", "sidecar", path, "error", err)
		}
	}

	slog.Info("fbxexport watch: initial export", "dir", cfg.Dir, "count", len(sidecars))
	for _, path := range sidecars {
		reexport(path)
	}

	slog.Info("fbxexport watch: watching for changes", "dir", cfg.Dir)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isSidecarEvent(event) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				reexport(event.Name)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("fbxexport watch: watcher error", "error", err)
		}
	}
}

func isSidecarEvent(event fsnotify.Event) bool {
	for _, suffix := range []string{".yaml", ".yml", ".toml"} {
		if len(event.Name) >= len(suffix) && event.Name[len(event.Name)-len(suffix):] == suffix {
			return true
		}
	}
	return false
}

// watchReexport re-serializes every ExportSet in one sidecar file,
// reconciling each set's shells against the state left by the previous
// call for that same sidecar, if any.
func watchReexport(scene *fbxscene.Memory, sidecarPath string, cfg *Config, states map[string]*watchAssetState) error {
	asset, err := fbxconfig.Load(sidecarPath)
	if err != nil {
		return err
	}
	if err := asset.CheckSchemaVersion(); err != nil {
		return err
	}

	state, ok := states[sidecarPath]
	if !ok {
		format := outputFormat(cfg)
		if asset.FileType != "" {
			cfg2 := *cfg
			cfg2.Format = asset.FileType
			format = outputFormat(&cfg2)
		}
		state = &watchAssetState{
			serializer: fbxserializer.NewSerializer(scene, asset.FileVersion, format),
			prevShells: map[int][]*fbxnode.Shell{},
		}
		states[sidecarPath] = state
	}

	for id := range asset.ExportSets {
		set := asset.ExportSets[id]
		outPath := batchOutPath(cfg.Dir, sidecarPath, set.Name)
		shells, err := state.serializer.SerializeExportSetReconciled(asset.Namespace, set, outPath, state.prevShells[id])
		if err != nil {
			return fmt.Errorf("export set %q: %w", set.Name, err)
		}
		state.prevShells[id] = shells
		if _, err := state.serializer.WriteFile(outPath, set.SafeOverwrite); err != nil {
			return fmt.Errorf("writing %q: %w", outPath, err)
		}
		slog.Info("fbxexport watch: re-exported", "sidecar", sidecarPath, "set", set.Name, "out", outPath)
	}
	return nil
}
