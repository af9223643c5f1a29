// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bhsingleton/dcc-sub000/fbxnode"
	"github.com/bhsingleton/dcc-sub000/fbxwriter"
)

func outputFormat(cfg *Config) fbxwriter.Format {
	if strings.EqualFold(cfg.Format, "ascii") {
		return fbxwriter.FormatASCII
	}
	return fbxwriter.FormatBinary
}

// batchOutPath derives an output FBX path from a sidecar's base name
// and an export set's name, placed in the given dir.
func batchOutPath(dir, sidecarPath, setName string) string {
	base := strings.TrimSuffix(filepath.Base(sidecarPath), filepath.Ext(sidecarPath))
	return filepath.Join(dir, fmt.Sprintf("%s_%s.fbx", base, setName))
}

// skeletonShells filters shells down to the Joint-kind subset the
// baker drives, in the order they were reserved.
func skeletonShells(shells []*fbxnode.Shell) []*fbxnode.Shell {
	var out []*fbxnode.Shell
	for _, sh := range shells {
		if sh.Kind == "Joint" {
			out = append(out, sh)
		}
	}
	return out
}
