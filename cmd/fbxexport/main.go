// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command fbxexport serializes scene snapshots into FBX files per a
// fbxconfig asset description, either one export at a time, in a
// batch over a directory of sidecar files, or continuously as those
// sidecar files change on disk.
package main

import "github.com/bhsingleton/dcc-sub000/cli"

func main() {
	opts := cli.DefaultOptions("fbxexport", "exports scene data to FBX files")
	opts.Fatal = true
	cli.Run(opts, &Config{}, ExportCmd, BatchCmd, WatchCmd)
}
