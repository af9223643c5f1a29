// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io/fs"

	"github.com/bhsingleton/dcc-sub000/base/dirs"
	"github.com/bhsingleton/dcc-sub000/base/iox/tomlx"
	"github.com/bhsingleton/dcc-sub000/base/reflectx"
)

// OpenWithIncludes reads the config struct from the given config file
// using the given options, looking on [Options.IncludePaths] for the
// file. It returns an error if the file cannot be found on
// [Options.IncludePaths].
func OpenWithIncludes(opts *Options, cfg any, file string) error {
	files := dirs.FindFilesOnPaths(opts.IncludePaths, file)
	if len(files) == 0 {
		return fmt.Errorf("OpenWithIncludes: no files found for %q", file)
	}
	return tomlx.OpenFiles(cfg, files)
}

// Open reads the given config object from the given file.
func Open(cfg any, file string) error {
	return tomlx.Open(cfg, file)
}

// OpenFS reads the given config object from given file, using
// the given [fs.FS] filesystem (e.g., for embed files).
func OpenFS(cfg any, fsys fs.FS, file string) error {
	return tomlx.OpenFS(cfg, fsys, file)
}

// Save writes the given config object to the given file.
// It only saves the non-default fields of the given object,
// as specified by [reflectx.NonDefaultFields].
func Save(cfg any, file string) error {
	return tomlx.Save(reflectx.NonDefaultFields(cfg), file)
}
