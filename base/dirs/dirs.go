// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dirs provides basic utilities for searching across a list of
// candidate directories, used by [cli] to resolve config files that may
// live alongside the binary, in the working directory, or in a parent.
package dirs

import (
	"os"
	"path/filepath"
)

// FindFilesOnPaths looks for a file with the given name on each of the
// given paths, in order, returning the full path of every match found.
// The file is also tried first as given (relative to the current
// working directory unless it is absolute).
func FindFilesOnPaths(paths []string, file string) []string {
	var found []string
	if fi, err := os.Stat(file); err == nil && !fi.IsDir() {
		found = append(found, file)
	}
	for _, p := range paths {
		fp := filepath.Join(p, file)
		if fi, err := os.Stat(fp); err == nil && !fi.IsDir() {
			found = append(found, fp)
		}
	}
	return found
}
