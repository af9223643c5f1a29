// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

// Options are options passed to [Run] that control its behavior.
type Options struct {
	// AppName is the name of the app, used in the default usage message.
	AppName string

	// AppAbout is a description of the app, used in the default usage message.
	AppAbout string

	// DefaultFiles are the default configuration file names to look for,
	// in order, if no file is specified on the command line.
	DefaultFiles []string

	// SearchUp indicates whether to search up the directory tree from the
	// current directory for the default config files, adding every
	// ancestor directory to IncludePaths.
	SearchUp bool

	// IncludePaths are the paths to search for a config file on, in
	// addition to the current directory. SearchUp appends to this.
	IncludePaths []string

	// NeedConfigFile indicates that [Run] should fail if no config file
	// was found, instead of continuing with only command-line arguments
	// and default tag values.
	NeedConfigFile bool

	// Fatal indicates that [Run] should print configuration errors and
	// call [os.Exit] instead of returning them.
	Fatal bool
}

// DefaultOptions returns [Options] with the given app name and about
// description and every other field at its zero value.
func DefaultOptions(name, about string) *Options {
	return &Options{AppName: name, AppAbout: about}
}
