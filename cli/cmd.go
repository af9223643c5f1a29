// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

// Cmd represents one named subcommand bound to a typed configuration
// struct T. Exactly one Cmd in a given [Run] call may set Root, which
// makes it the command run when no subcommand name is given on the
// command line.
type Cmd[T any] struct {
	// Func is called with the fully configured config value once this
	// command has been selected.
	Func func(T) error

	// Name is the subcommand name as typed on the command line.
	Name string

	// Doc is a one-line description shown in usage output.
	Doc string

	// Root marks this as the command run when no subcommand is given.
	Root bool
}
