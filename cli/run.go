// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli implements reflected-struct command-line argument
// binding: a config struct's exported fields declare their flags via
// `flag:"..."` tags and their defaults via `default:"..."` tags
// (handled by [base/reflectx.SetFromDefaultTags]), and [Run] parses
// [os.Args] against them and dispatches to the matching [Cmd].
package cli

import (
	"fmt"
	"os"

	"github.com/bhsingleton/dcc-sub000/base/logx"
)

// Run parses [os.Args] into cfg per opts, then dispatches to whichever
// of cmds matches the parsed subcommand name (or the Root command, if
// none was given). If opts.Fatal is set, configuration errors are
// printed and [os.Exit] is called instead of the error being returned.
func Run[T any](opts *Options, cfg T, cmds ...*Cmd[T]) error {
	cmdName, err := config(opts, cfg, cmds...)
	if err != nil {
		if opts.Fatal {
			logx.PrintlnError(err)
			os.Exit(1)
		}
		return err
	}
	if cmdName == "" {
		return nil
	}
	for _, c := range cmds {
		if c.Name == cmdName {
			return c.Func(cfg)
		}
	}
	return fmt.Errorf("cli: unknown command %q", cmdName)
}
