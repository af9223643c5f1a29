// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"strings"
)

// usage builds the help text printed for -h/--help and the help
// command. If cmdName names one of cmds, only that command's doc is
// shown; otherwise every command is listed.
func usage[T any](opts *Options, cfg T, cmdName string, cmds ...*Cmd[T]) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s", opts.AppName)
	if opts.AppAbout != "" {
		fmt.Fprintf(&b, " - %s", opts.AppAbout)
	}
	b.WriteString("\n\n")

	if cmdName != "" {
		for _, c := range cmds {
			if c.Name == cmdName {
				fmt.Fprintf(&b, "%s\n  %s\n", c.Name, c.Doc)
				return b.String()
			}
		}
	}

	b.WriteString("Commands:\n")
	for _, c := range cmds {
		name := c.Name
		if c.Root {
			name += " (default)"
		}
		fmt.Fprintf(&b, "  %-20s %s\n", name, c.Doc)
	}
	b.WriteString("\nFlags:\n")
	b.WriteString("  -h, --help           show this message\n")
	b.WriteString("  -v, --verbose        print more information\n")
	b.WriteString("  -vv, --very-verbose  print as much information as possible\n")
	b.WriteString("  -q, --quiet          print less information\n")
	b.WriteString("  --config, --cfg      specify a config file\n")
	return b.String()
}
