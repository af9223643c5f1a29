// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides simple leveled, colored console logging used by
// cli. It is deliberately small: the rest of the codebase logs
// through [log/slog] directly, and reaches for logx only when it needs
// the extra color/level gate a terminal command wants.
package logx

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// UserLevel is the current logging verbosity requested by the user,
// typically set once from parsed CLI flags via [LevelFromFlags].
// Functions elsewhere in the codebase compare against it directly
// (eg: `if logx.UserLevel <= slog.LevelDebug`) rather than going
// through a slog handler, since the gate is almost always wrapping a
// block of work, not a single log call.
var UserLevel = slog.LevelInfo

// LevelFromFlags resolves the effective [UserLevel] from the
// boolean verbosity flags cli apps commonly expose.
func LevelFromFlags(veryVerbose, verbose, quiet bool) slog.Level {
	switch {
	case veryVerbose:
		return slog.LevelDebug - 4
	case verbose:
		return slog.LevelDebug
	case quiet:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

var profile = termenv.ColorProfile()

func color(s string, c termenv.Color) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return s
	}
	return termenv.String(s).Foreground(c).String()
}

// InitColor forces re-detection of the terminal color profile; call it
// after changing stdout (eg: after redirecting it in a test).
func InitColor() {
	profile = termenv.ColorProfile()
}

// CmdColor highlights a shell command as it is about to be run.
func CmdColor(s string) string { return color(s, profile.Color("12")) }

// SuccessColor highlights a directory or label preceding successful output.
func SuccessColor(s string) string { return color(s, profile.Color("10")) }

// ErrorColor highlights command stderr / failure output.
func ErrorColor(s string) string { return color(s, profile.Color("9")) }

// PrintlnInfo prints an informational line, gated by [UserLevel].
func PrintlnInfo(a ...any) {
	if UserLevel <= slog.LevelInfo {
		fmt.Println(a...)
	}
}

// PrintlnWarn prints a warning line, gated by [UserLevel].
func PrintlnWarn(a ...any) {
	if UserLevel <= slog.LevelWarn {
		fmt.Println(color(fmt.Sprint(a...), profile.Color("11")))
	}
}

// PrintlnError prints an error, unconditionally (errors are never
// suppressed by [UserLevel]).
func PrintlnError(err error) {
	if err == nil {
		return
	}
	fmt.Println(ErrorColor(err.Error()))
}
