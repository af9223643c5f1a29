// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/bhsingleton/dcc-sub000/base/reflectx"
)

// errNotFoundMode controls whether [SetFromArgs] errors on a
// command-line flag that does not match any tagged field.
type errNotFoundMode bool

const (
	// ErrNotFound makes SetFromArgs return an error for every
	// unrecognized flag.
	ErrNotFound errNotFoundMode = true

	// NoErrNotFound makes SetFromArgs silently skip flags that do not
	// match a tagged field, for passes that only care about a subset
	// of the command line.
	NoErrNotFound errNotFoundMode = false
)

// fieldInfo is one flag- or posarg-tagged struct field, resolved to its
// addressable [reflect.Value] so [SetFromArgs] can set it directly.
type fieldInfo struct {
	names  []string
	value  reflect.Value
	posAll bool
}

// fields is the flattened set of flag-taggable fields gathered from one
// or more config structs.
type fields []fieldInfo

// addFields walks stru's fields (stru must be a pointer to a struct)
// and appends every field tagged `flag:"..."` or `posarg:"..."` to
// allFields, prefixing its recognized names with prefix.
func addFields(stru any, allFields *fields, prefix string) {
	reflectx.WalkValueFlatFields(stru, func(str any, typ reflect.Type, field reflect.StructField, fieldVal reflect.Value) bool {
		tag, hasFlag := field.Tag.Lookup("flag")
		posTag, hasPos := field.Tag.Lookup("posarg")
		if !hasFlag && !hasPos {
			return true
		}
		fi := fieldInfo{value: fieldVal, posAll: hasPos && posTag == "all"}
		if hasFlag {
			for _, n := range strings.Split(tag, ",") {
				n = strings.TrimSpace(n)
				if n != "" {
					fi.names = append(fi.names, prefix+n)
				}
			}
		}
		*allFields = append(*allFields, fi)
		return true
	})
}

// byName resolves a flag name (without leading dashes) to the field it
// sets. A bool field also matches "no"+name as a negated form, eg
// "noverbose" for a field named "verbose".
func (fs fields) byName(name string) (fi fieldInfo, negate, found bool) {
	for _, c := range fs {
		for _, n := range c.names {
			if strings.EqualFold(n, name) {
				return c, false, true
			}
			if c.value.IsValid() && c.value.Kind() == reflect.Bool && strings.EqualFold("no"+n, name) {
				return c, true, true
			}
		}
	}
	return fieldInfo{}, false, false
}

func hasCmdNamed[T any](cmds []*Cmd[T], name string) bool {
	for _, c := range cmds {
		if c.Name == name {
			return true
		}
	}
	return false
}

func isBoolLiteral(s string) bool {
	switch strings.ToLower(s) {
	case "true", "false":
		return true
	}
	return false
}

// SetFromArgs parses args against cfg's `flag:` and `posarg:`-tagged
// fields plus the universally recognized [metaConfigFields], returning
// the subcommand name (the first bare argument matching a cmds entry,
// or the Root command's name if none was given) and any parse errors.
func SetFromArgs[T any](cfg T, args []string, mode errNotFoundMode, cmds ...*Cmd[T]) (string, error) {
	var allFields fields
	addFields(cfg, &allFields, "")
	addMetaConfigFields(&allFields)

	var errs []error
	var cmdName string
	var positional []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			if cmdName == "" && hasCmdNamed(cmds, arg) {
				cmdName = arg
				continue
			}
			positional = append(positional, arg)
			continue
		}

		name := strings.TrimLeft(arg, "-")
		value := ""
		hasValue := false
		if eq := strings.Index(name, "="); eq >= 0 {
			value = name[eq+1:]
			name = name[:eq]
			hasValue = true
		}

		fi, negate, found := allFields.byName(name)
		if !found {
			if mode == ErrNotFound {
				errs = append(errs, fmt.Errorf("cli: unrecognized flag %q", arg))
			}
			continue
		}

		if fi.value.Kind() == reflect.Bool {
			b := !negate
			if hasValue {
				if pb, perr := strconv.ParseBool(value); perr == nil {
					b = pb
				}
			} else if i+1 < len(args) && isBoolLiteral(args[i+1]) {
				pb, _ := strconv.ParseBool(args[i+1])
				b = pb
				i++
			}
			fi.value.SetBool(b)
			continue
		}

		if !hasValue {
			if i+1 >= len(args) {
				errs = append(errs, fmt.Errorf("cli: flag %q needs a value", arg))
				continue
			}
			i++
			value = args[i]
		}
		if err := reflectx.SetRobust(fi.value.Addr().Interface(), value); err != nil {
			errs = append(errs, fmt.Errorf("cli: setting flag %q: %w", arg, err))
		}
	}

	if cmdName == "" {
		for _, c := range cmds {
			if c.Root {
				cmdName = c.Name
				break
			}
		}
	}

	for _, fi := range allFields {
		if fi.posAll && fi.value.Kind() == reflect.String {
			fi.value.SetString(fmt.Sprintf("%v", positional))
		}
	}

	return cmdName, errors.Join(errs...)
}
