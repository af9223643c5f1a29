// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bools defines interfaces for types that behave like booleans
// without being exactly bool, so [reflectx] can set and read them
// generically (config flags backed by a tri-state type, etc).
package bools

// Booler is implemented by types that can report their boolean value.
type Booler interface {
	Bool() bool
}

// BoolSetter is implemented by types that can be set from a bool.
type BoolSetter interface {
	SetBool(value bool)
}
