// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enums defines the interfaces that generated (and hand-written)
// enum types implement, so other packages like [reflectx] and [cli] can
// get and set them generically through a config struct's fields.
package enums

import "fmt"

// Enum is the interface that all enum types satisfy.
type Enum interface {
	fmt.Stringer

	// Int64 returns the enum value as an int64.
	Int64() int64

	// Desc returns the description of the enum value.
	Desc() string
}

// EnumSetter is implemented by enum types that support being
// set from another enum value or from a string.
type EnumSetter interface {
	Enum

	// SetInt64 sets the enum value from an int64.
	SetInt64(value int64)

	// SetString sets the enum value from its string representation.
	SetString(s string) error
}
