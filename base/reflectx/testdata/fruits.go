// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testdata provides small fixture types for reflectx's tests.
package testdata

import "fmt"

// Fruits is a toy enum used to exercise enum set/get through reflectx.
type Fruits int32 //enums:enum

const (
	Apple Fruits = iota
	Peach
	Strawberry
	Blueberry
)

var fruitsNames = []string{"Apple", "Peach", "Strawberry", "Blueberry"}

func (f Fruits) String() string {
	if int(f) < 0 || int(f) >= len(fruitsNames) {
		return fmt.Sprintf("Fruits(%d)", int(f))
	}
	return fruitsNames[f]
}

func (f *Fruits) SetString(s string) error {
	for i, n := range fruitsNames {
		if n == s {
			*f = Fruits(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Fruits", s)
}

func (f Fruits) Int64() int64     { return int64(f) }
func (f *Fruits) SetInt64(v int64) { *f = Fruits(v) }
func (f Fruits) Desc() string     { return f.String() }
