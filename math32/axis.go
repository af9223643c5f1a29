// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Axis names a host scene's up axis.
type Axis int32 //enums:enum

const (
	AxisY Axis = iota
	AxisZ
)

var axisNames = []string{"Y", "Z"}

func (a Axis) String() string {
	if int(a) < 0 || int(a) >= len(axisNames) {
		return "Y"
	}
	return axisNames[a]
}
