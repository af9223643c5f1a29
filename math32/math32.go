// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 provides float32 math, vector, matrix and quaternion
// types for scene-graph and color transforms. The scalar functions
// delegate to [github.com/chewxy/math32], a pure float32 reimplementation
// of the standard math package, so none of the transform or color code
// pays the float64<->float32 round-trip the standard library would force;
// this package adds the vector, matrix and quaternion types the transform
// and geometry writers build on.
package math32

import cmath32 "github.com/chewxy/math32"

const Pi = cmath32.Pi

const DegToRadFactor = Pi / 180
const RadToDegFactor = 180 / Pi

func DegToRad(deg float32) float32 { return deg * DegToRadFactor }
func RadToDeg(rad float32) float32 { return rad * RadToDegFactor }

func Abs(x float32) float32    { return cmath32.Abs(x) }
func Ceil(x float32) float32   { return cmath32.Ceil(x) }
func Floor(x float32) float32  { return cmath32.Floor(x) }
func Mod(x, y float32) float32 { return cmath32.Mod(x, y) }
func Sqrt(x float32) float32   { return cmath32.Sqrt(x) }
func Pow(x, y float32) float32 { return cmath32.Pow(x, y) }
func Exp(x float32) float32    { return cmath32.Exp(x) }
func Log(x float32) float32    { return cmath32.Log(x) }

func Sin(x float32) float32      { return cmath32.Sin(x) }
func Cos(x float32) float32      { return cmath32.Cos(x) }
func Tan(x float32) float32      { return cmath32.Tan(x) }
func Asin(x float32) float32     { return cmath32.Asin(x) }
func Acos(x float32) float32     { return cmath32.Acos(x) }
func Atan(x float32) float32     { return cmath32.Atan(x) }
func Atan2(y, x float32) float32 { return cmath32.Atan2(y, x) }

func IsNaN(x float32) bool { return cmath32.IsNaN(x) }

var NaN = cmath32.NaN()

func Sign(x float32) float32 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
