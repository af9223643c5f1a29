// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides tolerance-based floating point test
// assertions, for the numerically noisy color and transform math used
// throughout the serializer.
package tolassert

import (
	"testing"
)

// defaultTol is used when no explicit tolerance is passed to [Equal].
const defaultTol = 1.0e-4

// Equal asserts that want and have are within tol of each other
// (defaultTol if tol is not given), calling t.Errorf if not.
func Equal[T ~float32 | ~float64](t testing.TB, want, have T, tol ...T) {
	t.Helper()
	tl := T(defaultTol)
	if len(tol) > 0 {
		tl = tol[0]
	}
	diff := want - have
	if diff < 0 {
		diff = -diff
	}
	if diff > tl {
		t.Errorf("tolassert.Equal: want %v, have %v, diff %v exceeds tolerance %v", want, have, diff, tl)
	}
}
