// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsageListsAllCommands(t *testing.T) {
	opts := DefaultOptions("fbxexport", "exports scenes to FBX")
	build := &Cmd[*testConfig]{Name: "build", Doc: "build the thing", Root: true}
	watch := &Cmd[*testConfig]{Name: "watch", Doc: "watch for changes"}

	out := usage(opts, &testConfig{}, "", build, watch)
	assert.Contains(t, out, "fbxexport")
	assert.Contains(t, out, "build (default)")
	assert.Contains(t, out, "watch for changes")
}

func TestUsageSingleCommand(t *testing.T) {
	opts := DefaultOptions("fbxexport", "")
	build := &Cmd[*testConfig]{Name: "build", Doc: "build the thing", Root: true}

	out := usage(opts, &testConfig{}, "build", build)
	assert.Contains(t, out, "build the thing")
	assert.NotContains(t, out, "Commands:")
}
