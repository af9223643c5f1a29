// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type defaultsTestConfig struct {
	Jobs int    `default:"4"`
	Kind string `default:"binary"`
}

func TestSetFromDefaults(t *testing.T) {
	cfg := &defaultsTestConfig{}
	require.NoError(t, SetFromDefaults(cfg))
	assert.Equal(t, 4, cfg.Jobs)
	assert.Equal(t, "binary", cfg.Kind)
}
