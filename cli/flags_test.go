// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name    string `flag:"name,n"`
	Count   int    `flag:"count"`
	Verbose bool   `flag:"verbose"`
	Rest    string `posarg:"all"`
}

func TestSetFromArgsFlagValue(t *testing.T) {
	cfg := &testConfig{}
	_, err := SetFromArgs(cfg, []string{"--name", "alpha"}, NoErrNotFound)
	require.NoError(t, err)
	assert.Equal(t, "alpha", cfg.Name)
}

func TestSetFromArgsEqualsForm(t *testing.T) {
	cfg := &testConfig{}
	_, err := SetFromArgs(cfg, []string{"--count=42"}, NoErrNotFound)
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.Count)
}

func TestSetFromArgsShortName(t *testing.T) {
	cfg := &testConfig{}
	_, err := SetFromArgs(cfg, []string{"-n", "beta"}, NoErrNotFound)
	require.NoError(t, err)
	assert.Equal(t, "beta", cfg.Name)
}

func TestSetFromArgsBoolPresence(t *testing.T) {
	cfg := &testConfig{}
	_, err := SetFromArgs(cfg, []string{"--verbose"}, NoErrNotFound)
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
}

func TestSetFromArgsBoolNegation(t *testing.T) {
	cfg := &testConfig{Verbose: true}
	_, err := SetFromArgs(cfg, []string{"--noverbose"}, NoErrNotFound)
	require.NoError(t, err)
	assert.False(t, cfg.Verbose)
}

func TestSetFromArgsUnknownFlagNonFatal(t *testing.T) {
	cfg := &testConfig{}
	_, err := SetFromArgs(cfg, []string{"--bogus", "x"}, NoErrNotFound)
	assert.NoError(t, err)
}

func TestSetFromArgsUnknownFlagFatal(t *testing.T) {
	cfg := &testConfig{}
	_, err := SetFromArgs(cfg, []string{"--bogus", "x"}, ErrNotFound)
	assert.Error(t, err)
}

func TestSetFromArgsResolvesCommand(t *testing.T) {
	cfg := &testConfig{}
	build := &Cmd[*testConfig]{Name: "build", Root: true}
	cmdName, err := SetFromArgs(cfg, []string{"build", "--name", "gamma"}, NoErrNotFound, build)
	require.NoError(t, err)
	assert.Equal(t, "build", cmdName)
	assert.Equal(t, "gamma", cfg.Name)
}

func TestSetFromArgsFallsBackToRootCommand(t *testing.T) {
	cfg := &testConfig{}
	build := &Cmd[*testConfig]{Name: "build", Root: true}
	cmdName, err := SetFromArgs(cfg, []string{"--name", "gamma"}, NoErrNotFound, build)
	require.NoError(t, err)
	assert.Equal(t, "build", cmdName)
}

func TestSetFromArgsPositionalCapturedByPosargAll(t *testing.T) {
	cfg := &testConfig{}
	_, err := SetFromArgs(cfg, []string{"foo", "bar"}, NoErrNotFound)
	require.NoError(t, err)
	assert.Equal(t, "[foo bar]", cfg.Rest)
}
