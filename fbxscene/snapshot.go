// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbxscene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bhsingleton/dcc-sub000/math32"
)

// snapshot is the on-disk shape of a [Memory] scene, used by
// [LoadMemory]/[SaveMemory] to give `cmd/fbxexport` something to read
// in place of a live host scene connection.
type snapshot struct {
	Namespace     string        `yaml:"namespace"`
	Nodes         []*MemoryNode `yaml:"nodes"`
	Up            math32.Axis   `yaml:"up"`
	Unit          string        `yaml:"unit"`
	TimelineStart float64       `yaml:"timelineStart"`
	TimelineEnd   float64       `yaml:"timelineEnd"`
}

// LoadMemory reads a YAML scene snapshot into a fresh [Memory].
func LoadMemory(path string) (*Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fbxscene.LoadMemory: %w", err)
	}
	var snap snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("fbxscene.LoadMemory: %s: %w", path, err)
	}

	m := NewMemory()
	m.Namespace = snap.Namespace
	m.Up = snap.Up
	if snap.Unit != "" {
		m.Unit = snap.Unit
	}
	m.TimelineStart = snap.TimelineStart
	m.TimelineEnd = snap.TimelineEnd
	for _, n := range snap.Nodes {
		m.AddNode(n)
	}
	return m, nil
}

// SaveMemory writes m as a YAML scene snapshot, the inverse of
// [LoadMemory].
func SaveMemory(path string, m *Memory) error {
	snap := snapshot{
		Namespace:     m.Namespace,
		Nodes:         m.Nodes,
		Up:            m.Up,
		Unit:          m.Unit,
		TimelineStart: m.TimelineStart,
		TimelineEnd:   m.TimelineEnd,
	}
	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("fbxscene.SaveMemory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
