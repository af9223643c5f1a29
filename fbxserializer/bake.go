// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbxserializer

import (
	"fmt"
	"log/slog"

	"github.com/bhsingleton/dcc-sub000/base/profile"
	"github.com/bhsingleton/dcc-sub000/fbxconfig"
	"github.com/bhsingleton/dcc-sub000/fbxnode"
	"github.com/bhsingleton/dcc-sub000/fbxscene"
	"github.com/bhsingleton/dcc-sub000/fbxwriter"
)

// bakeTimeMode is the one frame rate this implementation drives the
// sampling loop at; other rates are a known limitation, not modeled.
const bakeTimeMode = 30.0

// ProgressFunc is called every 100 sampled frames during a bake.
type ProgressFunc func(done, total int)

// bakeRange resolves rng's time window against scene, falling back to
// the host's timeline when UseTimeline is set.
func bakeRange(scene fbxscene.Scene, rng fbxconfig.ExportRange) (start, end, step float64) {
	if rng.UseTimeline {
		start, end = scene.TimelineRange()
		return start, end, rng.Step
	}
	return rng.StartFrame, rng.EndFrame, rng.Step
}

// bake samples shells' local matrices across the run-up window
// `[start-(end-start), end]`, keying only frames inside `[start, end]`
// onto layer. Viewport suspension is scoped to the whole loop with
// defer guaranteeing resume on every exit path, including a panic,
// which is recovered and returned as an error.
func bake(scene fbxscene.Scene, shells []*fbxnode.Shell, layer *fbxwriter.AnimLayer, rng fbxconfig.ExportRange, progress ProgressFunc) (err error) {
	start, end, step := bakeRange(scene, rng)
	if step <= 0 {
		step = 1
	}
	runUp := start - (end - start)

	scene.SuspendViewport()
	defer scene.ResumeViewport()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("fbxserializer: bake panic: %v", r)
		}
	}()

	pr := profile.Start()
	defer func() {
		if pr != nil {
			pr.End()
		}
	}()

	total := int((end-start)/step) + 1
	if total < 1 {
		total = 1
	}
	done := 0

	for t := runUp; t <= end+1e-9; t += step {
		scene.SetTime(t)
		if t < start-1e-9 {
			continue
		}
		for _, sh := range shells {
			info, nerr := scene.Node(sh.Source)
			if nerr != nil {
				return fmt.Errorf("fbxserializer: bake: %w", nerr)
			}
			keyShell(sh, info, layer, t)
		}
		done++
		if progress != nil && done%100 == 0 {
			progress(done, total)
		}
	}
	return nil
}

// keyShell decomposes info's local matrix and writes a linear key for
// each of the nine channels at time t.
func keyShell(sh *fbxnode.Shell, info fbxscene.NodeInfo, layer *fbxwriter.AnimLayer, t float64) {
	pos, rot, scale := info.LocalMatrix.Decompose()
	euler := rot.ToEuler(info.RotationOrder)

	values := map[string]float64{
		"translateX": float64(pos.X), "translateY": float64(pos.Y), "translateZ": float64(pos.Z),
		"rotateX": float64(radToDeg(euler.X)), "rotateY": float64(radToDeg(euler.Y)), "rotateZ": float64(radToDeg(euler.Z)),
		"scaleX": float64(scale.X), "scaleY": float64(scale.Y), "scaleZ": float64(scale.Z),
	}
	for _, ch := range fbxwriter.AnimChannels {
		curveName := fmt.Sprintf("%s_anim_%s", sh.FbxNode.Name, ch)
		layer.Curve(curveName).AddKey(t, values[ch])
	}
}

// moveToOrigin implements the post-bake pass: every direct child of
// root has its translate/rotate/scale curves destroyed and replaced
// with a static transform taken from the source's bind matrix.
func moveToOrigin(scene fbxscene.Scene, root *fbxwriter.Node, registry *fbxnode.Registry, layer *fbxwriter.AnimLayer) {
	for _, child := range root.Children {
		sh := registry.ByFbxNode(child)
		if sh == nil {
			continue
		}
		info, err := scene.Node(sh.Source)
		if err != nil {
			slog.Warn("fbxserializer: moveToOrigin: node lookup failed", "node", child.Name, "error", err)
			continue
		}
		for _, ch := range fbxwriter.AnimChannels {
			delete(layer.Curves, fmt.Sprintf("%s_anim_%s", child.Name, ch))
		}
		pos, rot, scale := info.BindMatrix.Decompose()
		euler := rot.ToEuler(info.RotationOrder)
		child.Properties.Translation = pos
		child.Properties.Rotation = degreesVec(euler)
		child.Properties.Scaling = scale
	}
}
