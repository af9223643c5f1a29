// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fbxgather resolves an object-set specification (by node
// name, layer, selection set, or regex, with optional descendant
// expansion) against a [fbxscene.Scene] into a deduplicated,
// order-preserving list of scene entities.
package fbxgather

import (
	"log/slog"
	"sort"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/bhsingleton/dcc-sub000/fbxscene"
)

// Spec is one object-set's include/exclude specification, matching an
// ExportSet's skeleton/mesh/camera object sets.
type Spec struct {
	Name      string
	Namespace string

	IncludeType     fbxscene.EnumMode
	IncludeObjects  []string
	IncludeChildren bool

	ExcludeType     fbxscene.EnumMode
	ExcludeObjects  []string
	ExcludeChildren bool
}

func resolve(scene fbxscene.Scene, namespace string, mode fbxscene.EnumMode, objects []string, includeChildren bool) []fbxscene.Handle {
	switch mode {
	case fbxscene.EnumLayers:
		return scene.NodesByLayer(namespace, objects, includeChildren)
	case fbxscene.EnumSelectionSets:
		return scene.NodesBySelectionSet(namespace, objects, includeChildren)
	case fbxscene.EnumRegex:
		return scene.NodesByRegex(namespace, objects, includeChildren)
	default:
		return scene.NodesByName(namespace, objects, includeChildren)
	}
}

// Gather resolves spec against scene, returning `include \ exclude`
// deduplicated by handle, in include-iteration order. An include
// pattern that yields zero hits logs a warning (in Nodes mode with a
// "did you mean" hint) but is not fatal; unknown exclude patterns are
// silent.
func Gather(scene fbxscene.Scene, spec Spec) []fbxscene.NodeInfo {
	included := resolve(scene, spec.Namespace, spec.IncludeType, spec.IncludeObjects, spec.IncludeChildren)
	if len(spec.IncludeObjects) > 0 {
		warnNoHits(scene, spec)
	}

	excluded := resolve(scene, spec.Namespace, spec.ExcludeType, spec.ExcludeObjects, spec.ExcludeChildren)
	excludeSet := make(map[fbxscene.Handle]bool, len(excluded))
	for _, h := range excluded {
		excludeSet[h] = true
	}

	seen := make(map[fbxscene.Handle]bool, len(included))
	out := make([]fbxscene.NodeInfo, 0, len(included))
	for _, h := range included {
		if seen[h] || excludeSet[h] {
			continue
		}
		seen[h] = true
		info, err := scene.Node(h)
		if err != nil {
			slog.Warn("fbxgather.Gather: node lookup failed", "handle", h, "error", err)
			continue
		}
		out = append(out, info)
	}
	return out
}

// warnNoHits logs the zero-hit warning for each include pattern that
// resolves to nothing on its own, annotated in Nodes mode with the
// closest existing node name by Jaro-Winkler similarity — diagnostic
// only, never changes the returned set.
func warnNoHits(scene fbxscene.Scene, spec Spec) {
	names := scene.AllNodeNames()
	for _, pat := range spec.IncludeObjects {
		if len(resolve(scene, spec.Namespace, spec.IncludeType, []string{pat}, false)) > 0 {
			continue
		}
		hint := ""
		if spec.IncludeType == fbxscene.EnumNodes {
			hint = closestName(pat, names)
		}
		if hint == "" {
			slog.Warn("fbxgather.Gather: include pattern matched nothing", "pattern", pat, "objectSet", spec.Name)
			continue
		}
		slog.Warn("fbxgather.Gather: include pattern matched nothing", "pattern", pat, "objectSet", spec.Name, "didYouMean", hint)
	}
}

func closestName(pat string, names []string) string {
	if len(names) == 0 {
		return ""
	}
	jw := metrics.NewJaroWinkler()
	type scored struct {
		name  string
		score float64
	}
	scores := make([]scored, len(names))
	for i, n := range names {
		scores[i] = scored{n, strutil.Similarity(pat, n, jw)}
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].score > scores[j].score })
	if scores[0].score < 0.6 {
		return ""
	}
	return scores[0].name
}
