// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbxserializer

import (
	"fmt"
	"log/slog"

	"github.com/bhsingleton/dcc-sub000/fbxconfig"
	"github.com/bhsingleton/dcc-sub000/fbxgather"
	"github.com/bhsingleton/dcc-sub000/fbxnode"
	"github.com/bhsingleton/dcc-sub000/fbxscene"
	"github.com/bhsingleton/dcc-sub000/fbxwriter"
	"github.com/bhsingleton/dcc-sub000/math32"
)

// Serializer holds the state of a single export: the FBX document
// under construction and the handle->shell registry. Created per
// export, destroyed after the final emit — no state survives between
// exports.
type Serializer struct {
	Scene    fbxscene.Scene
	Document *fbxwriter.Document
	Registry *fbxnode.Registry

	SchemaVersion string
	Format        fbxwriter.Format
}

// NewSerializer returns a Serializer with a fresh document and an
// empty registry rooted at the document's scene root.
func NewSerializer(scene fbxscene.Scene, schemaVersion string, format fbxwriter.Format) *Serializer {
	doc := fbxwriter.NewDocument(schemaVersion)
	if scene.UpAxis() == math32.AxisZ {
		doc.Settings.UpAxis = fbxwriter.UpAxisZ
	} else {
		doc.Settings.UpAxis = fbxwriter.UpAxisY
	}
	return &Serializer{
		Scene:         scene,
		Document:      doc,
		Registry:      fbxnode.NewRegistry(doc.Root),
		SchemaVersion: schemaVersion,
		Format:        format,
	}
}

// reserveAll runs the gatherer over one object-set spec and reserves a
// shell for every resulting node.
func (s *Serializer) reserveAll(set fbxgather.Spec) []*fbxnode.Shell {
	gathered := fbxgather.Gather(s.Scene, set)
	shells := make([]*fbxnode.Shell, len(gathered))
	for i, info := range gathered {
		shells[i] = s.Registry.Reserve(info)
	}
	return shells
}

func objectSetSpec(name, namespace string, os fbxconfig.ObjectSet) fbxgather.Spec {
	return fbxgather.Spec{
		Name:            name,
		Namespace:       namespace,
		IncludeType:     os.IncludeType,
		IncludeObjects:  os.IncludeObjects,
		IncludeChildren: os.IncludeChildren,
		ExcludeType:     os.ExcludeType,
		ExcludeObjects:  os.ExcludeObjects,
		ExcludeChildren: os.ExcludeChildren,
	}
}

// SerializeExportSet runs Gather -> Allocate -> Compose for a single
// ExportSet (no baking), returning the populated shells. A node
// gathered by more than one of the set's object sets appears once.
func (s *Serializer) SerializeExportSet(namespace string, set fbxconfig.ExportSet, outPath string) ([]*fbxnode.Shell, error) {
	skeletonShells := s.reserveAll(objectSetSpec(set.Name+".skeleton", namespace, set.Skeleton))
	meshShells := s.reserveAll(objectSetSpec(set.Name+".mesh", namespace, set.Mesh))
	cameraShells := s.reserveAll(objectSetSpec(set.Name+".camera", namespace, set.Camera))
	all := make([]*fbxnode.Shell, 0, len(skeletonShells)+len(meshShells)+len(cameraShells))
	seen := make(map[*fbxnode.Shell]bool, cap(all))
	for _, group := range [][]*fbxnode.Shell{skeletonShells, meshShells, cameraShells} {
		for _, sh := range group {
			if !seen[sh] {
				seen[sh] = true
				all = append(all, sh)
			}
		}
	}
	return all, s.compose(all, set, outPath)
}

// SerializeExportSetReconciled is [SerializeExportSet], but reconciles
// the freshly gathered node list against prevShells (that export set's
// shells from an earlier call on this same Serializer) so nodes that
// persist by name keep their existing shell — the allocator-stability
// `cmd/fbxexport watch` depends on across consecutive re-exports of the
// same asset, instead of minting fresh handles and FBX nodes every
// time a sidecar file changes on disk.
func (s *Serializer) SerializeExportSetReconciled(namespace string, set fbxconfig.ExportSet, outPath string, prevShells []*fbxnode.Shell) ([]*fbxnode.Shell, error) {
	skeleton := fbxgather.Gather(s.Scene, objectSetSpec(set.Name+".skeleton", namespace, set.Skeleton))
	mesh := fbxgather.Gather(s.Scene, objectSetSpec(set.Name+".mesh", namespace, set.Mesh))
	camera := fbxgather.Gather(s.Scene, objectSetSpec(set.Name+".camera", namespace, set.Camera))
	var gathered []fbxscene.NodeInfo
	seen := make(map[fbxscene.Handle]bool)
	for _, group := range [][]fbxscene.NodeInfo{skeleton, mesh, camera} {
		for _, info := range group {
			if !seen[info.Handle] {
				seen[info.Handle] = true
				gathered = append(gathered, info)
			}
		}
	}

	all, _ := fbxgather.Reconcile(prevShells, s.Registry, gathered)
	return all, s.compose(all, set, outPath)
}

// compose runs Link -> Compose -> (optional) move-to-origin over an
// already-reserved shell set, shared by [SerializeExportSet] and
// [SerializeExportSetReconciled].
func (s *Serializer) compose(all []*fbxnode.Shell, set fbxconfig.ExportSet, outPath string) error {
	if err := s.Registry.Link(s.Scene); err != nil {
		return fmt.Errorf("fbxserializer: link: %w", err)
	}

	for _, sh := range all {
		info, err := s.Scene.Node(sh.Source)
		if err != nil {
			slog.Warn("fbxserializer: node lookup failed during compose, skipping", "node", sh.FbxNode.Name, "error", err)
			continue
		}
		if info.Kind == fbxscene.KindJoint || info.Kind == fbxscene.KindCamera {
			writeTransform(sh, info)
		}
		if info.Kind == fbxscene.KindCamera {
			if cam, cerr := s.Scene.Camera(sh.Source); cerr == nil {
				writeCameraAttribute(sh, cam)
			} else {
				slog.Warn("fbxserializer: camera lookup failed, writing bare transform", "node", sh.FbxNode.Name, "error", cerr)
			}
		}
		if info.Kind == fbxscene.KindMesh {
			mesh, merr := s.Scene.Mesh(sh.Source)
			if merr != nil {
				slog.Warn("fbxserializer: mesh lookup failed, skipping geometry", "node", sh.FbxNode.Name, "error", merr)
				continue
			}
			writeGeometry(sh, mesh, set, outPath)
			if set.IncludeSkins {
				if skin, has, serr := s.Scene.Skin(sh.Source); serr == nil && has {
					writeSkin(sh, skin, s.Registry)
				} else if serr != nil {
					slog.Warn("fbxserializer: skin lookup failed, skipping", "node", sh.FbxNode.Name, "error", serr)
				}
			}
		}
	}

	if set.MoveToOrigin {
		moveToOrigin(s.Scene, s.Document.Root, s.Registry, s.Document.AnimLayer)
	}
	return nil
}

// SerializeExportRange bakes an ExportRange's animation onto the
// skeleton shells of its referenced ExportSet, after the set has
// already been serialized.
func (s *Serializer) SerializeExportRange(asset fbxconfig.Asset, rng fbxconfig.ExportRange, skeletonShells []*fbxnode.Shell, progress ProgressFunc) error {
	if _, err := asset.ExportSetByID(rng.ExportSetID); err != nil {
		return err
	}
	s.Document.Settings.TimeMode = fbxwriter.TimeMode30

	start, end, _ := bakeRange(s.Scene, rng)
	s.Document.Settings.SetTimeSpan(start, end)

	if err := bake(s.Scene, skeletonShells, s.Document.AnimLayer, rng, progress); err != nil {
		return err
	}
	if rng.MoveToOrigin {
		moveToOrigin(s.Scene, s.Document.Root, s.Registry, s.Document.AnimLayer)
	}
	return nil
}

// WriteFile encodes and writes the serializer's document, returning
// the digest of the bytes written.
func (s *Serializer) WriteFile(path string, safeOverwrite bool) (string, error) {
	return fbxwriter.WriteFile(s.Document, path, s.Format, safeOverwrite)
}

// Close releases the serializer's buffers. The FBX document has no
// external handles to release (no process-wide SDK manager), so this
// only clears references for the GC's benefit.
func (s *Serializer) Close() {
	s.Document = nil
	s.Registry = nil
}
