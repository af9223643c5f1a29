// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbxwriter

// TangentMode mirrors the handful of FbxAnimCurveDef tangent modes
// this pipeline ever writes — always linear, per spec, but the type
// exists so a curve's intent reads clearly at the call site.
type TangentMode int32 //enums:enum

const (
	TangentLinear TangentMode = iota
)

// Key is a single keyframe on an animation curve: a time (in frames
// at the document's TimeMode rate) and value, with linear in/out
// tangents.
type Key struct {
	Time       float64
	Value      float64
	TangentIn  TangentMode
	TangentOut TangentMode
}

// AnimCurve is one keyed channel, named "<node>_anim_<channel><axis>"
// eg "pCube1_anim_translateX".
type AnimCurve struct {
	Name string
	Keys []Key
}

func (c *AnimCurve) AddKey(time, value float64) {
	c.Keys = append(c.Keys, Key{Time: time, Value: value, TangentIn: TangentLinear, TangentOut: TangentLinear})
}

// AnimLayer is the single animation layer this pipeline ever creates
// (FBX supports layer blending; spec never exercises more than one
// layer), holding every node's nine baked channels.
type AnimLayer struct {
	Name string

	// Curves is keyed by the full channel name ("<node>_anim_translateX").
	Curves map[string]*AnimCurve
}

func NewAnimLayer(name string) *AnimLayer {
	return &AnimLayer{Name: name, Curves: make(map[string]*AnimCurve)}
}

// Curve returns the named curve, creating it if absent.
func (l *AnimLayer) Curve(name string) *AnimCurve {
	if c, ok := l.Curves[name]; ok {
		return c
	}
	c := &AnimCurve{Name: name}
	l.Curves[name] = c
	return c
}

// the nine baked channels per shell, in the fixed order the baker
// writes them.
var AnimChannels = []string{
	"translateX", "translateY", "translateZ",
	"rotateX", "rotateY", "rotateZ",
	"scaleX", "scaleY", "scaleZ",
}
