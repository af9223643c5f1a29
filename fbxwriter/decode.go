// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbxwriter

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Summary is what [Decode] recovers from an encoded FBX document: just
// enough to drive the idempotence/round-trip test (spec's S6) without
// a general FBX import capability, which remains a non-goal.
type Summary struct {
	NodeCount      int
	PolygonCount   int
	MaterialCount  int
	ClusterCount   int
	AnimCurveCount int
	KeyCount       int
}

// Decode reads the ASCII form written by [Document.encodeASCII] and
// recovers a [Summary]. It is not a general FBX parser — it only
// understands the shape this package's own ASCII encoder produces,
// which is sufficient for the idempotence check this pipeline needs
// and nothing more.
func Decode(encoded []byte) (Summary, error) {
	var s Summary
	sc := bufio.NewScanner(bytes.NewReader(encoded))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	inObjects := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case strings.HasPrefix(line, "Objects:"):
			inObjects = true
		case strings.HasPrefix(line, "Connections:"):
			inObjects = false
		case inObjects && strings.HasPrefix(line, "Model:"):
			s.NodeCount++
		case strings.HasPrefix(line, "PolygonVertexIndex:"):
			n, err := countStar(line)
			if err != nil {
				return s, err
			}
			// every polygon contributes at least 3 indices; this is an
			// upper-bound count used only for the idempotence check's
			// own before/after comparison, not a geometric guarantee.
			s.PolygonCount += n
		case strings.HasPrefix(line, "Material:"):
			s.MaterialCount++
		case strings.HasPrefix(line, "Cluster:"):
			s.ClusterCount++
		case strings.HasPrefix(line, "Curve:"):
			s.AnimCurveCount++
		case strings.HasPrefix(line, "Key:"):
			s.KeyCount++
		}
	}
	if err := sc.Err(); err != nil {
		return s, err
	}
	return s, nil
}

func countStar(line string) (int, error) {
	idx := strings.Index(line, "*")
	if idx < 0 {
		return 0, fmt.Errorf("fbxwriter.Decode: malformed array size in %q", line)
	}
	return strconv.Atoi(strings.TrimSpace(line[idx+1:]))
}
