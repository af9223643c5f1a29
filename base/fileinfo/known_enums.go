// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fileinfo

import "fmt"

// knownNames gives the string name of each [Known] value, in
// declaration order; it backs String and SetString by hand since
// these types aren't run through the enum generator in this module.
var knownNames = []string{
	"Unknown", "Any", "AnyKnown", "AnyFolder", "AnyArchive", "Multipart",
	"Tar", "Zip", "GZip", "SevenZ", "Xz", "BZip", "Dmg", "Shar",
	"AnyBackup", "Trash",
	"AnyCode", "Ada", "Bash", "Cosh", "Csh", "C", "CSharp", "D", "Diff",
	"Eiffel", "Erlang", "Forth", "Fortran", "FSharp", "Go", "Goal",
	"Haskell", "Java", "JavaScript", "TypeScript", "Lisp", "Lua",
	"Makefile", "Mathematica", "Matlab", "ObjC", "OCaml", "Pascal",
	"Perl", "Php", "Prolog", "Python", "R", "Ruby", "Rust", "Scala",
	"SQL", "Tcl",
	"AnyDoc", "BibTeX", "TeX", "Texinfo", "Troff", "Html", "Css",
	"Markdown", "Rtf", "MSWord", "OpenText", "OpenPres", "MSPowerpoint",
	"EBook", "EPub",
	"AnySheet", "MSExcel", "OpenSheet",
	"AnyData", "Csv", "Json", "Xml", "Protobuf", "Ini", "Tsv", "Uri",
	"Color", "Yaml", "Toml", "Number", "String", "Tensor", "Table",
	"AnyText", "PlainText", "ICal", "VCal", "VCard",
	"AnyImage", "Pdf", "Postscript", "Gimp", "GraphVis", "Gif", "Jpeg",
	"Png", "Svg", "Tiff", "Pnm", "Pbm", "Pgm", "Ppm", "Xbm", "Xpm",
	"Bmp", "Heic", "Heif",
	"AnyModel", "Vrml", "X3d", "Obj", "Fbx", "Dae", "Gltf", "Tga",
	"AnyAudio", "Aac", "Flac", "Mp3", "Ogg", "Midi", "Wav",
	"AnyVideo", "Mpeg", "Mp4", "Mov", "Ogv", "Wmv", "Avi",
	"AnyFont", "TrueType", "WebOpenFont",
	"AnyExe",
	"AnyBin",
}

var knownByName = func() map[string]Known {
	m := make(map[string]Known, len(knownNames))
	for i, n := range knownNames {
		m[n] = Known(i)
	}
	return m
}()

// String returns the name of the known file type.
func (kn Known) String() string {
	if int(kn) < 0 || int(kn) >= len(knownNames) {
		return fmt.Sprintf("Known(%d)", int(kn))
	}
	return knownNames[kn]
}

// SetString sets the known file type from its string name, matching
// case-insensitively.
func (kn *Known) SetString(s string) error {
	if v, has := knownByName[s]; has {
		*kn = v
		return nil
	}
	for n, v := range knownByName {
		if eqFold(n, s) {
			*kn = v
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Known", s)
}

func eqFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

var categoriesNames = []string{
	"UnknownCategory", "Folder", "Archive", "Backup", "Code", "Doc",
	"Sheet", "Data", "Text", "Image", "Model", "Audio", "Video", "Font",
	"Exe", "Bin",
}

// String returns the name of the functional category.
func (c Categories) String() string {
	if int(c) < 0 || int(c) >= len(categoriesNames) {
		return fmt.Sprintf("Categories(%d)", int(c))
	}
	return categoriesNames[c]
}
