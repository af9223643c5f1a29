// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fileinfo

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/h2non/filetype"
)

// Categories is a functional category for files, used for filtering
// and icon / color selection in file choosers.
type Categories int32 //enums:enum

const (
	UnknownCategory Categories = iota
	Folder
	Archive
	Backup
	Code
	Doc
	Sheet
	Data
	Text
	Image
	Model
	Audio
	Video
	Font
	Exe
	Bin
)

// MimeType holds the canonical mime string, functional category, and
// recognized file extensions for one [Known] file type.
type MimeType struct {
	Mime  string
	Cat   Categories
	Known Known
	Exts  []string
}

// knownExts maps a lowercase, dot-prefixed file extension to the
// [Known] type it represents. Extensions that matter to asset export
// (textures, 3D interchange formats, config sidecars) are exhaustive;
// the rest is the practical subset a DCC export tool actually sees on
// disk, not every format known.go enumerates.
var knownExts = map[string]Known{
	".png":  Png,
	".jpg":  Jpeg,
	".jpeg": Jpeg,
	".tif":  Tiff,
	".tiff": Tiff,
	".tga":  Tga,
	".bmp":  Bmp,
	".gif":  Gif,
	".svg":  Svg,
	".heic": Heic,
	".heif": Heif,
	".pdf":  Pdf,

	".fbx":  Fbx,
	".obj":  Obj,
	".dae":  Dae,
	".gltf": Gltf,
	".glb":  Gltf,
	".vrml": Vrml,
	".x3d":  X3d,

	".json": Json,
	".yaml": Yaml,
	".yml":  Yaml,
	".toml": Toml,
	".xml":  Xml,
	".csv":  Csv,
	".tsv":  Tsv,
	".ini":  Ini,

	".go":   Go,
	".py":   Python,
	".c":    C,
	".cpp":  C,
	".h":    C,
	".cs":   CSharp,
	".js":   JavaScript,
	".ts":   TypeScript,
	".rs":   Rust,

	".md":   Markdown,
	".html": Html,
	".htm":  Html,
	".css":  Css,
	".txt":  PlainText,

	".zip": Zip,
	".tar": Tar,
	".gz":  GZip,
	".7z":  SevenZ,

	".wav":  Wav,
	".mp3":  Mp3,
	".flac": Flac,

	".mp4": Mp4,
	".mov": Mov,
	".avi": Avi,
}

// KnownMimes maps from the known type into the MimeType info for each
// known file type listed in [knownExts]; types with no registered
// extension (eg: the Any* category markers) are absent.
func init() {
	KnownMimes = make(map[Known]MimeType, len(knownExts))
	for ext, kn := range knownExts {
		mt, has := KnownMimes[kn]
		if !has {
			mt = MimeType{Mime: mimeForKnown(kn), Cat: catForKnown(kn), Known: kn}
		}
		mt.Exts = append(mt.Exts, ext)
		KnownMimes[kn] = mt
	}
}

// catForKnown returns the functional [Categories] a [Known] type
// belongs to, based on which comment-delimited block of the const
// table in known.go it falls in.
func catForKnown(kn Known) Categories {
	switch {
	case kn == AnyFolder:
		return Folder
	case kn > AnyArchive && kn < AnyBackup:
		return Archive
	case kn > AnyBackup && kn < AnyCode:
		return Backup
	case kn > AnyCode && kn < AnyDoc:
		return Code
	case kn > AnyDoc && kn < AnySheet:
		return Doc
	case kn > AnySheet && kn < AnyData:
		return Sheet
	case kn > AnyData && kn < AnyText:
		return Data
	case kn > AnyText && kn < AnyImage:
		return Text
	case kn > AnyImage && kn < AnyModel:
		return Image
	case kn > AnyModel && kn < AnyAudio:
		return Model
	case kn > AnyAudio && kn < AnyVideo:
		return Audio
	case kn > AnyVideo && kn < AnyFont:
		return Video
	case kn > AnyFont && kn < AnyExe:
		return Font
	case kn == AnyExe:
		return Exe
	default:
		return UnknownCategory
	}
}

// mimeForKnown returns a best-effort canonical mime string for a
// [Known] type. Several of these (Fbx, Tga, Obj, Dae) have no IANA
// registration; the values here are the ones tools in the wild use.
func mimeForKnown(kn Known) string {
	switch kn {
	case Png:
		return "image/png"
	case Jpeg:
		return "image/jpeg"
	case Tiff:
		return "image/tiff"
	case Tga:
		return "image/x-tga"
	case Bmp:
		return "image/bmp"
	case Gif:
		return "image/gif"
	case Svg:
		return "image/svg+xml"
	case Heic:
		return "image/heic"
	case Heif:
		return "image/heif"
	case Pdf:
		return "application/pdf"
	case Fbx:
		return "application/x-fbx"
	case Obj:
		return "model/obj"
	case Dae:
		return "model/vnd.collada+xml"
	case Gltf:
		return "model/gltf+json"
	case Vrml:
		return "model/vrml"
	case X3d:
		return "model/x3d+xml"
	case Json:
		return DataJson
	case Yaml:
		return "application/yaml"
	case Toml:
		return "application/toml"
	case Xml:
		return DataXml
	case Csv:
		return DataCsv
	case Tsv:
		return "text/tab-separated-values"
	case Ini:
		return "text/plain"
	case Go:
		return "text/x-go"
	case Python:
		return "text/x-python"
	case JavaScript:
		return "text/javascript"
	case TypeScript:
		return "text/x-typescript"
	case Markdown:
		return "text/markdown"
	case Html:
		return "text/html"
	case Css:
		return "text/css"
	case PlainText:
		return TextPlain
	case Zip:
		return "application/zip"
	case Tar:
		return "application/x-tar"
	case GZip:
		return "application/gzip"
	case Wav:
		return "audio/wav"
	case Mp3:
		return "audio/mpeg"
	case Flac:
		return "audio/flac"
	case Mp4:
		return "video/mp4"
	case Mov:
		return "video/quicktime"
	case Avi:
		return "video/x-msvideo"
	default:
		return ""
	}
}

// MimeFromKnown returns the registered [MimeType] for a [Known] type,
// falling back to a bare MimeType naming only the type itself.
func MimeFromKnown(kn Known) MimeType {
	if mt, has := KnownMimes[kn]; has {
		return mt
	}
	return MimeType{Known: kn, Cat: catForKnown(kn)}
}

// MimeSub returns the subtype portion of a mime string, eg: "png" from
// "image/png".
func MimeSub(mime string) string {
	_, sub, found := strings.Cut(mime, "/")
	if !found {
		return mime
	}
	return sub
}

// CategoryFromMime returns the functional category for a mime string,
// by looking up the [Known] type it resolves to.
func CategoryFromMime(mime string) Categories {
	return MimeKnown(mime).Cat()
}

// MimeKnown returns the [Known] type registered for a mime string, or
// Unknown if none matches.
func MimeKnown(mime string) Known {
	for kn, mt := range KnownMimes {
		if mt.Mime == mime {
			return kn
		}
	}
	return Unknown
}

// MimeFromFile determines the mime type of a file on disk, first by
// extension and, for image formats whose extension is ambiguous or
// missing, by sniffing the leading bytes with
// [github.com/h2non/filetype]. Returns the mime string and the
// resolved [Known] type.
func MimeFromFile(fname string) (string, Known, error) {
	ext := strings.ToLower(filepath.Ext(fname))
	if kn, has := knownExts[ext]; has {
		return mimeForKnown(kn), kn, nil
	}

	f, err := os.Open(fname)
	if err != nil {
		return "", Unknown, err
	}
	defer f.Close()
	head := make([]byte, 262)
	n, _ := f.Read(head)
	head = head[:n]

	kind, err := filetype.Match(head)
	if err != nil || kind == filetype.Unknown {
		if isTextBytes(head) {
			return TextPlain, PlainText, nil
		}
		return "", Unknown, nil
	}
	if kn, has := knownExts["."+kind.Extension]; has {
		return kind.MIME.Value, kn, nil
	}
	return kind.MIME.Value, Unknown, nil
}

func isTextBytes(b []byte) bool {
	if bytes.IndexByte(b, 0) >= 0 {
		return false
	}
	return true
}

// generatedRE matches the standard Go "Code generated ... DO NOT EDIT."
// header line used to flag generated files.
var generatedRE = regexp.MustCompile(`^// Code generated .* DO NOT EDIT\.$`)

// IsGeneratedFile reports whether a file's first few lines carry the
// standard generated-code marker.
func IsGeneratedFile(fname string) bool {
	b, err := os.ReadFile(fname)
	if err != nil {
		return false
	}
	lines := bytes.SplitN(b, []byte("\n"), 6)
	for _, ln := range lines {
		if generatedRE.Match(bytes.TrimRight(ln, "\r")) {
			return true
		}
	}
	return false
}
