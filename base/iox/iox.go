// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iox provides generic object encoding/decoding functions
// that work for any format with a Decoder/Encoder pair shaped like
// the standard library's encoding/json, encoding/xml, gopkg.in/yaml.v3,
// and github.com/pelletier/go-toml/v2 decoders and encoders, so each
// format-specific wrapper package (jsonx, yamlx, tomlx) only has
// to supply the decoder/encoder constructor.
package iox

import (
	"bytes"
	"io"
	"io/fs"
	"os"
)

// Decoder is any type with a Decode(v any) error method — satisfied
// directly by *json.Decoder, *xml.Decoder, *yaml.Decoder, and
// *toml.Decoder without any adapter.
type Decoder interface {
	Decode(v any) error
}

// Encoder is any type with an Encode(v any) error method — satisfied
// directly by *json.Encoder, *xml.Encoder, *yaml.Encoder, and
// *toml.Encoder without any adapter.
type Encoder interface {
	Encode(v any) error
}

// DecoderFunc constructs a [Decoder] around a reader.
type DecoderFunc func(io.Reader) Decoder

// EncoderFunc constructs an [Encoder] around a writer.
type EncoderFunc func(io.Writer) Encoder

// NewDecoderFunc adapts a format's own NewDecoder constructor (which
// returns its own concrete decoder type, not the [Decoder] interface)
// into a [DecoderFunc].
func NewDecoderFunc[T Decoder](f func(io.Reader) T) DecoderFunc {
	return func(r io.Reader) Decoder { return f(r) }
}

// NewEncoderFunc adapts a format's own NewEncoder constructor into an
// [EncoderFunc].
func NewEncoderFunc[T Encoder](f func(io.Writer) T) EncoderFunc {
	return func(w io.Writer) Encoder { return f(w) }
}

// Read decodes v from r using the decoder f constructs.
func Read(v any, r io.Reader, f DecoderFunc) error {
	return f(r).Decode(v)
}

// ReadBytes decodes v from data using the decoder f constructs.
func ReadBytes(v any, data []byte, f DecoderFunc) error {
	return Read(v, bytes.NewReader(data), f)
}

// Open decodes v from the named file using the decoder f constructs.
func Open(v any, filename string, f DecoderFunc) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return Read(v, file, f)
}

// OpenFiles decodes v from each of filenames in order, so later files
// override fields set by earlier ones — the same layered-config
// pattern the CLI's config chain uses.
func OpenFiles(v any, filenames []string, f DecoderFunc) error {
	for _, filename := range filenames {
		if err := Open(v, filename, f); err != nil {
			return err
		}
	}
	return nil
}

// OpenFS decodes v from filename within fsys.
func OpenFS(v any, fsys fs.FS, filename string, f DecoderFunc) error {
	file, err := fsys.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return Read(v, file, f)
}

// OpenFilesFS is [OpenFiles] reading from fsys instead of the OS
// filesystem.
func OpenFilesFS(v any, fsys fs.FS, filenames []string, f DecoderFunc) error {
	for _, filename := range filenames {
		if err := OpenFS(v, fsys, filename, f); err != nil {
			return err
		}
	}
	return nil
}

// Write encodes v to w using the encoder f constructs.
func Write(v any, w io.Writer, f EncoderFunc) error {
	return f(w).Encode(v)
}

// WriteBytes encodes v, returning the encoded bytes.
func WriteBytes(v any, f EncoderFunc) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(v, &buf, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save encodes v to the named file, creating or truncating it.
func Save(v any, filename string, f EncoderFunc) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return Write(v, file, f)
}
